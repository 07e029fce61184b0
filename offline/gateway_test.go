package offline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// flakyTransport simulates losing the network without tearing the
// upstream server down
type flakyTransport struct {
	offline atomic.Bool
	base    http.RoundTripper
}

func (ft *flakyTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if ft.offline.Load() {
		return nil, errors.New("simulated network failure")
	}
	return ft.base.RoundTrip(r)
}

// upstream is a stub API server with swappable responses and hit counts
type upstream struct {
	mu        sync.Mutex
	responses map[string]string
	hits      map[string]int
}

func (u *upstream) set(path, body string) {
	u.mu.Lock()
	u.responses[path] = body
	u.mu.Unlock()
}

func (u *upstream) hitCount(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hits[path]
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.hits[r.URL.Path]++
	body, ok := u.responses[r.URL.Path]
	u.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, body)
}

func newTestGateway(t *testing.T) (*Gateway, *upstream, *flakyTransport) {
	t.Helper()
	up := &upstream{
		responses: map[string]string{
			"/":              `<html>shell</html>`,
			"/manifest.json": `{"name":"RestaurantOS"}`,
		},
		hits: map[string]int{},
	}
	srv := httptest.NewServer(up)
	t.Cleanup(srv.Close)

	ft := &flakyTransport{base: http.DefaultTransport}
	g, err := NewGateway(srv.URL, &http.Client{Transport: ft})
	require.NoError(t, err)
	return g, up, ft
}

func get(t *testing.T, g *Gateway, path string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func post(t *testing.T, g *Gateway, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestCacheableGetServedFromCacheWhenOffline(t *testing.T) {
	g, up, ft := newTestGateway(t)
	up.set("/api/tables", `[{"id":1,"number":1}]`)

	w := get(t, g, "/api/tables", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[{"id":1,"number":1}]`, w.Body.String())

	ft.offline.Store(true)

	// Prior successful cache entry present: cached 200, not a failure
	w = get(t, g, "/api/tables", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[{"id":1,"number":1}]`, w.Body.String())
}

func TestOfflineEmptyCacheSynthesizes503(t *testing.T) {
	g, up, ft := newTestGateway(t)
	up.set("/api/inventory", `[]`)
	ft.offline.Store(true)

	w := get(t, g, "/api/inventory", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Offline", body["error"])
	require.NotEmpty(t, body["message"])
}

func TestStaleWhileRevalidate(t *testing.T) {
	g, up, _ := newTestGateway(t)
	up.set("/api/categories", `["v1"]`)

	w := get(t, g, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	up.set("/api/categories", `["v2"]`)

	// Cache hit returns the stale snapshot immediately
	w = get(t, g, "/api/categories", nil)
	require.JSONEq(t, `["v1"]`, w.Body.String())

	// The background refresh lands eventually
	deadline := time.Now().Add(2 * time.Second)
	for {
		cached, ok := g.api.Get("/api/categories")
		if ok && string(cached.Body) == `["v2"]` {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("background refresh never updated the cache")
		}
		time.Sleep(10 * time.Millisecond)
	}

	w = get(t, g, "/api/categories", nil)
	require.JSONEq(t, `["v2"]`, w.Body.String())
}

func TestMutationInvalidatesRelatedEntries(t *testing.T) {
	g, up, _ := newTestGateway(t)
	up.set("/api/dashboard/stats", `{"totalSales":600}`)
	up.set("/api/tables", `[]`)
	up.set("/api/staff", `[]`)
	up.set("/api/orders", `{"id":10}`)

	// Prime the API cache
	get(t, g, "/api/dashboard/stats", nil)
	get(t, g, "/api/tables", nil)
	get(t, g, "/api/staff", nil)
	require.Equal(t, 3, g.api.Len())

	w := post(t, g, "/api/orders")
	require.Equal(t, http.StatusOK, w.Code)

	// Orders mutations make stats and tables stale; staff is untouched
	_, ok := g.api.Get("/api/dashboard/stats")
	require.False(t, ok)
	_, ok = g.api.Get("/api/tables")
	require.False(t, ok)
	_, ok = g.api.Get("/api/staff")
	require.True(t, ok)
}

func TestWriteWhileOfflineSynthesizes503(t *testing.T) {
	g, up, ft := newTestGateway(t)
	up.set("/api/orders", `{"id":1}`)
	ft.offline.Store(true)

	w := post(t, g, "/api/orders")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Offline", body["error"])
}

func TestNonCacheableReadIsNetworkFirst(t *testing.T) {
	g, up, ft := newTestGateway(t)
	up.set("/api/orders", `[{"id":1}]`)

	// Orders reads bypass the cache entirely
	w := get(t, g, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Zero(t, g.api.Len())

	ft.offline.Store(true)
	w = get(t, g, "/api/orders", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestNavigationFallsBackToCachedShell(t *testing.T) {
	g, _, ft := newTestGateway(t)
	require.NoError(t, g.Install(context.Background()))

	ft.offline.Store(true)

	w := get(t, g, "/kitchen", map[string]string{"Accept": "text/html"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `<html>shell</html>`, w.Body.String())
}

func TestStaticAssetCacheFirst(t *testing.T) {
	g, up, ft := newTestGateway(t)
	up.set("/logo.svg", `<svg/>`)

	w := get(t, g, "/logo.svg", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, up.hitCount("/logo.svg"))

	// Cached copy short-circuits the network
	w = get(t, g, "/logo.svg", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, up.hitCount("/logo.svg"))

	ft.offline.Store(true)
	w = get(t, g, "/logo.svg", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `<svg/>`, w.Body.String())
}

func TestActivateDropsStaleCaches(t *testing.T) {
	g, _, _ := newTestGateway(t)
	g.storage.Open("restaurant-os-v0")
	g.storage.Open("restaurant-os-api-v0")

	g.Activate()

	require.ElementsMatch(t, []string{ShellCacheName, APICacheName}, g.storage.Names())
}

func TestInstallFailsWhenOffline(t *testing.T) {
	g, _, ft := newTestGateway(t)
	ft.offline.Store(true)
	require.Error(t, g.Install(context.Background()))
}
