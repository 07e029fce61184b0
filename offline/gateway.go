package offline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

// Versioned cache names. Bump a version to drop the old cache on the next
// Activate.
const (
	ShellCacheName = "restaurant-os-v1"
	APICacheName   = "restaurant-os-api-v1"
)

// shellURLs are pre-cached on Install so the application shell renders
// offline
var shellURLs = []string{
	"/",
	"/manifest.json",
}

// Gateway fronts the API for read-heavy clients on unreliable networks.
// Cacheable GETs are served cache-first with a background refresh; writes
// go network-first and invalidate the related cached reads on success. A
// transport failure never propagates: the gateway always produces some
// response, synthesizing a 503 as the universal fallback.
type Gateway struct {
	upstream *url.URL
	client   *http.Client
	storage  *Storage
	shell    *Cache
	api      *Cache
}

func NewGateway(upstream string, client *http.Client) (*Gateway, error) {
	u, err := url.Parse(upstream)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream URL %q: %w", upstream, err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	storage := NewStorage()
	return &Gateway{
		upstream: u,
		client:   client,
		storage:  storage,
		shell:    storage.Open(ShellCacheName),
		api:      storage.Open(APICacheName),
	}, nil
}

// Install pre-populates the shell cache with the static asset list. A
// failed asset fetch fails the install, matching the all-or-nothing
// addAll semantics.
func (g *Gateway) Install(ctx context.Context) error {
	log.Println("Gateway installing...")
	for _, path := range shellURLs {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
		if err != nil {
			return err
		}
		resp, err := g.fetch(req)
		if err != nil {
			return fmt.Errorf("precache %s: %w", path, err)
		}
		snap, err := Snapshot(resp)
		if err != nil {
			return fmt.Errorf("precache %s: %w", path, err)
		}
		g.shell.Put(path, snap)
	}
	return nil
}

// Activate deletes any cache whose name does not match the current
// versioned cache names
func (g *Gateway) Activate() {
	log.Println("Gateway activating...")
	for _, name := range g.storage.Names() {
		if name != ShellCacheName && name != APICacheName {
			log.Printf("Deleting old cache: %s", name)
			g.storage.DeleteCache(name)
		}
	}
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		g.handleAPI(w, r)
		return
	}
	g.handleStatic(w, r)
}

func (g *Gateway) handleAPI(w http.ResponseWriter, r *http.Request) {
	key := r.URL.RequestURI()
	isGet := r.Method == http.MethodGet

	if isGet && Cacheable(r.URL.Path) {
		// Cache-first with background refresh (stale-while-revalidate)
		if cached, ok := g.api.Get(key); ok {
			go g.refresh(key, r)
			cached.WriteTo(w)
			return
		}

		resp, err := g.fetch(r)
		if err != nil {
			log.Printf("API request failed, trying cache: %v", err)
			g.writeOffline(w, "No cached data available")
			return
		}
		snap, err := Snapshot(resp)
		if err != nil {
			g.writeOffline(w, "No cached data available")
			return
		}
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			g.api.Put(key, snap)
		}
		snap.WriteTo(w)
		return
	}

	// Network-first for writes and non-cacheable reads
	resp, err := g.fetch(r)
	if err != nil {
		log.Printf("Network request failed: %v", err)
		if !isGet {
			g.writeOffline(w, "Cannot perform this action while offline")
			return
		}
		if cached, ok := g.api.Get(key); ok {
			cached.WriteTo(w)
			return
		}
		g.writeOffline(w, "No cached data available")
		return
	}

	snap, err := Snapshot(resp)
	if err != nil {
		g.writeOffline(w, "No cached data available")
		return
	}
	if !isGet && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		g.invalidateRelated(r.URL.Path)
	}
	snap.WriteTo(w)
}

func (g *Gateway) handleStatic(w http.ResponseWriter, r *http.Request) {
	// Navigation requests always re-fetch the application shell
	if isNavigation(r) {
		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, "/", nil)
		if err == nil {
			if resp, ferr := g.fetch(req); ferr == nil {
				if snap, serr := Snapshot(resp); serr == nil {
					snap.WriteTo(w)
					return
				}
			}
		}
		if cached, ok := g.shell.Get("/"); ok {
			cached.WriteTo(w)
			return
		}
		http.Error(w, "Offline", http.StatusServiceUnavailable)
		return
	}

	// Other static resources: cache-first, then network, then cache store
	key := r.URL.RequestURI()
	if cached, ok := g.shell.Get(key); ok {
		cached.WriteTo(w)
		return
	}

	resp, err := g.fetch(r)
	if err == nil {
		snap, serr := Snapshot(resp)
		if serr == nil {
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				g.shell.Put(key, snap)
			}
			snap.WriteTo(w)
			return
		}
	}
	if cached, ok := g.shell.Get(key); ok {
		cached.WriteTo(w)
		return
	}
	http.Error(w, "Offline", http.StatusServiceUnavailable)
}

// refresh re-fetches a cached entry in the background. It races with any
// inflight read of the same key; a reader may still see the pre-refresh
// snapshot.
func (g *Gateway) refresh(key string, r *http.Request) {
	req, err := http.NewRequest(http.MethodGet, key, nil)
	if err != nil {
		return
	}
	req.Header = r.Header.Clone()
	resp, err := g.fetch(req)
	if err != nil {
		log.Printf("Background cache update failed: %v", err)
		return
	}
	snap, err := Snapshot(resp)
	if err != nil {
		return
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		g.api.Put(key, snap)
	}
}

// InvalidateRelated drops every cached API entry made stale by a mutation
// of path, returning how many entries were removed
func (g *Gateway) InvalidateRelated(path string) int {
	return g.invalidateRelated(path)
}

func (g *Gateway) invalidateRelated(path string) int {
	patterns := invalidationPatterns(path)
	if len(patterns) == 0 {
		return 0
	}
	removed := 0
	for _, key := range g.api.Keys() {
		keyPath := key
		if i := strings.IndexByte(keyPath, '?'); i >= 0 {
			keyPath = keyPath[:i]
		}
		for _, p := range patterns {
			if p.MatchString(keyPath) {
				g.api.Delete(key)
				removed++
				break
			}
		}
	}
	log.Printf("Invalidated %d cache entries for %s", removed, path)
	return removed
}

// fetch forwards the request to the upstream server
func (g *Gateway) fetch(r *http.Request) (*http.Response, error) {
	target := *r.URL
	target.Scheme = g.upstream.Scheme
	target.Host = g.upstream.Host

	var body io.Reader
	if r.Body != nil {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header = r.Header.Clone()
	return g.client.Do(req)
}

// writeOffline synthesizes the universal "nothing else worked" response
func (g *Gateway) writeOffline(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   "Offline",
		"message": message,
	})
}

// isNavigation detects a page load as opposed to an asset or data fetch
func isNavigation(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	if r.Header.Get("Sec-Fetch-Mode") == "navigate" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
