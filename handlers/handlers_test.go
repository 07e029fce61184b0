package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"restaurant-os/config"
	"restaurant-os/middleware"
	"restaurant-os/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// eventRecorder stands in for the broadcast hub in handler tests
type recordedEvent struct {
	Type string
	Data interface{}
}

type eventRecorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *eventRecorder) Publish(eventType string, data interface{}) {
	r.mu.Lock()
	r.events = append(r.events, recordedEvent{Type: eventType, Data: data})
	r.mu.Unlock()
}

func (r *eventRecorder) ofType(eventType string) []recordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []recordedEvent
	for _, e := range r.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

func (r *eventRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// newTestRouter wires a fresh in-memory database and the full route table
// with the recorder in place of the hub
func newTestRouter(t *testing.T, rec *eventRecorder) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := config.Open(dsn)
	require.NoError(t, err)
	config.DB = db

	r := gin.New()
	public := r.Group("/api")
	public.POST("/auth/register", Register)
	public.POST("/auth/login", Login)

	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	api.GET("/auth/user", GetCurrentUser)
	api.GET("/dashboard/stats", GetDashboardStats)
	api.GET("/tables", GetTables)
	api.POST("/tables", CreateTable)
	api.PATCH("/tables/:id/status", UpdateTableStatus(rec))
	api.GET("/categories", GetCategories)
	api.POST("/categories", CreateCategory)
	api.GET("/menu-items", GetMenuItems)
	api.POST("/menu-items", CreateMenuItem)
	api.PATCH("/menu-items/:id/availability", UpdateMenuItemAvailability)
	api.GET("/orders", GetOrders)
	api.GET("/orders/kitchen", GetKitchenOrders)
	api.POST("/orders", CreateOrder(rec))
	api.PATCH("/orders/:id/status", UpdateOrderStatus(rec))
	api.PATCH("/order-items/:id/status", UpdateOrderItemStatus(rec))
	api.GET("/inventory", GetInventory)
	api.GET("/inventory/low-stock", GetLowStockItems)
	api.POST("/inventory", CreateInventoryItem)
	api.PATCH("/inventory/:id/stock", UpdateInventoryStock)
	api.GET("/staff", GetStaff)
	api.POST("/staff", CreateStaff)
	return r
}

// seedUser creates a user directly and returns it with a valid token
func seedUser(t *testing.T, email string) (models.User, string) {
	t.Helper()
	user := models.User{
		Email:        email,
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "User",
	}
	require.NoError(t, config.DB.Create(&user).Error)
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return user, token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	rec := &eventRecorder{}
	r := newTestRouter(t, rec)

	for _, path := range []string{"/api/tables", "/api/orders", "/api/dashboard/stats"} {
		w := doRequest(t, r, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := doRequest(t, r, http.MethodGet, "/api/tables", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
