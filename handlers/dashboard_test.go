package handlers

import (
	"net/http"
	"testing"

	"restaurant-os/config"
	"restaurant-os/models"

	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	rec := &eventRecorder{}
	r := newTestRouter(t, rec)
	user, token := seedUser(t, "manager@example.com")

	amounts := []float64{100, 200, 300}
	for _, amount := range amounts {
		order := models.Order{WaiterUserID: user.ID, Status: models.OrderServed, TotalAmount: amount}
		require.NoError(t, config.DB.Create(&order).Error)
	}
	cancelled := models.Order{WaiterUserID: user.ID, Status: models.OrderCancelled, TotalAmount: 1000}
	require.NoError(t, config.DB.Create(&cancelled).Error)

	occupied := models.Table{Number: 1, Seats: 4, Status: models.TableOccupied}
	available := models.Table{Number: 2, Seats: 4, Status: models.TableAvailable}
	require.NoError(t, config.DB.Create(&occupied).Error)
	require.NoError(t, config.DB.Create(&available).Error)

	w := doRequest(t, r, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalSales   float64 `json:"totalSales"`
		TotalOrders  int64   `json:"totalOrders"`
		AverageOrder float64 `json:"averageOrder"`
		ActiveTables int64   `json:"activeTables"`
	}
	decodeJSON(t, w, &stats)
	require.Equal(t, 600.0, stats.TotalSales)
	require.Equal(t, int64(3), stats.TotalOrders)
	require.Equal(t, 200.0, stats.AverageOrder)
	require.Equal(t, int64(1), stats.ActiveTables)
}

func TestDashboardStatsEmptyDay(t *testing.T) {
	rec := &eventRecorder{}
	r := newTestRouter(t, rec)
	_, token := seedUser(t, "manager@example.com")

	w := doRequest(t, r, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalSales   float64 `json:"totalSales"`
		TotalOrders  int64   `json:"totalOrders"`
		AverageOrder float64 `json:"averageOrder"`
		ActiveTables int64   `json:"activeTables"`
	}
	decodeJSON(t, w, &stats)
	require.Zero(t, stats.TotalSales)
	require.Zero(t, stats.TotalOrders)
	require.Zero(t, stats.AverageOrder)
	require.Zero(t, stats.ActiveTables)
}
