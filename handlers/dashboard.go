package handlers

import (
	"log"
	"net/http"
	"time"

	"restaurant-os/config"
	"restaurant-os/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns today's sales figures and current table
// occupancy. Cancelled orders are excluded from every figure.
func GetDashboardStats(c *gin.Context) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var sales struct {
		TotalSales  float64
		TotalOrders int64
	}
	err := config.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total_sales, COUNT(*) AS total_orders").
		Where("created_at >= ? AND created_at < ? AND status <> ?", dayStart, dayEnd, models.OrderCancelled).
		Scan(&sales).Error
	if err != nil {
		log.Printf("Error fetching dashboard stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}

	var activeTables int64
	if err := config.DB.Model(&models.Table{}).Where("status = ?", models.TableOccupied).Count(&activeTables).Error; err != nil {
		log.Printf("Error counting active tables: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}

	averageOrder := 0.0
	if sales.TotalOrders > 0 {
		averageOrder = sales.TotalSales / float64(sales.TotalOrders)
	}

	c.JSON(http.StatusOK, gin.H{
		"totalSales":   sales.TotalSales,
		"totalOrders":  sales.TotalOrders,
		"averageOrder": averageOrder,
		"activeTables": activeTables,
	})
}
