package handlers

import (
	"log"
	"net/http"

	"restaurant-os/config"
	"restaurant-os/models"
	"restaurant-os/realtime"

	"github.com/gin-gonic/gin"
)

type UpdateOrderItemStatusRequest struct {
	Status models.OrderItemStatus `json:"status" binding:"required,oneof=pending preparing ready"`
}

// UpdateOrderItemStatus lets kitchen staff progress a single dish
// independently of its parent order
func UpdateOrderItemStatus(hub realtime.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.OrderItem
		if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
			return
		}

		var req UpdateOrderItemStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := config.DB.Model(&item).Update("status", req.Status).Error; err != nil {
			log.Printf("Error updating order item status: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order item status"})
			return
		}

		hub.Publish(realtime.EventOrderItemStatusUpdate, item)
		c.JSON(http.StatusOK, item)
	}
}
