package handlers

import (
	"log"
	"net/http"

	"restaurant-os/config"
	"restaurant-os/middleware"
	"restaurant-os/models"
	"restaurant-os/realtime"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderPayload struct {
	TableID     *uint              `json:"table_id"`
	Status      models.OrderStatus `json:"status" binding:"omitempty,oneof=pending confirmed preparing ready served cancelled"`
	TotalAmount float64            `json:"total_amount"`
	Notes       string             `json:"notes"`
}

type OrderItemPayload struct {
	MenuItemID uint    `json:"menu_item_id" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	Price      float64 `json:"price"`
	Notes      string  `json:"notes"`
}

type CreateOrderRequest struct {
	Order      OrderPayload       `json:"order" binding:"required"`
	OrderItems []OrderItemPayload `json:"orderItems" binding:"dive"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required,oneof=pending confirmed preparing ready served cancelled"`
}

// GetOrders lists orders, newest first, optionally filtered by status
func GetOrders(c *gin.Context) {
	var orders []models.Order
	var err error
	if status := c.Query("status"); status != "" {
		err = config.DB.Where("status = ?", status).Order("created_at asc").Find(&orders).Error
	} else {
		err = config.DB.Order("created_at desc").Find(&orders).Error
	}
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetKitchenOrders returns confirmed and preparing orders with their items,
// dishes and table preloaded — the kitchen display queue
func GetKitchenOrders(c *gin.Context) {
	var orders []models.Order
	err := config.DB.
		Preload("Items.MenuItem").
		Preload("Table").
		Where("status IN ?", []models.OrderStatus{models.OrderConfirmed, models.OrderPreparing}).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		log.Printf("Error fetching kitchen orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch kitchen orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder records a submitted cart. The order, its items and the table
// occupancy update commit in one transaction, so partial failure can never
// leave an order without items or a table stuck available. The total amount
// is client-computed and stored as submitted. Only a newOrder event fires;
// the implied table occupancy change is inferred from it by clients.
func CreateOrder(hub realtime.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order := models.Order{
			TableID:      req.Order.TableID,
			WaiterUserID: middleware.GetUserID(c),
			Status:       req.Order.Status,
			TotalAmount:  req.Order.TotalAmount,
			Notes:        req.Order.Notes,
		}
		if order.Status == "" {
			order.Status = models.OrderPending
		}

		err := config.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			for _, item := range req.OrderItems {
				orderItem := models.OrderItem{
					OrderID:    order.ID,
					MenuItemID: item.MenuItemID,
					Quantity:   item.Quantity,
					Price:      item.Price,
					Notes:      item.Notes,
					Status:     models.OrderItemPending,
				}
				if err := tx.Create(&orderItem).Error; err != nil {
					return err
				}
			}
			if order.TableID != nil {
				if err := tx.Model(&models.Table{}).
					Where("id = ?", *order.TableID).
					Update("status", models.TableOccupied).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			log.Printf("Error creating order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		hub.Publish(realtime.EventNewOrder, order)
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatus moves an order through the kitchen workflow and
// broadcasts the change. Any status may be set — there is no transition
// guard, and repeating the same status broadcasts again.
func UpdateOrderStatus(hub realtime.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
			log.Printf("Error updating order status: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		hub.Publish(realtime.EventOrderStatusUpdate, order)
		c.JSON(http.StatusOK, order)
	}
}
