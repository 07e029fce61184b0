package handlers

import (
	"log"
	"net/http"

	"restaurant-os/config"
	"restaurant-os/models"
	"restaurant-os/realtime"

	"github.com/gin-gonic/gin"
)

type CreateTableRequest struct {
	Number int                `json:"number" binding:"required"`
	Seats  int                `json:"seats"`
	Status models.TableStatus `json:"status" binding:"omitempty,oneof=available occupied reserved"`
}

type UpdateTableStatusRequest struct {
	Status models.TableStatus `json:"status" binding:"required,oneof=available occupied reserved"`
}

// GetTables lists all tables ordered by table number
func GetTables(c *gin.Context) {
	var tables []models.Table
	if err := config.DB.Order("number asc").Find(&tables).Error; err != nil {
		log.Printf("Error fetching tables: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tables"})
		return
	}
	c.JSON(http.StatusOK, tables)
}

// CreateTable adds a new table to the floor plan
func CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table := models.Table{
		Number: req.Number,
		Seats:  req.Seats,
		Status: req.Status,
	}
	if table.Seats == 0 {
		table.Seats = 4
	}
	if table.Status == "" {
		table.Status = models.TableAvailable
	}

	if err := config.DB.Create(&table).Error; err != nil {
		log.Printf("Error creating table: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create table"})
		return
	}
	c.JSON(http.StatusOK, table)
}

// UpdateTableStatus sets a table's occupancy state and broadcasts the
// change to all connected clients
func UpdateTableStatus(hub realtime.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var table models.Table
		if err := config.DB.First(&table, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
			return
		}

		var req UpdateTableStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := config.DB.Model(&table).Update("status", req.Status).Error; err != nil {
			log.Printf("Error updating table status: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update table status"})
			return
		}

		hub.Publish(realtime.EventTableStatusUpdate, table)
		c.JSON(http.StatusOK, table)
	}
}
