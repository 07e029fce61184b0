package handlers

import (
	"log"
	"net/http"
	"time"

	"restaurant-os/config"
	"restaurant-os/models"

	"github.com/gin-gonic/gin"
)

type UpdateStockRequest struct {
	Stock *float64 `json:"stock" binding:"required,gte=0"`
}

// GetInventory lists all inventory items
func GetInventory(c *gin.Context) {
	var items []models.InventoryItem
	if err := config.DB.Find(&items).Error; err != nil {
		log.Printf("Error fetching inventory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetLowStockItems lists items whose current stock is at or below the
// configured minimum
func GetLowStockItems(c *gin.Context) {
	var items []models.InventoryItem
	if err := config.DB.Where("current_stock <= min_stock").Find(&items).Error; err != nil {
		log.Printf("Error fetching low stock items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch low stock items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// UpdateInventoryStock sets an item's current stock and stamps the restock
// time
func UpdateInventoryStock(c *gin.Context) {
	var item models.InventoryItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}

	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"current_stock":  *req.Stock,
		"last_restocked": now,
	}
	if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
		log.Printf("Error updating inventory stock: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory stock"})
		return
	}
	c.JSON(http.StatusOK, item)
}

type CreateInventoryItemRequest struct {
	Name         string  `json:"name" binding:"required"`
	NameBn       string  `json:"name_bn"`
	Unit         string  `json:"unit" binding:"required"`
	CurrentStock float64 `json:"current_stock" binding:"gte=0"`
	MinStock     float64 `json:"min_stock" binding:"gte=0"`
	MaxStock     float64 `json:"max_stock"`
	UnitCost     float64 `json:"unit_cost"`
	Supplier     string  `json:"supplier"`
}

// CreateInventoryItem registers a new stocked ingredient or supply
func CreateInventoryItem(c *gin.Context) {
	var req CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.InventoryItem{
		Name:         req.Name,
		NameBn:       req.NameBn,
		Unit:         req.Unit,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
		MaxStock:     req.MaxStock,
		UnitCost:     req.UnitCost,
		Supplier:     req.Supplier,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		log.Printf("Error creating inventory item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory item"})
		return
	}
	c.JSON(http.StatusOK, item)
}
