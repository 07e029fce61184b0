package handlers

import (
	"log"
	"net/http"

	"restaurant-os/config"
	"restaurant-os/models"

	"github.com/gin-gonic/gin"
)

type CreateMenuItemRequest struct {
	CategoryID      *uint   `json:"category_id"`
	Name            string  `json:"name" binding:"required"`
	NameBn          string  `json:"name_bn"`
	Description     string  `json:"description"`
	DescriptionBn   string  `json:"description_bn"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	Image           string  `json:"image"`
	PreparationTime int     `json:"preparation_time"`
}

type UpdateAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// GetMenuItems lists available menu items, optionally filtered by category
func GetMenuItems(c *gin.Context) {
	query := config.DB.Where("available = ?", true)
	if categoryID := c.Query("categoryId"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		log.Printf("Error fetching menu items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateMenuItem adds a dish to the menu
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		NameBn:          req.NameBn,
		Description:     req.Description,
		DescriptionBn:   req.DescriptionBn,
		Price:           req.Price,
		Image:           req.Image,
		Available:       true,
		PreparationTime: req.PreparationTime,
	}
	if item.PreparationTime == 0 {
		item.PreparationTime = 15
	}

	if err := config.DB.Create(&item).Error; err != nil {
		log.Printf("Error creating menu item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateMenuItemAvailability toggles whether a dish can be ordered
func UpdateMenuItemAvailability(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&item).Update("available", *req.Available).Error; err != nil {
		log.Printf("Error updating menu item availability: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item availability"})
		return
	}
	c.JSON(http.StatusOK, item)
}
