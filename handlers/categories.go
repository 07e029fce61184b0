package handlers

import (
	"log"
	"net/http"

	"restaurant-os/config"
	"restaurant-os/models"

	"github.com/gin-gonic/gin"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	NameBn      string `json:"name_bn"`
	Description string `json:"description"`
}

// GetCategories lists active menu categories
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Where("active = ?", true).Find(&categories).Error; err != nil {
		log.Printf("Error fetching categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory adds a menu category
func CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{
		Name:        req.Name,
		NameBn:      req.NameBn,
		Description: req.Description,
		Active:      true,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		log.Printf("Error creating category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusOK, category)
}
