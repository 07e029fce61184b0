package handlers

import (
	"log"
	"net/http"
	"time"

	"restaurant-os/config"
	"restaurant-os/models"

	"github.com/gin-gonic/gin"
)

type CreateStaffRequest struct {
	UserID   uint             `json:"user_id" binding:"required"`
	Role     models.StaffRole `json:"role" binding:"required,oneof=manager waiter kitchen cashier"`
	Phone    string           `json:"phone"`
	Address  string           `json:"address"`
	Salary   float64          `json:"salary"`
	JoinDate *time.Time       `json:"join_date"`
}

// GetStaff lists active staff with their user profile, optionally filtered
// by role
func GetStaff(c *gin.Context) {
	query := config.DB.Preload("User").Where("active = ?", true)
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var staff []models.Staff
	if err := query.Find(&staff).Error; err != nil {
		log.Printf("Error fetching staff: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff"})
		return
	}
	c.JSON(http.StatusOK, staff)
}

// CreateStaff enrols a user as a staff member
func CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.UserID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found for staff record"})
		return
	}

	staff := models.Staff{
		UserID:  req.UserID,
		Role:    req.Role,
		Active:  true,
		Phone:   req.Phone,
		Address: req.Address,
		Salary:  req.Salary,
	}
	if req.JoinDate != nil {
		staff.JoinDate = *req.JoinDate
	} else {
		staff.JoinDate = time.Now()
	}

	if err := config.DB.Create(&staff).Error; err != nil {
		log.Printf("Error creating staff: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff"})
		return
	}
	c.JSON(http.StatusOK, staff)
}
