package models

import "time"

// Category groups menu items. Names are bilingual (English + Bangla).
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	NameBn      string    `json:"name_bn"`
	Description string    `json:"description"`
	Active      bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at"`
}

type MenuItem struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CategoryID      *uint     `json:"category_id"`
	Category        *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name            string    `json:"name" gorm:"not null"`
	NameBn          string    `json:"name_bn"`
	Description     string    `json:"description"`
	DescriptionBn   string    `json:"description_bn"`
	Price           float64   `json:"price" gorm:"not null"`
	Image           string    `json:"image"`
	Available       bool      `json:"available" gorm:"not null;default:true"`
	PreparationTime int       `json:"preparation_time" gorm:"default:15"` // minutes
	CreatedAt       time.Time `json:"created_at"`
}
