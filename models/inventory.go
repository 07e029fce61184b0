package models

import "time"

// InventoryItem is a stocked ingredient or supply. An item is "low stock"
// whenever CurrentStock <= MinStock.
type InventoryItem struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Name          string     `json:"name" gorm:"not null"`
	NameBn        string     `json:"name_bn"`
	Unit          string     `json:"unit" gorm:"not null"` // kg, piece, liter, etc
	CurrentStock  float64    `json:"current_stock" gorm:"not null"`
	MinStock      float64    `json:"min_stock" gorm:"not null"`
	MaxStock      float64    `json:"max_stock"`
	UnitCost      float64    `json:"unit_cost"`
	Supplier      string     `json:"supplier"`
	LastRestocked *time.Time `json:"last_restocked"`
	CreatedAt     time.Time  `json:"created_at"`
}
