package models

import "time"

// TableStatus represents the occupancy state of a restaurant table
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

type Table struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Number    int         `json:"number" gorm:"not null"`
	Seats     int         `json:"seats" gorm:"not null;default:4"`
	Status    TableStatus `json:"status" gorm:"not null;default:'available'"`
	CreatedAt time.Time   `json:"created_at"`
}
