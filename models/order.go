package models

import "time"

// OrderStatus represents all stages of an order's lifecycle. Any status can
// be set to any other via the API — there is no guarded transition table.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItemStatus tracks a single dish independently of its parent order
type OrderItemStatus string

const (
	OrderItemPending   OrderItemStatus = "pending"
	OrderItemPreparing OrderItemStatus = "preparing"
	OrderItemReady     OrderItemStatus = "ready"
)

type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	TableID      *uint       `json:"table_id"`
	Table        *Table      `json:"table,omitempty" gorm:"foreignKey:TableID"`
	WaiterUserID uint        `json:"waiter_user_id"`
	Waiter       *User       `json:"waiter,omitempty" gorm:"foreignKey:WaiterUserID"`
	Status       OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	TotalAmount  float64     `json:"total_amount" gorm:"not null"` // client-computed, stored as submitted
	Notes        string      `json:"notes"`
	Items        []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"not null"`
	MenuItemID uint            `json:"menu_item_id" gorm:"not null"`
	MenuItem   *MenuItem       `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	Price      float64         `json:"price" gorm:"not null"` // snapshot price at time of order
	Notes      string          `json:"notes"`
	Status     OrderItemStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt  time.Time       `json:"created_at"`
}
