package models

import "time"

// StaffRole defines allowed roles in the system
type StaffRole string

const (
	RoleManager StaffRole = "manager"
	RoleWaiter  StaffRole = "waiter"
	RoleKitchen StaffRole = "kitchen"
	RoleCashier StaffRole = "cashier"
)

type Staff struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Role      StaffRole `json:"role" gorm:"not null"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Salary    float64   `json:"salary"`
	JoinDate  time.Time `json:"join_date"`
	CreatedAt time.Time `json:"created_at"`
}
