package domain

import "time"

// CartStatus is the lifecycle state of a cart.
type CartStatus string

const (
	CartStatusActive     CartStatus = "active"
	CartStatusCheckedOut CartStatus = "checked_out"
	CartStatusAbandoned  CartStatus = "abandoned"
)

// Cart is the domain entity for a shopping cart.
// ReminderDate is optional; when set it must lie in the future at creation time.
type Cart struct {
	ID           int64
	UserID       int64
	Name         string
	ReminderDate *time.Time
	Status       CartStatus
	CreatedAt    time.Time
}

// CartItem is a product line inside a cart.
type CartItem struct {
	ID        int64
	CartID    int64
	ProductID int64
	Quantity  int
}
