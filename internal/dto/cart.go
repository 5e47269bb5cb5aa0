package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	dom "Shop/internal/domain"
)

// ReminderDate parses remainder_date from JSON as RFC3339 (with or without
// fractional seconds), keeping the offset it was supplied with.
type ReminderDate struct{ t *time.Time }

func (d *ReminderDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("remainder_date: use an RFC3339 datetime")
}

// Ptr returns *time.Time for use in service/domain.
func (d ReminderDate) Ptr() *time.Time { return d.t }

// The wire name "remainder_date" is part of the public contract; do not rename.
type CreateCartRequest struct {
	Name          string       `json:"name" binding:"required,min=3,max=50"`
	RemainderDate ReminderDate `json:"remainder_date"`
}

type AddToCartRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1,max=10"`
}

// CreateCartResponse carries only the new cart id, as the create endpoint returns.
type CreateCartResponse struct {
	ID int64 `json:"id"`
}

type CartResponse struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	RemainderDate *time.Time     `json:"remainder_date"`
	Status        dom.CartStatus `json:"status"`
}

type CartItemResponse struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// SingleCartResponse is a cart with its items, returned by get-by-id.
type SingleCartResponse struct {
	CartResponse
	Items []CartItemResponse `json:"items"`
}

type AllCartsResponse struct {
	Carts []CartResponse `json:"carts"`
}
