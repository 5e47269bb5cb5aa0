package domain

import "time"

// Category is the domain entity for a product category.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
