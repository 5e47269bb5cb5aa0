package domain

import "time"

// SubCategory always belongs to an existing Category; the FK is enforced by Postgres.
type SubCategory struct {
	ID         int64
	CategoryID int64
	Name       string
	CreatedAt  time.Time
}
