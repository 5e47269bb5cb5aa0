package domain

import "time"

// User is the domain entity for a user account.
// Role drives the permission check (see internal/permissions).
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
