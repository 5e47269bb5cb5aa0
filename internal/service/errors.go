package service

import "errors"

// Sentinel error kinds inspected by the handler layer. Repos return raw pgx
// errors; services translate them into one of these (or pass through unknown
// errors, which handlers log and hide behind a 500).
var (
	ErrNotFound  = errors.New("entity not found")
	ErrIntegrity = errors.New("entity integrity violation")

	// ErrReminderInPast's text is the client-facing validation message.
	ErrReminderInPast = errors.New("Reminder date cannot be in the past")
)
