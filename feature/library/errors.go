package library

import "errors"

var (
	// ErrBlacklisted is returned when a single-item update targets a
	// blacklisted id. Bulk runs skip blacklisted ids silently instead.
	ErrBlacklisted = errors.New("item is blacklisted")

	// ErrNotFound is returned when neither the store nor the upstream knows
	// the requested item.
	ErrNotFound = errors.New("item not found")
)
