package store

import (
	"context"

	"gamesync/feature/library/models"
)

// Store is the document-style persistence boundary of the library feature.
// Records are keyed by item id; writes are idempotent replacements, so
// applying the same write twice yields the same end state.
type Store interface {
	// GetGame returns the record for the item id, or nil when absent.
	GetGame(ctx context.Context, itemID uint64) (*models.GameRecord, error)
	// ListGameIDs returns the ids of all stored records (id-only projection).
	ListGameIDs(ctx context.Context) ([]uint64, error)
	// BulkUpsert inserts or fully replaces the given records in one batch.
	// An empty slice is a no-op.
	BulkUpsert(ctx context.Context, records []models.GameRecord) error

	// BlacklistIDs returns all blacklisted item ids.
	BlacklistIDs(ctx context.Context) ([]uint64, error)
	// IsBlacklisted performs a point lookup for a single id.
	IsBlacklisted(ctx context.Context, itemID uint64) (bool, error)
	// AddToBlacklist marks an id as permanently excluded.
	AddToBlacklist(ctx context.Context, itemID uint64) error
	// RemoveFromBlacklist lifts the exclusion for an id.
	RemoveFromBlacklist(ctx context.Context, itemID uint64) error
	// ListBlacklist returns all blacklist entries with their timestamps.
	ListBlacklist(ctx context.Context) ([]models.BlacklistEntry, error)
}
