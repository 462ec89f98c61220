package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamesync/feature/library/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertBatchSize bounds one INSERT statement during bulk writes.
const upsertBatchSize = 200

// GormStore persists game records and blacklist entries through GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store on top of an established connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the games and blacklist tables.
func (s *GormStore) Migrate() error {
	if err := s.db.AutoMigrate(&models.GameRecord{}, &models.BlacklistEntry{}); err != nil {
		return fmt.Errorf("migrating library tables: %w", err)
	}
	return nil
}

// GetGame returns the record for the item id, or nil when absent.
func (s *GormStore) GetGame(ctx context.Context, itemID uint64) (*models.GameRecord, error) {
	var record models.GameRecord
	err := s.db.WithContext(ctx).First(&record, "item_id = ?", itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading game %d: %w", itemID, err)
	}
	return &record, nil
}

// ListGameIDs returns the ids of all stored records.
func (s *GormStore) ListGameIDs(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	if err := s.db.WithContext(ctx).Model(&models.GameRecord{}).Pluck("item_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("listing game ids: %w", err)
	}
	return ids, nil
}

// BulkUpsert inserts or fully replaces the given records in one batch.
func (s *GormStore) BulkUpsert(ctx context.Context, records []models.GameRecord) error {
	if len(records) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_id"}},
			UpdateAll: true,
		}).
		CreateInBatches(records, upsertBatchSize).Error
	if err != nil {
		return fmt.Errorf("bulk upserting %d games: %w", len(records), err)
	}
	return nil
}

// BlacklistIDs returns all blacklisted item ids.
func (s *GormStore) BlacklistIDs(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	if err := s.db.WithContext(ctx).Model(&models.BlacklistEntry{}).Pluck("item_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("listing blacklist ids: %w", err)
	}
	return ids, nil
}

// IsBlacklisted performs a point lookup for a single id.
func (s *GormStore) IsBlacklisted(ctx context.Context, itemID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.BlacklistEntry{}).
		Where("item_id = ?", itemID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking blacklist for %d: %w", itemID, err)
	}
	return count > 0, nil
}

// AddToBlacklist marks an id as permanently excluded. Re-adding an existing
// id only refreshes its timestamp.
func (s *GormStore) AddToBlacklist(ctx context.Context, itemID uint64) error {
	entry := models.BlacklistEntry{ItemID: itemID, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_id"}},
			UpdateAll: true,
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("blacklisting %d: %w", itemID, err)
	}
	return nil
}

// RemoveFromBlacklist lifts the exclusion for an id.
func (s *GormStore) RemoveFromBlacklist(ctx context.Context, itemID uint64) error {
	err := s.db.WithContext(ctx).Delete(&models.BlacklistEntry{}, "item_id = ?", itemID).Error
	if err != nil {
		return fmt.Errorf("removing %d from blacklist: %w", itemID, err)
	}
	return nil
}

// ListBlacklist returns all blacklist entries.
func (s *GormStore) ListBlacklist(ctx context.Context) ([]models.BlacklistEntry, error) {
	var entries []models.BlacklistEntry
	if err := s.db.WithContext(ctx).Order("item_id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("listing blacklist: %w", err)
	}
	return entries, nil
}
