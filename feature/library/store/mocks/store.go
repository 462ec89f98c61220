package mocks

import (
	"context"

	"gamesync/feature/library/models"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of store.Store
type Store struct {
	mock.Mock
}

func (m *Store) GetGame(ctx context.Context, itemID uint64) (*models.GameRecord, error) {
	args := m.Called(ctx, itemID)
	if record, ok := args.Get(0).(*models.GameRecord); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) ListGameIDs(ctx context.Context) ([]uint64, error) {
	args := m.Called(ctx)
	if ids, ok := args.Get(0).([]uint64); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) BulkUpsert(ctx context.Context, records []models.GameRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *Store) BlacklistIDs(ctx context.Context) ([]uint64, error) {
	args := m.Called(ctx)
	if ids, ok := args.Get(0).([]uint64); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) IsBlacklisted(ctx context.Context, itemID uint64) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *Store) AddToBlacklist(ctx context.Context, itemID uint64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *Store) RemoveFromBlacklist(ctx context.Context, itemID uint64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *Store) ListBlacklist(ctx context.Context) ([]models.BlacklistEntry, error) {
	args := m.Called(ctx)
	if entries, ok := args.Get(0).([]models.BlacklistEntry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}
