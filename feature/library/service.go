package library

import (
	"context"
	"fmt"

	"gamesync/core/progress"
	"gamesync/feature/library/blacklist"
	"gamesync/feature/library/catalog"
	"gamesync/feature/library/media"
	"gamesync/feature/library/models"
	"gamesync/feature/library/reconcile"
	"gamesync/feature/library/store"
	"gamesync/feature/library/sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Runner executes one synchronization run under an operation id.
type Runner interface {
	Run(ctx context.Context, operationID string, opts models.SyncOptions) (models.SyncResult, error)
}

// Service exposes the library synchronization operations.
type Service struct {
	store     store.Store
	fetcher   reconcile.DetailFetcher
	blacklist *blacklist.Cache
	runner    Runner
	tracker   *progress.Tracker[models.SyncResult]
	mirror    *media.Mirror
	logger    *zap.Logger
}

// NewService creates a new library service. The mirror is optional; when nil
// fetched media stays remote.
func NewService(
	s store.Store,
	fetcher reconcile.DetailFetcher,
	bl *blacklist.Cache,
	runner Runner,
	tracker *progress.Tracker[models.SyncResult],
	mirror *media.Mirror,
	logger *zap.Logger,
) *Service {
	return &Service{
		store:     s,
		fetcher:   fetcher,
		blacklist: bl,
		runner:    runner,
		tracker:   tracker,
		mirror:    mirror,
		logger:    logger,
	}
}

// StartSync validates the options, issues an operation id, and launches the
// run in the background. The caller polls progress with the returned id.
func (s *Service) StartSync(opts models.SyncOptions) (string, error) {
	if err := sync.ValidateOptions(opts); err != nil {
		return "", err
	}

	operationID := uuid.NewString()
	s.tracker.SetProgress(operationID, 0, progress.PhaseInit, "Synchronization queued")

	s.logger.Info("Starting synchronization run",
		zap.String("operation_id", operationID),
		zap.Int("owners", len(opts.Owners)),
		zap.Bool("override_existing", opts.OverrideExisting))

	// The run must outlive the request that started it, so it gets its own
	// detached context. All outcomes flow through the tracker.
	go func() {
		if _, err := s.runner.Run(context.Background(), operationID, opts); err != nil {
			s.logger.Error("Background synchronization failed",
				zap.String("operation_id", operationID),
				zap.Error(err))
		}
	}()

	return operationID, nil
}

// GetProgress returns the pollable state of a run.
func (s *Service) GetProgress(operationID string) (progress.Operation, bool) {
	return s.tracker.TryGetProgress(operationID)
}

// GetResult returns the terminal summary of a run, once it has one.
func (s *Service) GetResult(operationID string) (models.SyncResult, bool) {
	return s.tracker.TryGetResult(operationID)
}

// GetGame returns the stored record for an item id.
func (s *Service) GetGame(ctx context.Context, itemID uint64) (*models.GameRecord, error) {
	record, err := s.store.GetGame(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return record, nil
}

// UpdateSingleGame synchronously refetches one item's metadata and replaces
// the stored record, preserving its recorded owners. Blacklisted ids fail
// fast with ErrBlacklisted.
func (s *Service) UpdateSingleGame(ctx context.Context, itemID uint64) (*models.GameRecord, error) {
	blacklisted, err := s.blacklist.IsBlacklisted(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("checking blacklist for %d: %w", itemID, err)
	}
	if blacklisted {
		return nil, ErrBlacklisted
	}

	existing, err := s.store.GetGame(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("looking up game %d: %w", itemID, err)
	}

	result := s.fetcher.FetchDetails(ctx, itemID, nil)
	switch result.Status {
	case catalog.DetailFound:
	case catalog.DetailNotFound, catalog.DetailIDMismatch:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("upstream unavailable for game %d", itemID)
	}

	record := result.Record
	if existing != nil && existing.Owners != nil {
		record.Owners = existing.Owners
	} else {
		record.Owners = models.OwnershipRecord{}
	}

	if err := s.store.BulkUpsert(ctx, []models.GameRecord{*record}); err != nil {
		return nil, fmt.Errorf("writing game %d: %w", itemID, err)
	}

	if s.mirror != nil {
		s.mirror.MirrorGame(ctx, record)
	}

	s.logger.Info("Updated single game", zap.Uint64("item_id", itemID))
	return record, nil
}
