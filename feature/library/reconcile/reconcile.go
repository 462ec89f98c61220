package reconcile

import (
	"context"
	"fmt"

	"gamesync/core/fetch"
	"gamesync/feature/library/catalog"
	"gamesync/feature/library/models"
	"gamesync/feature/library/store"

	"go.uber.org/zap"
)

// DetailFetcher is the catalog lookup the reconciler depends on.
type DetailFetcher interface {
	FetchDetails(ctx context.Context, itemID uint64, report fetch.ThrottleReporter) catalog.DetailResult
}

// Outcome classifies what reconciling one item produced.
type Outcome int

const (
	// OutcomeUpdated means a write was queued for the item.
	OutcomeUpdated Outcome = iota
	// OutcomeSkipped means the stored record already covers this run's
	// owners, so no write is needed.
	OutcomeSkipped
	// OutcomeFailed means the item could not be fetched this run.
	OutcomeFailed
)

// Reconciler merges per-owner ownership into canonical game records and
// decides, per item, whether a write is needed.
//
// The decision depends on whether a record already exists and whether the run
// overrides existing data:
//
//	absent record:            fetch details, owners = this run's owners
//	present, no override:     keep stored details, merge owners, write only on change
//	present, override:        fetch details, replace record, owners = this run's owners
type Reconciler struct {
	store    store.Store
	fetcher  DetailFetcher
	provider string
	logger   *zap.Logger
}

// New creates a reconciler. The provider names the ownership namespace that
// this engine's owner identities belong to.
func New(s store.Store, fetcher DetailFetcher, provider string, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		store:    s,
		fetcher:  fetcher,
		provider: provider,
		logger:   logger,
	}
}

// ReconcileItem applies the decision table to a single item and returns the
// record to queue for writing, if any. A non-nil error means the store itself
// failed; fetch failures are absorbed into OutcomeFailed instead.
func (r *Reconciler) ReconcileItem(ctx context.Context, itemID uint64, owners []string, override bool, report fetch.ThrottleReporter) (*models.GameRecord, Outcome, error) {
	existing, err := r.store.GetGame(ctx, itemID)
	if err != nil {
		return nil, OutcomeFailed, fmt.Errorf("looking up game %d: %w", itemID, err)
	}

	if existing != nil && !override {
		if existing.Owners == nil {
			existing.Owners = models.OwnershipRecord{}
		}
		if !existing.Owners.AddOwners(r.provider, owners) {
			return nil, OutcomeSkipped, nil
		}
		r.logger.Debug("Merged new owners into existing game",
			zap.Uint64("item_id", itemID),
			zap.Strings("owners", existing.Owners.Owners(r.provider)))
		return existing, OutcomeUpdated, nil
	}

	result := r.fetcher.FetchDetails(ctx, itemID, report)
	if result.Status != catalog.DetailFound {
		r.logger.Warn("Game details unavailable, counting item as failed",
			zap.Uint64("item_id", itemID),
			zap.Int("status", int(result.Status)))
		return nil, OutcomeFailed, nil
	}

	record := result.Record
	record.Owners = models.NewOwnership(r.provider, owners)
	return record, OutcomeUpdated, nil
}
