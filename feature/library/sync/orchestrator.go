package sync

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gamesync/core/fetch"
	"gamesync/core/logger"
	"gamesync/core/progress"
	"gamesync/feature/library/blacklist"
	"gamesync/feature/library/media"
	"gamesync/feature/library/models"
	"gamesync/feature/library/reconcile"
	"gamesync/feature/library/store"

	"go.uber.org/zap"
)

var (
	// ErrNoOwners is returned when a run is started without owner identities.
	ErrNoOwners = errors.New("at least one owner identity is required")

	// ErrEmptyFilter is returned when an explicit item-id filter is supplied
	// but empty. Passing no filter at all is valid; an empty one is a caller
	// mistake.
	ErrEmptyFilter = errors.New("explicit item id filter must not be empty")
)

// OwnerLister fetches the owned-item id list of one owner identity.
type OwnerLister interface {
	FetchOwnedItems(ctx context.Context, owner string) ([]uint64, error)
}

// ItemReconciler decides per item whether a write is needed and produces it.
type ItemReconciler interface {
	ReconcileItem(ctx context.Context, itemID uint64, owners []string, override bool, report fetch.ThrottleReporter) (*models.GameRecord, reconcile.Outcome, error)
}

// Orchestrator drives one synchronization run end to end: owner-list
// fetching, blacklist filtering, per-item reconciliation, one bulk write, and
// progress emission throughout.
type Orchestrator struct {
	store      store.Store
	owners     OwnerLister
	reconciler ItemReconciler
	blacklist  *blacklist.Cache
	tracker    *progress.Tracker[models.SyncResult]
	mirror     *media.Mirror
	logger     *zap.Logger
}

// New creates an orchestrator. The mirror is optional; when nil written
// records keep remote media references only.
func New(
	s store.Store,
	owners OwnerLister,
	reconciler ItemReconciler,
	bl *blacklist.Cache,
	tracker *progress.Tracker[models.SyncResult],
	mirror *media.Mirror,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		store:      s,
		owners:     owners,
		reconciler: reconciler,
		blacklist:  bl,
		tracker:    tracker,
		mirror:     mirror,
		logger:     logger,
	}
}

// ValidateOptions rejects caller mistakes before a run is started, so they
// surface synchronously instead of as a failed background run.
func ValidateOptions(opts models.SyncOptions) error {
	if len(opts.Owners) == 0 {
		return ErrNoOwners
	}
	if opts.ItemIDFilter != nil && len(opts.ItemIDFilter) == 0 {
		return ErrEmptyFilter
	}
	return nil
}

// Run executes one synchronization run under the given operation id. Items
// that fail individually are absorbed into the result counts; the returned
// error is non-nil only when the run as a whole failed, which happens solely
// on store-level errors.
func (o *Orchestrator) Run(ctx context.Context, operationID string, opts models.SyncOptions) (models.SyncResult, error) {
	log := logger.WithOperation(o.logger, operationID)
	result := newResult()

	o.tracker.SetProgress(operationID, 0, progress.PhaseInit, "Preparing synchronization run")
	if err := ValidateOptions(opts); err != nil {
		return o.fail(log, operationID, result, err)
	}
	if err := o.blacklist.Refresh(ctx); err != nil {
		return o.fail(log, operationID, result, err)
	}

	ownersByItem := o.fetchOwnerLists(ctx, log, operationID, opts.Owners)
	items := sortedItemIDs(ownersByItem)

	log.Info("Owner lists fetched",
		zap.Int("owners", len(opts.Owners)),
		zap.Int("distinct_items", len(items)))

	var filter map[uint64]struct{}
	if opts.ItemIDFilter != nil {
		filter = make(map[uint64]struct{}, len(opts.ItemIDFilter))
		for _, id := range opts.ItemIDFilter {
			filter[id] = struct{}{}
		}
	}

	var queue []models.GameRecord
	for i, itemID := range items {
		percent := 10 + (i+1)*80/len(items)

		if filter != nil {
			if _, ok := filter[itemID]; !ok {
				result.SkippedGamesCount++
				result.SkippedGameIDs = append(result.SkippedGameIDs, itemID)
				o.setProcessing(operationID, percent, i+1, len(items))
				continue
			}
		}

		blacklisted, err := o.blacklist.IsBlacklisted(ctx, itemID)
		if err != nil {
			return o.fail(log, operationID, result, fmt.Errorf("checking blacklist for %d: %w", itemID, err))
		}
		if blacklisted {
			log.Debug("Skipping blacklisted item", zap.Uint64("item_id", itemID))
			result.SkippedGamesCount++
			result.SkippedGameIDs = append(result.SkippedGameIDs, itemID)
			o.setProcessing(operationID, percent, i+1, len(items))
			continue
		}

		report := func(wait time.Duration, attempt int) {
			o.tracker.SetThrottled(operationID, percent,
				fmt.Sprintf("Upstream rate limit hit on item %d, waiting %s before retry %d",
					itemID, wait.Round(time.Second), attempt),
				int(wait.Seconds()))
		}

		record, outcome, err := o.reconciler.ReconcileItem(ctx, itemID, ownersByItem[itemID], opts.OverrideExisting, report)
		if err != nil {
			return o.fail(log, operationID, result, err)
		}

		switch outcome {
		case reconcile.OutcomeUpdated:
			queue = append(queue, *record)
			result.UpdatedGamesCount++
			result.UpdatedGameIDs = append(result.UpdatedGameIDs, itemID)
		case reconcile.OutcomeSkipped:
			result.SkippedGamesCount++
			result.SkippedGameIDs = append(result.SkippedGameIDs, itemID)
		case reconcile.OutcomeFailed:
			result.FailedGamesCount++
			result.FailedGameIDs = append(result.FailedGameIDs, itemID)
		}

		o.setProcessing(operationID, percent, i+1, len(items))
	}

	o.tracker.SetProgress(operationID, 90, progress.PhaseWriting,
		fmt.Sprintf("Writing %d game records", len(queue)))
	if len(queue) > 0 {
		if err := o.store.BulkUpsert(ctx, queue); err != nil {
			return o.fail(log, operationID, result, fmt.Errorf("bulk upsert of %d records: %w", len(queue), err))
		}
		if o.mirror != nil {
			for i := range queue {
				o.mirror.MirrorGame(ctx, &queue[i])
			}
		}
	}

	o.tracker.SetResult(operationID, result)
	o.tracker.SetProgress(operationID, 100, progress.PhaseCompleted,
		fmt.Sprintf("Synchronized %d games: %d updated, %d skipped, %d failed",
			result.TotalConsidered(), result.UpdatedGamesCount, result.SkippedGamesCount, result.FailedGamesCount))

	log.Info("Synchronization run completed",
		zap.Int("updated", result.UpdatedGamesCount),
		zap.Int("skipped", result.SkippedGamesCount),
		zap.Int("failed", result.FailedGamesCount))
	return result, nil
}

// fetchOwnerLists collects each owner's item ids into an item-to-owners map.
// A failed lookup leaves that owner's set empty instead of aborting the run.
func (o *Orchestrator) fetchOwnerLists(ctx context.Context, log *zap.Logger, operationID string, owners []string) map[uint64][]string {
	ownersByItem := make(map[uint64][]string)
	for i, owner := range owners {
		ids, err := o.owners.FetchOwnedItems(ctx, owner)
		if err != nil {
			log.Warn("Could not fetch owner library, treating as empty",
				zap.String("owner", owner),
				zap.Error(err))
			ids = nil
		}
		for _, id := range ids {
			ownersByItem[id] = append(ownersByItem[id], owner)
		}

		o.tracker.SetProgress(operationID, (i+1)*10/len(owners), progress.PhaseFetchingOwnerLists,
			fmt.Sprintf("Fetched %d/%d owner libraries", i+1, len(owners)))
	}
	return ownersByItem
}

func (o *Orchestrator) setProcessing(operationID string, percent, done, total int) {
	o.tracker.SetProgress(operationID, percent, progress.PhaseProcessingItems,
		fmt.Sprintf("Processed %d/%d games", done, total))
}

func (o *Orchestrator) fail(log *zap.Logger, operationID string, result models.SyncResult, err error) (models.SyncResult, error) {
	log.Error("Synchronization run failed", zap.Error(err))
	o.tracker.SetResult(operationID, result)
	o.tracker.SetProgress(operationID, 100, progress.PhaseFailed, err.Error())
	return result, err
}

func newResult() models.SyncResult {
	return models.SyncResult{
		UpdatedGameIDs: make([]uint64, 0),
		SkippedGameIDs: make([]uint64, 0),
		FailedGameIDs:  make([]uint64, 0),
	}
}

func sortedItemIDs(ownersByItem map[uint64][]string) []uint64 {
	ids := make([]uint64, 0, len(ownersByItem))
	for id := range ownersByItem {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}
