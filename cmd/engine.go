package cmd

import (
	"context"

	"gamesync/core/config"
	"gamesync/core/fetch"
	"gamesync/core/progress"
	"gamesync/core/storage"
	"gamesync/feature/library"
	"gamesync/feature/library/blacklist"
	"gamesync/feature/library/catalog"
	"gamesync/feature/library/currency"
	"gamesync/feature/library/media"
	"gamesync/feature/library/models"
	"gamesync/feature/library/reconcile"
	"gamesync/feature/library/store"
	"gamesync/feature/library/sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// engine bundles the assembled synchronization components shared by the
// server and the one-shot CLI commands.
type engine struct {
	orchestrator *sync.Orchestrator
	service      *library.Service
	// storage is nil when media mirroring is disabled or unreachable.
	storage storage.Client
}

// buildEngine wires the store, fetcher, catalog client, and orchestrator
// from the configuration. Media mirroring is attached only when storage is
// enabled and reachable.
func buildEngine(cfg *config.Config, logg *zap.Logger, db *gorm.DB) (*engine, error) {
	gormStore := store.NewGormStore(db)
	if err := gormStore.Migrate(); err != nil {
		return nil, err
	}

	fetcher := fetch.New(cfg.Fetch, logg)
	normalizer := currency.NewNormalizer(cfg.Catalog.RatesURL, logg)
	client := catalog.NewClient(cfg.Catalog, fetcher, normalizer, logg)

	var mirror *media.Mirror
	var storageClient storage.Client
	if cfg.Storage.Enabled {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Warn("Media storage unavailable, mirroring disabled", zap.Error(err))
		} else {
			mirror = media.NewMirror(c, cfg.Storage.Bucket, logg)
			if err := mirror.EnsureBucket(context.Background()); err != nil {
				logg.Warn("Media bucket unavailable, mirroring disabled", zap.Error(err))
				mirror = nil
			} else {
				storageClient = c
			}
		}
	}

	bl := blacklist.NewCache(gormStore, logg)
	reconciler := reconcile.New(gormStore, client, cfg.Server.Provider, logg)
	tracker := progress.NewTracker[models.SyncResult]()
	orchestrator := sync.New(gormStore, client, reconciler, bl, tracker, mirror, logg)

	svc := library.NewService(gormStore, client, bl, orchestrator, tracker, mirror, logg)

	return &engine{
		orchestrator: orchestrator,
		service:      svc,
		storage:      storageClient,
	}, nil
}
