package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"gamesync/core/config"
	"gamesync/core/database"
	"gamesync/core/logger"
	"gamesync/feature/library/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncOwners   []string
	syncOverride bool
	syncItems    []uint
)

// syncCmd runs one synchronization pass in the foreground and prints the
// result summary, without starting the HTTP server.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one library synchronization in the foreground",
	Long: `Fetches the owned-game lists of the given owners, reconciles them
against the stored catalog, and writes the merged records in one batch.

Examples:
  # Merge two owners' libraries into the catalog
  gamesync sync --owner 76561198000000001 --owner 76561198000000002

  # Refetch everything, replacing stored metadata
  gamesync sync --owner 76561198000000001 --override

  # Restrict the run to specific games
  gamesync sync --owner 76561198000000001 --item 440 --item 570`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringArrayVar(&syncOwners, "owner", nil, "Owner identity to synchronize (repeatable)")
	syncCmd.Flags().BoolVar(&syncOverride, "override", false, "Replace existing records instead of merging owners")
	syncCmd.Flags().UintSliceVar(&syncItems, "item", nil, "Restrict the run to these item ids (repeatable)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	eng, err := buildEngine(cfg, l, db)
	if err != nil {
		return fmt.Errorf("failed to assemble sync engine: %w", err)
	}

	opts := models.SyncOptions{
		Owners:           syncOwners,
		OverrideExisting: syncOverride,
	}
	if len(syncItems) > 0 {
		opts.ItemIDFilter = make([]uint64, 0, len(syncItems))
		for _, id := range syncItems {
			opts.ItemIDFilter = append(opts.ItemIDFilter, uint64(id))
		}
	}

	operationID := uuid.NewString()
	l.Info("Running synchronization", zap.String("operation_id", operationID))

	result, err := eng.orchestrator.Run(ctx, operationID, opts)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	summary, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(summary))
	return nil
}
