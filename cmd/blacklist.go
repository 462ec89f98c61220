package cmd

import (
	"context"
	"fmt"
	"strconv"

	"gamesync/core/config"
	"gamesync/core/database"
	"gamesync/core/logger"
	"gamesync/feature/library/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// blacklistCmd is the parent command for blacklist management.
var blacklistCmd = &cobra.Command{
	Use:   "blacklist",
	Short: "Manage permanently excluded game ids",
	Long: `Games on the blacklist are skipped by every synchronization run and
rejected by single-game updates. Entries are managed here, out-of-band of
the engine itself.`,
}

var blacklistAddCmd = &cobra.Command{
	Use:   "add <itemId>...",
	Short: "Add game ids to the blacklist",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBlacklistStore(func(ctx context.Context, s *store.GormStore, l *zap.Logger) error {
			for _, arg := range args {
				itemID, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid item id %q", arg)
				}
				if err := s.AddToBlacklist(ctx, itemID); err != nil {
					return err
				}
				l.Info("Blacklisted game", zap.Uint64("item_id", itemID))
			}
			return nil
		})
	},
}

var blacklistRemoveCmd = &cobra.Command{
	Use:   "remove <itemId>...",
	Short: "Remove game ids from the blacklist",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBlacklistStore(func(ctx context.Context, s *store.GormStore, l *zap.Logger) error {
			for _, arg := range args {
				itemID, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid item id %q", arg)
				}
				if err := s.RemoveFromBlacklist(ctx, itemID); err != nil {
					return err
				}
				l.Info("Removed game from blacklist", zap.Uint64("item_id", itemID))
			}
			return nil
		})
	},
}

var blacklistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all blacklisted game ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBlacklistStore(func(ctx context.Context, s *store.GormStore, l *zap.Logger) error {
			entries, err := s.ListBlacklist(ctx)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				l.Info("Blacklist is empty")
				return nil
			}
			for _, entry := range entries {
				fmt.Printf("%d\t%s\n", entry.ItemID, entry.UpdatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		})
	},
}

func init() {
	blacklistCmd.AddCommand(blacklistAddCmd)
	blacklistCmd.AddCommand(blacklistRemoveCmd)
	blacklistCmd.AddCommand(blacklistListCmd)
	RootCmd.AddCommand(blacklistCmd)
}

// withBlacklistStore loads config, connects to the database, and hands a
// migrated store to the callback.
func withBlacklistStore(fn func(ctx context.Context, s *store.GormStore, l *zap.Logger) error) error {
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

	s := store.NewGormStore(db)
	if err := s.Migrate(); err != nil {
		return err
	}

	return fn(context.Background(), s, l)
}
