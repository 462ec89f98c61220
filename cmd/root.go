package cmd

import (
	"fmt"
	"os"

	"gamesync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gamesync",
	Short: "Game Library Sync Service",
	Long: `Gamesync keeps a canonical catalog of games owned across multiple
provider accounts in sync with upstream metadata, prices, and media.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the application logger in console format so CLI
		// errors read like the rest of the tool's output.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
