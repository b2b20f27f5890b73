package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/syntrixbase/vidlist/internal/config"
	"github.com/syntrixbase/vidlist/internal/logging"
)

var (
	configDir string
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vidlist",
	Short: "Published video listing service",
	Long: `vidlist serves paginated listings of published videos with optional
full-text search, owner filtering and sorting.

Configuration is read from config.yml and config.local.yml in the config
directory, then overridden by environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig(configDir)
		if err != nil {
			return err
		}
		if err := logging.Initialize(loaded.Logging); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		cfg = loaded
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Shutdown()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "config", "directory holding config.yml")
	rootCmd.AddCommand(serveCmd, indexesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
