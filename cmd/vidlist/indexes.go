package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/syntrixbase/vidlist/internal/services"
)

var skipSearch bool

var indexesCmd = &cobra.Command{
	Use:   "ensure-indexes",
	Short: "Create the indexes the listing pipeline relies on",
	Long: `ensure-indexes creates the owner and published/createdAt indexes on the
video collection and, unless --skip-search is given, the full-text search
index named by listing.search_index. The search index requires an Atlas
deployment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		mgr := services.NewManager(cfg, slog.Default())

		initCtx, cancel := context.WithTimeout(ctx, cfg.Storage.Mongo.ConnectTimeout)
		defer cancel()
		if err := mgr.Init(initCtx); err != nil {
			return err
		}
		defer mgr.Shutdown(context.Background())

		return mgr.EnsureIndexes(ctx, !skipSearch)
	},
}

func init() {
	indexesCmd.Flags().BoolVar(&skipSearch, "skip-search", false, "only create secondary indexes")
}
