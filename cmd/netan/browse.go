package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eyouel-T/network-analysis/internal/config"
	"github.com/Eyouel-T/network-analysis/internal/store"
	"github.com/Eyouel-T/network-analysis/internal/tui"
)

func browseCmd() *cobra.Command {
	var archiveFlag, dbFlag string
	var noIngest bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse ingested channels and messages interactively",
		Long:  `Opens a TUI panel listing every ingested channel with its message count. Type to filter channels; the right panel previews the selected channel's messages.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			root := cfg.ArchiveRoot
			if archiveFlag != "" {
				root = archiveFlag
			}
			dbPath := cfg.DBPath
			if dbFlag != "" {
				dbPath = dbFlag
			}

			db, err := store.OpenDB(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if !noIngest {
				if _, err := store.IngestArchive(db, root); err != nil {
					return fmt.Errorf("ingest: %w", err)
				}
			}

			return tui.Run(db, root)
		},
	}

	cmd.Flags().StringVar(&archiveFlag, "archive", "", "Archive root (overrides config)")
	cmd.Flags().StringVar(&dbFlag, "db", "", "Database path (overrides config)")
	cmd.Flags().BoolVar(&noIngest, "no-ingest", false, "Browse the stored tables without re-reading the archive")

	return cmd
}
