package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Eyouel-T/network-analysis/internal/config"
	"github.com/Eyouel-T/network-analysis/internal/store"
)

func ingestCmd() *cobra.Command {
	var archiveFlag, dbFlag string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Build and store the normalized tables for every conversation in the archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
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
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			fmt.Fprintf(os.Stderr, "Ingesting archive %s\n", root)

			stats, err := store.IngestArchive(db, root)
			if err != nil {
				return fmt.Errorf("ingest: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Done. %s\n", stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&archiveFlag, "archive", "", "Archive root (overrides config)")
	cmd.Flags().StringVar(&dbFlag, "db", "", "Database path (overrides config)")

	return cmd
}
