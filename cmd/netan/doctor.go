package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Eyouel-T/network-analysis/internal/archive"
	"github.com/Eyouel-T/network-analysis/internal/config"
	"github.com/Eyouel-T/network-analysis/internal/store"
)

func doctorCmd() *cobra.Command {
	var archiveFlag string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify archive layout, metadata files, and store stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			root := cfg.ArchiveRoot
			if archiveFlag != "" {
				root = archiveFlag
			}

			fmt.Println("=== Archive ===")
			checkDir("Root", root)

			if users, err := archive.LoadUsers(root); err != nil {
				fmt.Printf("  users.json: %v\n", err)
			} else {
				fmt.Printf("  users.json: %d users\n", len(users))
			}
			if channels, err := archive.LoadChannels(root); err != nil {
				fmt.Printf("  channels.json: %v\n", err)
			} else {
				fmt.Printf("  channels.json: %d channels\n", len(channels))
			}

			fmt.Println("\n=== Conversations ===")
			folders, err := archive.Conversations(root)
			if err != nil {
				fmt.Printf("  scan error: %v\n", err)
			} else {
				fileCount := 0
				for _, folder := range folders {
					files, err := archive.EventFiles(folder)
					if err != nil {
						fmt.Printf("  %s: %v\n", folder, err)
						continue
					}
					fileCount += len(files)
				}
				fmt.Printf("  Folders: %d\n", len(folders))
				fmt.Printf("  Event files: %d\n", fileCount)
			}

			fmt.Println("\n=== Database ===")
			fmt.Printf("  Path: %s\n", cfg.DBPath)
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (run 'netan ingest' first)")
				return nil
			}

			db, err := store.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			msgCount, err := db.MessageCount()
			if err != nil {
				return fmt.Errorf("count messages: %w", err)
			}
			reactCount, err := db.ReactionCount()
			if err != nil {
				return fmt.Errorf("count reactions: %w", err)
			}
			replyTotal, err := db.ParticipationTotal()
			if err != nil {
				return fmt.Errorf("sum participation: %w", err)
			}

			fmt.Printf("  Messages:  %d\n", msgCount)
			fmt.Printf("  Reactions: %d\n", reactCount)
			fmt.Printf("  Replies:   %d\n", replyTotal)

			if info, err := os.Stat(cfg.DBPath); err == nil {
				sizeMB := float64(info.Size()) / 1024 / 1024
				fmt.Printf("\n=== DB Size: %.1f MB ===\n", sizeMB)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&archiveFlag, "archive", "", "Archive root (overrides config)")

	return cmd
}

func checkDir(name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s: %s (NOT FOUND)\n", name, path)
	} else if !info.IsDir() {
		fmt.Printf("  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Printf("  %s: %s (OK)\n", name, path)
	}
}
