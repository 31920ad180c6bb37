package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Eyouel-T/network-analysis/internal/archive"
	"github.com/Eyouel-T/network-analysis/internal/config"
	"github.com/Eyouel-T/network-analysis/internal/render"
	"github.com/Eyouel-T/network-analysis/internal/table"
)

func participationCmd() *cobra.Command {
	var archiveFlag string
	var chart bool
	var limit int

	cmd := &cobra.Command{
		Use:   "participation <folder>",
		Short: "Rank users by threaded replies in one conversation folder",
		Long: `Counts threaded replies per user across every event file in the folder,
maps user IDs to real names via the archive's users.json, and prints a
leaderboard sorted by reply count.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			root := cfg.ArchiveRoot
			if archiveFlag != "" {
				root = archiveFlag
			}

			folder := args[0]
			if !filepath.IsAbs(folder) && !strings.ContainsRune(folder, filepath.Separator) {
				folder = filepath.Join(root, folder)
			}

			counts, err := table.CountParticipation(folder)
			if err != nil {
				return err
			}

			users, err := archive.LoadUsers(root)
			if err != nil {
				return err
			}

			entries := table.MapRealNames(users, counts)
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			if chart {
				width := 80
				if term.IsTerminal(int(os.Stdout.Fd())) {
					if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
						width = w
					}
				}
				fmt.Print(render.BarChart(entries, width))
				return nil
			}

			fmt.Print(render.Leaderboard(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&archiveFlag, "archive", "", "Archive root (overrides config)")
	cmd.Flags().BoolVar(&chart, "chart", false, "Render a bar chart instead of a table")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max entries (0 = no limit)")

	return cmd
}
