package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Eyouel-T/network-analysis/internal/archive"
	"github.com/Eyouel-T/network-analysis/internal/config"
	"github.com/Eyouel-T/network-analysis/internal/table"
)

func reactionsCmd() *cobra.Command {
	var archiveFlag, channelFlag string

	cmd := &cobra.Command{
		Use:   "reactions <folder>",
		Short: "Extract the per-reaction table for one conversation folder",
		Args:  cobra.ExactArgs(1),
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

			channel := channelFlag
			if channel == "" {
				channel = archive.ConversationName(folder)
			}

			rows, err := table.ExtractReactions(folder, channel)
			if err != nil {
				return err
			}

			for _, r := range rows {
				fmt.Printf("%s\t%s\t%d\t%s\t%s\t%s\n",
					r.Channel,
					r.ReactionName,
					r.ReactionCount,
					r.ReactionUsers,
					r.UserID,
					clean(r.Message),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&archiveFlag, "archive", "", "Archive root (overrides config)")
	cmd.Flags().StringVar(&channelFlag, "channel", "", "Channel label (default: folder name)")

	return cmd
}
