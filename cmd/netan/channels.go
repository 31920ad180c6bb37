package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eyouel-T/network-analysis/internal/archive"
	"github.com/Eyouel-T/network-analysis/internal/config"
)

func channelsCmd() *cobra.Command {
	var archiveFlag string

	cmd := &cobra.Command{
		Use:   "channels",
		Short: "List conversations from the archive's channels.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			root := cfg.ArchiveRoot
			if archiveFlag != "" {
				root = archiveFlag
			}

			channels, err := archive.LoadChannels(root)
			if err != nil {
				return err
			}

			for _, c := range channels {
				state := ""
				if c.IsArchived {
					state = "archived"
				}
				fmt.Printf("%s\t%s\t%d\t%s\t%s\n", c.ID, c.Name, len(c.Members), clean(c.Topic.Value), state)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&archiveFlag, "archive", "", "Archive root (overrides config)")

	return cmd
}
