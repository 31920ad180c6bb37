package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eyouel-T/network-analysis/internal/archive"
	"github.com/Eyouel-T/network-analysis/internal/config"
)

func usersCmd() *cobra.Command {
	var archiveFlag string

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List workspace users from the archive's users.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			root := cfg.ArchiveRoot
			if archiveFlag != "" {
				root = archiveFlag
			}

			users, err := archive.LoadUsers(root)
			if err != nil {
				return err
			}

			for _, u := range users {
				kind := "member"
				switch {
				case u.IsBot:
					kind = "bot"
				case u.IsAdmin:
					kind = "admin"
				}
				fmt.Printf("%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, clean(u.Profile.RealName), u.TZ, kind)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&archiveFlag, "archive", "", "Archive root (overrides config)")

	return cmd
}
