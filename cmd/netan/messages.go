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

// clean flattens a field for TSV output.
func clean(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

func messagesCmd() *cobra.Command {
	var archiveFlag string
	var timestamps, tagged bool

	cmd := &cobra.Command{
		Use:   "messages [folder...]",
		Short: "Build the archive-wide message table and print it as TSV",
		Long: `Builds the normalized message table for the given conversation folders
(default: every conversation folder under the archive root) and prints
one row per message:

  channel, sender_name, msg_sent_time, msg_type, msg_dist_type,
  reply_count, reply_users_count, reply_users, time_thread_start,
  tm_thread_end, msg_content`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			root := cfg.ArchiveRoot
			if archiveFlag != "" {
				root = archiveFlag
			}

			folders := args
			if len(folders) == 0 {
				folders, err = archive.Conversations(root)
				if err != nil {
					return err
				}
			} else {
				for i, f := range folders {
					if !filepath.IsAbs(f) && !strings.ContainsRune(f, filepath.Separator) {
						folders[i] = filepath.Join(root, f)
					}
				}
			}

			rows, err := table.BuildArchive(folders)
			if err != nil {
				return err
			}

			sentTimes := make([]string, len(rows))
			for i, r := range rows {
				sentTimes[i] = r.MsgSentTime
			}
			if timestamps {
				loc, err := cfg.Location()
				if err != nil {
					return err
				}
				sentTimes, err = table.ConvertTimestamps(rows, "msg_sent_time", loc)
				if err != nil {
					return err
				}
			}

			var mentions [][]string
			if tagged {
				mentions = table.TaggedUsers(rows)
			}

			for i, r := range rows {
				fields := []string{
					r.Channel,
					clean(r.SenderName),
					sentTimes[i],
					r.MsgType,
					r.MsgDistType,
					fmt.Sprintf("%d", r.ReplyCount),
					fmt.Sprintf("%d", r.ReplyUsersCount),
					r.ReplyUsers,
					r.TimeThreadStart,
					r.TmThreadEnd,
					clean(r.MsgContent),
				}
				if tagged {
					fields = append(fields, strings.Join(mentions[i], ","))
				}
				fmt.Println(strings.Join(fields, "\t"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&archiveFlag, "archive", "", "Archive root (overrides config)")
	cmd.Flags().BoolVar(&timestamps, "timestamps", false, "Render msg_sent_time as readable timestamps")
	cmd.Flags().BoolVar(&tagged, "tagged", false, "Append @-mentioned user IDs per message")

	return cmd
}
