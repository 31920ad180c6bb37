package table

import (
	"strings"

	"github.com/Eyouel-T/network-analysis/internal/archive"
)

// ReactionRow is one (message, reaction-type) pair.
type ReactionRow struct {
	ReactionName  string
	ReactionCount int
	ReactionUsers string
	Message       string
	UserID        string
	Channel       string
}

// ExtractReactions walks every event in a conversation folder and emits
// one row per entry of each event's reactions list, all sharing the
// reacted message's text and author. Events without reactions
// contribute nothing. Unlike Normalize, bot events are not excluded
// here; keep that asymmetry.
func ExtractReactions(folder, channel string) ([]ReactionRow, error) {
	files, err := archive.EventFiles(folder)
	if err != nil {
		return nil, err
	}

	var rows []ReactionRow
	for _, file := range files {
		events, err := archive.ReadEvents(file)
		if err != nil {
			return nil, err
		}
		for _, ev := range events {
			for _, r := range ev.Reactions {
				rows = append(rows, ReactionRow{
					ReactionName:  r.Name,
					ReactionCount: r.Count,
					ReactionUsers: strings.Join(r.Users, ","),
					Message:       ev.Text,
					UserID:        ev.User,
					Channel:       channel,
				})
			}
		}
	}
	return rows, nil
}
