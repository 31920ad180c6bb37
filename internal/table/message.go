// Package table builds the normalized tabular datasets from raw archive
// events: per-message rows, per-reaction rows, and per-user
// participation counts.
package table

import (
	"strings"

	"github.com/Eyouel-T/network-analysis/internal/archive"
)

const (
	// SenderNotProvided marks rows whose event carried no user_profile.
	// Such rows are filtered out of conversation tables.
	SenderNotProvided = "Not provided"

	// DistReshared marks messages without a usable rich-text block path.
	DistReshared = "reshared"

	// AbsentTS is the placeholder for epoch fields whose source key was
	// missing. Epoch fields stay strings throughout, so the placeholder
	// is the string "0" rather than a mixed-type zero.
	AbsentTS = "0"
)

// MessageRow is one normalized message. Fields mirror the event fields
// verbatim where present; otherwise the documented defaults apply.
type MessageRow struct {
	MsgType         string
	MsgContent      string
	SenderName      string
	MsgSentTime     string
	MsgDistType     string
	TimeThreadStart string
	ReplyCount      int
	ReplyUsersCount int
	ReplyUsers      string
	TmThreadEnd     string
	Channel         string
}

// Normalize projects one raw event into a MessageRow tagged with the
// conversation name. The second return is false when the event produces
// no row at all (bot events). Pure and independent per event.
func Normalize(ev archive.RawEvent, channel string) (MessageRow, bool) {
	if ev.BotID != "" {
		return MessageRow{}, false
	}

	row := MessageRow{
		MsgType:         ev.Type,
		MsgContent:      ev.Text,
		SenderName:      SenderNotProvided,
		MsgSentTime:     ev.TS,
		MsgDistType:     distType(ev.Blocks),
		TimeThreadStart: AbsentTS,
		ReplyUsers:      AbsentTS,
		TmThreadEnd:     AbsentTS,
		Channel:         channel,
	}

	if ev.UserProfile != nil {
		row.SenderName = ev.UserProfile.RealName
	}
	if ev.ThreadTS != "" {
		row.TimeThreadStart = ev.ThreadTS
	}
	if len(ev.ReplyUsers) > 0 {
		row.ReplyUsers = strings.Join(ev.ReplyUsers, ",")
	}
	if ev.ReplyCount != nil {
		row.ReplyCount = *ev.ReplyCount
		row.ReplyUsersCount = ev.ReplyUsersCount
		row.TmThreadEnd = ev.LatestReply
	}

	return row, true
}

// distType classifies the message's distribution type from the first
// inline element of the first block section. Any structural gap along
// that path falls back to the reshared label.
func distType(blocks []archive.Block) string {
	if len(blocks) == 0 || len(blocks[0].Elements) == 0 {
		return DistReshared
	}
	inner := blocks[0].Elements[0].Elements
	if len(inner) == 0 {
		return DistReshared
	}
	return inner[0].Type
}

// BuildConversation normalizes every event across every event file in
// one conversation folder into a single table. Rows whose sender is
// unknown are dropped, and every surviving row is tagged with the
// folder's conversation name. Row order is file order, then original
// event order within a file. An empty folder yields an empty table;
// structural errors abort the build.
func BuildConversation(folder string) ([]MessageRow, error) {
	files, err := archive.EventFiles(folder)
	if err != nil {
		return nil, err
	}
	channel := archive.ConversationName(folder)

	var rows []MessageRow
	for _, file := range files {
		events, err := archive.ReadEvents(file)
		if err != nil {
			return nil, err
		}
		for _, ev := range events {
			row, ok := Normalize(ev, channel)
			if !ok || row.SenderName == SenderNotProvided {
				continue
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}
