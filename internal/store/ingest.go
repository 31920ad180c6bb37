package store

import (
	"fmt"

	"github.com/Eyouel-T/network-analysis/internal/archive"
	"github.com/Eyouel-T/network-analysis/internal/table"
)

type Stats struct {
	Channels  int
	Messages  int
	Reactions int
	Replies   int
}

func (s Stats) String() string {
	return fmt.Sprintf("channels=%d messages=%d reactions=%d replies=%d",
		s.Channels, s.Messages, s.Reactions, s.Replies)
}

// IngestArchive builds all three normalized tables for every
// conversation folder under the archive root and stores them. A
// structural error in any folder halts the run; a half-ingested archive
// would silently under-count every aggregate built on it.
func IngestArchive(db *DB, root string) (Stats, error) {
	var stats Stats

	folders, err := archive.Conversations(root)
	if err != nil {
		return stats, err
	}

	for _, folder := range folders {
		channel := archive.ConversationName(folder)

		msgs, err := table.BuildConversation(folder)
		if err != nil {
			return stats, err
		}
		reactions, err := table.ExtractReactions(folder, channel)
		if err != nil {
			return stats, err
		}
		counts, err := table.CountParticipation(folder)
		if err != nil {
			return stats, err
		}

		if err := replaceConversation(db, channel, msgs, reactions, counts); err != nil {
			return stats, fmt.Errorf("store %s: %w", channel, err)
		}

		stats.Channels++
		stats.Messages += len(msgs)
		stats.Reactions += len(reactions)
		for _, n := range counts {
			stats.Replies += n
		}
	}

	return stats, nil
}

// replaceConversation swaps in one conversation's rows atomically.
func replaceConversation(db *DB, channel string, msgs []table.MessageRow, reactions []table.ReactionRow, counts map[string]int) error {
	tx, err := db.Raw().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, t := range []string{"messages", "reactions", "participation"} {
		if _, err := tx.Exec("DELETE FROM "+t+" WHERE channel = ?", channel); err != nil {
			return err
		}
	}

	msgStmt, err := tx.Prepare(`
		INSERT INTO messages (channel, msg_type, msg_content, sender_name, msg_sent_time,
		                      msg_dist_type, time_thread_start, reply_count, reply_users_count,
		                      reply_users, tm_thread_end)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer msgStmt.Close()

	for _, m := range msgs {
		_, err := msgStmt.Exec(
			m.Channel, m.MsgType, m.MsgContent, m.SenderName, m.MsgSentTime,
			m.MsgDistType, m.TimeThreadStart, m.ReplyCount, m.ReplyUsersCount,
			m.ReplyUsers, m.TmThreadEnd,
		)
		if err != nil {
			return err
		}
	}

	reactStmt, err := tx.Prepare(`
		INSERT INTO reactions (channel, reaction_name, reaction_count, reaction_users, message, user_id)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer reactStmt.Close()

	for _, r := range reactions {
		_, err := reactStmt.Exec(r.Channel, r.ReactionName, r.ReactionCount, r.ReactionUsers, r.Message, r.UserID)
		if err != nil {
			return err
		}
	}

	partStmt, err := tx.Prepare(`
		INSERT INTO participation (channel, user_id, replies)
		VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer partStmt.Close()

	for user, n := range counts {
		if _, err := partStmt.Exec(channel, user, n); err != nil {
			return err
		}
	}

	return tx.Commit()
}
