// Package store persists the normalized archive tables in SQLite so
// repeated analysis runs don't re-walk the export tree.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA cache_size = -64000;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS messages (
    channel           TEXT NOT NULL,
    msg_type          TEXT NOT NULL,
    msg_content       TEXT NOT NULL,
    sender_name       TEXT NOT NULL,
    msg_sent_time     TEXT NOT NULL,
    msg_dist_type     TEXT NOT NULL,
    time_thread_start TEXT NOT NULL DEFAULT '0',
    reply_count       INTEGER NOT NULL DEFAULT 0,
    reply_users_count INTEGER NOT NULL DEFAULT 0,
    reply_users       TEXT NOT NULL DEFAULT '0',
    tm_thread_end     TEXT NOT NULL DEFAULT '0'
);

CREATE INDEX IF NOT EXISTS messages_channel ON messages(channel);

CREATE TABLE IF NOT EXISTS reactions (
    channel        TEXT NOT NULL,
    reaction_name  TEXT NOT NULL,
    reaction_count INTEGER NOT NULL,
    reaction_users TEXT NOT NULL,
    message        TEXT NOT NULL,
    user_id        TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS reactions_channel ON reactions(channel);

CREATE TABLE IF NOT EXISTS participation (
    channel TEXT NOT NULL,
    user_id TEXT NOT NULL,
    replies INTEGER NOT NULL,
    PRIMARY KEY (channel, user_id)
);
`

// schemaVersion should be bumped whenever the normalization logic
// changes, so stale rows from older runs are discarded on open.
const schemaVersion = "1"

type DB struct {
	db *sql.DB
}

func OpenDB(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	db.Exec("CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT)")
	d := &DB{db: db}
	d.migrateSchemaVersion()

	return d, nil
}

func (d *DB) migrateSchemaVersion() {
	var ver string
	err := d.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&ver)
	if err != nil || ver != schemaVersion {
		d.db.Exec("DELETE FROM messages")
		d.db.Exec("DELETE FROM reactions")
		d.db.Exec("DELETE FROM participation")
		d.db.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)", schemaVersion)
	}
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

func (d *DB) MessageCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&n)
	return n, err
}

func (d *DB) ReactionCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM reactions").Scan(&n)
	return n, err
}

// ParticipationTotal is the sum of all stored reply counts.
func (d *DB) ParticipationTotal() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COALESCE(SUM(replies), 0) FROM participation").Scan(&n)
	return n, err
}

// ChannelStat pairs a stored channel with its message count.
type ChannelStat struct {
	Channel  string
	Messages int
}

// Channels returns every stored channel with its message count, sorted
// by count descending then name.
func (d *DB) Channels() ([]ChannelStat, error) {
	rows, err := d.db.Query(`
		SELECT channel, COUNT(*) as n
		FROM messages
		GROUP BY channel
		ORDER BY n DESC, channel
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []ChannelStat
	for rows.Next() {
		var s ChannelStat
		if err := rows.Scan(&s.Channel, &s.Messages); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// StoredMessage is one persisted message row, as needed for previews.
type StoredMessage struct {
	Channel     string
	SenderName  string
	MsgSentTime string
	MsgContent  string
	ReplyCount  int
}

// ChannelMessages returns up to limit stored messages for one channel
// in sent-time order. limit <= 0 means no limit.
func (d *DB) ChannelMessages(channel string, limit int) ([]StoredMessage, error) {
	q := `
		SELECT channel, sender_name, msg_sent_time, msg_content, reply_count
		FROM messages
		WHERE channel = ?
		ORDER BY msg_sent_time
	`
	args := []interface{}{channel}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []StoredMessage
	for rows.Next() {
		var m StoredMessage
		if err := rows.Scan(&m.Channel, &m.SenderName, &m.MsgSentTime, &m.MsgContent, &m.ReplyCount); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
