package archive

import (
	"encoding/json"
	"fmt"
	"os"
)

// RawEvent is one entry of a conversation's exported JSON array. Almost
// every field is optional in the export; absence is a first-class case
// handled by the normalizer, never an error. Pointer fields distinguish
// "key missing" from a zero value where the distinction matters.
type RawEvent struct {
	Type            string       `json:"type"`
	Subtype         string       `json:"subtype"`
	Text            string       `json:"text"`
	User            string       `json:"user"`
	TS              string       `json:"ts"`
	BotID           string       `json:"bot_id"`
	ThreadTS        string       `json:"thread_ts"`
	UserProfile     *UserProfile `json:"user_profile"`
	Blocks          []Block      `json:"blocks"`
	ReplyCount      *int         `json:"reply_count"`
	ReplyUsersCount int          `json:"reply_users_count"`
	ReplyUsers      []string     `json:"reply_users"`
	LatestReply     string       `json:"latest_reply"`
	Reactions       []Reaction   `json:"reactions"`
	Replies         []Reply      `json:"replies"`
}

// UserProfile is the inline profile attached to some message events.
type UserProfile struct {
	RealName     string `json:"real_name"`
	DisplayName  string `json:"display_name"`
	Name         string `json:"name"`
	Team         string `json:"team"`
	IsRestricted bool   `json:"is_restricted"`
}

// Block is one rich-text block. Only the nesting needed to classify the
// first inline element is modeled.
type Block struct {
	Type     string         `json:"type"`
	Elements []BlockElement `json:"elements"`
}

// BlockElement is a section of a rich-text block.
type BlockElement struct {
	Type     string          `json:"type"`
	Elements []InlineElement `json:"elements"`
}

// InlineElement is a leaf element (text, link, user mention, emoji, ...).
type InlineElement struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Reaction is one emoji reaction entry on an event.
type Reaction struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Users []string `json:"users"`
}

// Reply is one threaded reply stub on a thread parent event.
type Reply struct {
	User string `json:"user"`
	TS   string `json:"ts"`
}

// ReadEvents decodes one event file into its raw events. Invalid JSON is
// a ParseError; valid JSON that is not an array of objects is a
// MalformedArchiveError.
func ReadEvents(path string) ([]RawEvent, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		if json.Valid(data) {
			return nil, &MalformedArchiveError{Path: path, Reason: "not a JSON array"}
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	events := make([]RawEvent, 0, len(elems))
	for i, raw := range elems {
		var ev RawEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return nil, &MalformedArchiveError{
				Path:   path,
				Reason: fmt.Sprintf("event %d is not an object: %v", i, err),
			}
		}
		events = append(events, ev)
	}
	return events, nil
}
