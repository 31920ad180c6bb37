package archive

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestReadEvents(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "2023-01-01.json", `[
		{"type": "message", "text": "hello", "ts": "100.000100", "user": "U1"},
		{"type": "message", "text": "hi", "ts": "101.000200", "bot_id": "B1"}
	]`)

	events, err := ReadEvents(path)
	if err != nil {
		t.Fatalf("ReadEvents() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].Text != "hello" {
		t.Errorf("Text = %q, want %q", events[0].Text, "hello")
	}
	if events[0].BotID != "" {
		t.Errorf("BotID = %q, want empty", events[0].BotID)
	}
	if events[1].BotID != "B1" {
		t.Errorf("BotID = %q, want %q", events[1].BotID, "B1")
	}
}

func TestReadEvents_OptionalFields(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "day.json", `[{
		"type": "message",
		"text": "parent",
		"ts": "100",
		"thread_ts": "100",
		"user_profile": {"real_name": "Ada Lovelace"},
		"reply_count": 2,
		"reply_users_count": 2,
		"reply_users": ["U1", "U2"],
		"latest_reply": "200",
		"reactions": [{"name": "thumbsup", "count": 2, "users": ["U1", "U2"]}],
		"replies": [{"user": "U1", "ts": "150"}, {"user": "U2", "ts": "200"}],
		"blocks": [{"type": "rich_text", "elements": [{"type": "rich_text_section", "elements": [{"type": "text", "text": "parent"}]}]}]
	}]`)

	events, err := ReadEvents(path)
	if err != nil {
		t.Fatalf("ReadEvents() error = %v", err)
	}
	ev := events[0]

	if ev.UserProfile == nil || ev.UserProfile.RealName != "Ada Lovelace" {
		t.Errorf("UserProfile = %+v, want real_name Ada Lovelace", ev.UserProfile)
	}
	if ev.ReplyCount == nil || *ev.ReplyCount != 2 {
		t.Errorf("ReplyCount = %v, want 2", ev.ReplyCount)
	}
	if len(ev.Reactions) != 1 || ev.Reactions[0].Name != "thumbsup" {
		t.Errorf("Reactions = %+v, want one thumbsup", ev.Reactions)
	}
	if len(ev.Replies) != 2 {
		t.Errorf("len(Replies) = %d, want 2", len(ev.Replies))
	}
	if len(ev.Blocks) != 1 || ev.Blocks[0].Elements[0].Elements[0].Type != "text" {
		t.Errorf("Blocks = %+v, want inner element type text", ev.Blocks)
	}
}

func TestReadEvents_AbsentKeysStayAbsent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "day.json", `[{"type": "message", "text": "hi", "ts": "1"}]`)

	events, err := ReadEvents(path)
	if err != nil {
		t.Fatalf("ReadEvents() error = %v", err)
	}
	ev := events[0]

	if ev.UserProfile != nil {
		t.Errorf("UserProfile = %+v, want nil", ev.UserProfile)
	}
	if ev.ReplyCount != nil {
		t.Errorf("ReplyCount = %v, want nil", ev.ReplyCount)
	}
	if ev.ReplyUsers != nil {
		t.Errorf("ReplyUsers = %v, want nil", ev.ReplyUsers)
	}
	if ev.ThreadTS != "" {
		t.Errorf("ThreadTS = %q, want empty", ev.ThreadTS)
	}
}

func TestReadEvents_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    any
	}{
		{
			name:    "InvalidJSON",
			content: `[{"type": "message"`,
			want:    &ParseError{},
		},
		{
			name:    "NotAnArray",
			content: `{"type": "message"}`,
			want:    &MalformedArchiveError{},
		},
		{
			name:    "ElementNotObject",
			content: `[1, 2, 3]`,
			want:    &MalformedArchiveError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name+".json", tt.content)
			_, err := ReadEvents(path)
			if err == nil {
				t.Fatal("ReadEvents() error = nil, want error")
			}
			switch want := tt.want.(type) {
			case *ParseError:
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Errorf("error = %v (%T), want ParseError", err, err)
				}
			case *MalformedArchiveError:
				var me *MalformedArchiveError
				if !errors.As(err, &me) {
					t.Errorf("error = %v (%T), want MalformedArchiveError", err, err)
				}
			default:
				t.Fatalf("unhandled want type %T", want)
			}
		})
	}
}

func TestReadEvents_Missing(t *testing.T) {
	_, err := ReadEvents(filepath.Join(t.TempDir(), "nope.json"))
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
}
