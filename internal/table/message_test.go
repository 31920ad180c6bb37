package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Eyouel-T/network-analysis/internal/archive"
)

func intp(n int) *int { return &n }

func writeEvents(t *testing.T, folder, name, content string) {
	t.Helper()
	if err := os.MkdirAll(folder, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(folder, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestNormalize(t *testing.T) {
	profile := &archive.UserProfile{RealName: "Ada Lovelace"}

	tests := []struct {
		name    string
		ev      archive.RawEvent
		want    MessageRow
		wantRow bool
	}{
		{
			name:    "BotEventSkipped",
			ev:      archive.RawEvent{Type: "message", Text: "automated", TS: "100", BotID: "B1"},
			wantRow: false,
		},
		{
			name: "MinimalMessage",
			ev:   archive.RawEvent{Type: "message", Text: "hi", TS: "100", UserProfile: profile},
			want: MessageRow{
				MsgType: "message", MsgContent: "hi", SenderName: "Ada Lovelace",
				MsgSentTime: "100", MsgDistType: DistReshared,
				TimeThreadStart: "0", ReplyUsers: "0", TmThreadEnd: "0",
				Channel: "general",
			},
			wantRow: true,
		},
		{
			name: "NoProfileGetsSentinel",
			ev:   archive.RawEvent{Type: "message", Text: "hi", TS: "100"},
			want: MessageRow{
				MsgType: "message", MsgContent: "hi", SenderName: SenderNotProvided,
				MsgSentTime: "100", MsgDistType: DistReshared,
				TimeThreadStart: "0", ReplyUsers: "0", TmThreadEnd: "0",
				Channel: "general",
			},
			wantRow: true,
		},
		{
			name: "ThreadParent",
			ev: archive.RawEvent{
				Type: "message", Text: "parent", TS: "100", UserProfile: profile,
				ThreadTS: "100", ReplyCount: intp(3), ReplyUsersCount: 2,
				ReplyUsers: []string{"U1", "U2"}, LatestReply: "250",
			},
			want: MessageRow{
				MsgType: "message", MsgContent: "parent", SenderName: "Ada Lovelace",
				MsgSentTime: "100", MsgDistType: DistReshared,
				TimeThreadStart: "100", ReplyCount: 3, ReplyUsersCount: 2,
				ReplyUsers: "U1,U2", TmThreadEnd: "250",
				Channel: "general",
			},
			wantRow: true,
		},
		{
			name: "BlockElementType",
			ev: archive.RawEvent{
				Type: "message", Text: "link", TS: "100", UserProfile: profile,
				Blocks: []archive.Block{{
					Type: "rich_text",
					Elements: []archive.BlockElement{{
						Type:     "rich_text_section",
						Elements: []archive.InlineElement{{Type: "link"}, {Type: "text"}},
					}},
				}},
			},
			want: MessageRow{
				MsgType: "message", MsgContent: "link", SenderName: "Ada Lovelace",
				MsgSentTime: "100", MsgDistType: "link",
				TimeThreadStart: "0", ReplyUsers: "0", TmThreadEnd: "0",
				Channel: "general",
			},
			wantRow: true,
		},
		{
			name: "EmptyInnerElementsIsReshared",
			ev: archive.RawEvent{
				Type: "message", Text: "pic", TS: "100", UserProfile: profile,
				Blocks: []archive.Block{{
					Type:     "rich_text",
					Elements: []archive.BlockElement{{Type: "rich_text_section"}},
				}},
			},
			want: MessageRow{
				MsgType: "message", MsgContent: "pic", SenderName: "Ada Lovelace",
				MsgSentTime: "100", MsgDistType: DistReshared,
				TimeThreadStart: "0", ReplyUsers: "0", TmThreadEnd: "0",
				Channel: "general",
			},
			wantRow: true,
		},
		{
			name: "BlockWithoutSectionsIsReshared",
			ev: archive.RawEvent{
				Type: "message", Text: "pic", TS: "100", UserProfile: profile,
				Blocks: []archive.Block{{Type: "rich_text"}},
			},
			want: MessageRow{
				MsgType: "message", MsgContent: "pic", SenderName: "Ada Lovelace",
				MsgSentTime: "100", MsgDistType: DistReshared,
				TimeThreadStart: "0", ReplyUsers: "0", TmThreadEnd: "0",
				Channel: "general",
			},
			wantRow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.ev, "general")
			if ok != tt.wantRow {
				t.Fatalf("Normalize() ok = %v, want %v", ok, tt.wantRow)
			}
			if !tt.wantRow {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("row mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildConversation_Scenario(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "all-week1")
	writeEvents(t, folder, "2023-01-01.json",
		`[{"type": "message", "text": "hi", "user_profile": {"real_name": "Ada"}, "ts": "100"}]`)

	rows, err := BuildConversation(folder)
	if err != nil {
		t.Fatalf("BuildConversation() error = %v", err)
	}

	want := []MessageRow{{
		MsgType: "message", MsgContent: "hi", SenderName: "Ada",
		MsgSentTime: "100", MsgDistType: DistReshared,
		TimeThreadStart: "0", ReplyUsers: "0", TmThreadEnd: "0",
		Channel: "all-week1",
	}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildConversation_FiltersAndSkips(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "random")
	writeEvents(t, folder, "day1.json", `[
		{"type": "message", "text": "kept", "user_profile": {"real_name": "Ada"}, "ts": "1"},
		{"type": "message", "text": "anonymous", "ts": "2"},
		{"type": "message", "text": "bot noise", "ts": "3", "bot_id": "B1"}
	]`)

	rows, err := BuildConversation(folder)
	if err != nil {
		t.Fatalf("BuildConversation() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].MsgContent != "kept" {
		t.Errorf("MsgContent = %q, want %q", rows[0].MsgContent, "kept")
	}
	for _, r := range rows {
		if r.SenderName == SenderNotProvided {
			t.Errorf("row with sentinel sender survived the filter: %+v", r)
		}
	}
}

func TestBuildConversation_FileOrder(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "ordered")
	writeEvents(t, folder, "2023-01-02.json",
		`[{"type": "message", "text": "second", "user_profile": {"real_name": "Ada"}, "ts": "2"}]`)
	writeEvents(t, folder, "2023-01-01.json", `[
		{"type": "message", "text": "first", "user_profile": {"real_name": "Ada"}, "ts": "1"},
		{"type": "message", "text": "first-b", "user_profile": {"real_name": "Ada"}, "ts": "1.5"}
	]`)

	rows, err := BuildConversation(folder)
	if err != nil {
		t.Fatalf("BuildConversation() error = %v", err)
	}

	var got []string
	for _, r := range rows {
		got = append(got, r.MsgContent)
	}
	want := []string{"first", "first-b", "second"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("row order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildConversation_Idempotent(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "stable")
	writeEvents(t, folder, "a.json",
		`[{"type": "message", "text": "one", "user_profile": {"real_name": "Ada"}, "ts": "1"}]`)
	writeEvents(t, folder, "b.json",
		`[{"type": "message", "text": "two", "user_profile": {"real_name": "Grace"}, "ts": "2"}]`)

	first, err := BuildConversation(folder)
	if err != nil {
		t.Fatalf("BuildConversation() error = %v", err)
	}
	second, err := BuildConversation(folder)
	if err != nil {
		t.Fatalf("BuildConversation() second error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("rebuild differs (-first +second):\n%s", diff)
	}
}

func TestBuildConversation_EmptyFolder(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "empty")
	if err := os.MkdirAll(folder, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	rows, err := BuildConversation(folder)
	if err != nil {
		t.Fatalf("BuildConversation() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(rows))
	}
}

func TestBuildConversation_MalformedFileAborts(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "broken")
	writeEvents(t, folder, "a.json",
		`[{"type": "message", "text": "fine", "user_profile": {"real_name": "Ada"}, "ts": "1"}]`)
	writeEvents(t, folder, "b.json", `{"not": "an array"}`)

	if _, err := BuildConversation(folder); err == nil {
		t.Fatal("BuildConversation() error = nil, want structural error")
	}
}
