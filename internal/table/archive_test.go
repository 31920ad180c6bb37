package table

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Eyouel-T/network-analysis/internal/archive"
)

func TestBuildArchive(t *testing.T) {
	root := t.TempDir()
	week1 := filepath.Join(root, "all-week1")
	week2 := filepath.Join(root, "all-week2")
	empty := filepath.Join(root, "all-ideas")

	writeEvents(t, week1, "a.json", `[
		{"type": "message", "text": "w1-1", "user_profile": {"real_name": "Ada"}, "ts": "1"},
		{"type": "message", "text": "w1-2", "user_profile": {"real_name": "Grace"}, "ts": "2"}
	]`)
	writeEvents(t, week2, "a.json",
		`[{"type": "message", "text": "w2-1", "user_profile": {"real_name": "Ada"}, "ts": "3"}]`)
	if err := os.MkdirAll(empty, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	rows, err := BuildArchive([]string{week1, empty, week2})
	if err != nil {
		t.Fatalf("BuildArchive() error = %v", err)
	}

	// total equals the sum of the per-folder tables; empty folder is neutral
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	// concatenation preserves input folder order, and slice positions are
	// the contiguous row index
	wantChannels := []string{"all-week1", "all-week1", "all-week2"}
	for i, r := range rows {
		if r.Channel != wantChannels[i] {
			t.Errorf("rows[%d].Channel = %q, want %q", i, r.Channel, wantChannels[i])
		}
	}
}

func TestBuildArchive_MissingFolder(t *testing.T) {
	root := t.TempDir()
	week1 := filepath.Join(root, "all-week1")
	writeEvents(t, week1, "a.json",
		`[{"type": "message", "text": "hi", "user_profile": {"real_name": "Ada"}, "ts": "1"}]`)

	_, err := BuildArchive([]string{week1, filepath.Join(root, "no-such-channel")})
	var me *archive.MalformedArchiveError
	if !errors.As(err, &me) {
		t.Errorf("error = %v, want MalformedArchiveError", err)
	}
}
