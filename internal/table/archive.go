package table

import (
	"os"

	"github.com/Eyouel-T/network-analysis/internal/archive"
)

// BuildArchive builds the conversation table for every folder in the
// given order and concatenates the results. The slice index is the row
// index: contiguous from zero by construction. A folder that does not
// exist is a MalformedArchiveError, not an empty table, so that a
// silently missing conversation is never mistaken for one with zero
// messages.
func BuildArchive(folders []string) ([]MessageRow, error) {
	var all []MessageRow
	for _, folder := range folders {
		info, err := os.Stat(folder)
		if err != nil || !info.IsDir() {
			return nil, &archive.MalformedArchiveError{Path: folder, Reason: "conversation folder does not exist"}
		}
		rows, err := BuildConversation(folder)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}
	return all, nil
}
