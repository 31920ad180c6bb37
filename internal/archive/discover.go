package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EventFiles returns the *.json event files directly inside a
// conversation folder, non-recursive, in sorted order so repeated builds
// see the same file sequence.
func EventFiles(folder string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(folder, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", folder, err)
	}
	return files, nil
}

// Conversations lists the conversation subdirectories of the archive
// root, sorted by name. Plain files (users.json, channels.json) are not
// conversations and are skipped.
func Conversations(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Path: root}
	}
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", root, err)
	}

	var folders []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		folders = append(folders, filepath.Join(root, e.Name()))
	}
	return folders, nil
}

// ConversationName derives the channel label from a folder path: the
// base path segment with any extension stripped.
func ConversationName(folder string) string {
	base := filepath.Base(folder)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}
