package table

import "github.com/Eyouel-T/network-analysis/internal/archive"

// CountParticipation counts threaded replies per user across every
// event file in a conversation folder: each entry of an event's replies
// list increments its author's count by one. The counter accumulates
// across files and is only reset between calls. Iteration order of the
// result is unspecified; callers wanting a ranked view sort explicitly.
func CountParticipation(folder string) (map[string]int, error) {
	files, err := archive.EventFiles(folder)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, file := range files {
		events, err := archive.ReadEvents(file)
		if err != nil {
			return nil, err
		}
		for _, ev := range events {
			for _, reply := range ev.Replies {
				counts[reply.User]++
			}
		}
	}
	return counts, nil
}
