package table

import (
	"sort"

	"github.com/Eyouel-T/network-analysis/internal/archive"
)

// LeaderboardEntry is one row of the thread-participation leaderboard.
type LeaderboardEntry struct {
	LearnerName string
	Messages    int
}

// MapRealNames re-keys a participation count from user IDs to real
// names using the workspace user directory. IDs without a directory
// entry are dropped. The result is sorted by count descending, then
// name ascending so equal counts render deterministically.
func MapRealNames(users []archive.User, counts map[string]int) []LeaderboardEntry {
	namesByID := make(map[string]string, len(users))
	for _, u := range users {
		namesByID[u.ID] = u.Profile.RealName
	}

	var entries []LeaderboardEntry
	for id, n := range counts {
		name, ok := namesByID[id]
		if !ok {
			continue
		}
		entries = append(entries, LeaderboardEntry{LearnerName: name, Messages: n})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Messages != entries[j].Messages {
			return entries[i].Messages > entries[j].Messages
		}
		return entries[i].LearnerName < entries[j].LearnerName
	})
	return entries
}
