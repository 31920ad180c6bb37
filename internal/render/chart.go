package render

import (
	"fmt"
	"strings"

	"github.com/Eyouel-T/network-analysis/internal/table"
	"github.com/mattn/go-runewidth"
)

const colorBarFill = "\033[36m" // cyan

// Leaderboard renders the thread-participation leaderboard as a
// two-column table.
func Leaderboard(entries []table.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "(no participation data)\n"
	}

	nameW := runewidth.StringWidth("LearnerName")
	for _, e := range entries {
		if w := runewidth.StringWidth(e.LearnerName); w > nameW {
			nameW = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", runewidth.FillRight("LearnerName", nameW), "# of Msg sent in Threads")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %d\n", runewidth.FillRight(e.LearnerName, nameW), e.Messages)
	}
	return b.String()
}

// BarChart renders the leaderboard as a horizontal bar chart scaled to
// the given terminal width. Zero and negative widths get a sane default.
func BarChart(entries []table.LeaderboardEntry, width int) string {
	if len(entries) == 0 {
		return "(no participation data)\n"
	}
	if width <= 0 {
		width = 80
	}

	nameW := 0
	max := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e.LearnerName); w > nameW {
			nameW = w
		}
		if e.Messages > max {
			max = e.Messages
		}
	}
	if max == 0 {
		max = 1
	}

	// name, space, bar, space, count
	barW := width - nameW - 8
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for _, e := range entries {
		n := e.Messages * barW / max
		if n == 0 && e.Messages > 0 {
			n = 1
		}
		fmt.Fprintf(&b, "%s %s%s%s %d\n",
			runewidth.FillRight(e.LearnerName, nameW),
			colorBarFill, strings.Repeat("█", n), colorReset,
			e.Messages,
		)
	}
	return b.String()
}
