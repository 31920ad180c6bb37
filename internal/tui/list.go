package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Eyouel-T/network-analysis/internal/store"
)

// renderList renders the left panel: channel list with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.channels) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No channels")
		return empty
	}

	var lines []string
	for i, c := range m.channels {
		if i < m.listOffset {
			continue
		}
		if len(lines) >= height {
			break
		}
		lines = append(lines, formatChannelLine(c, width, i == m.cursor))
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatChannelLine formats one channel as "[>] #name  count".
func formatChannelLine(c store.ChannelStat, width int, selected bool) string {
	count := fmt.Sprintf("%d", c.Messages)

	name := "#" + c.Channel
	nameMax := width - 2 - runewidth.StringWidth(count) - 2
	if nameMax < 0 {
		nameMax = 0
	}
	if runewidth.StringWidth(name) > nameMax {
		name = runewidth.Truncate(name, nameMax, "")
	}

	line := fmt.Sprintf("%s %s", runewidth.FillRight(name, nameMax), styleListCount.Render(count))
	if selected {
		return styleListSelected.Render("> ") + line
	}
	return "  " + line
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	if listHeight < 1 {
		listHeight = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+listHeight {
		m.listOffset = m.cursor - listHeight + 1
	}
}
