package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Eyouel-T/network-analysis/internal/render"
	"github.com/Eyouel-T/network-analysis/internal/store"
)

// previewRenderedMsg is sent when an async preview render completes.
type previewRenderedMsg struct {
	channel string
	content string
	err     error
}

// loadPreviewCmd returns a tea.Cmd that renders a channel transcript async.
func loadPreviewCmd(db *store.DB, channel string, width int) tea.Cmd {
	return func() tea.Msg {
		content, err := render.RenderChannel(db, channel, render.Options{
			Width: width,
		})
		return previewRenderedMsg{
			channel: channel,
			content: content,
			err:     err,
		}
	}
}
