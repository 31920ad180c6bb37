// Package tui is an interactive browser over the ingested archive
// store: a filterable channel list on the left, a message transcript
// preview on the right.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Eyouel-T/network-analysis/internal/store"
)

const debounceDelay = 200 * time.Millisecond

// message types

type channelsMsg struct {
	filter   string
	channels []store.ChannelStat
	err      error
}

type debounceTickMsg struct {
	filter string
}

// model

type model struct {
	db          *store.DB
	archiveRoot string
	filter      string
	channels    []store.ChannelStat
	cursor      int
	listOffset  int
	filterInput textinput.Model
	preview     viewport.Model
	previewKey  string // channel name of the preview currently shown
	width       int
	height      int
	ready       bool
	quitting    bool
	copied      *store.ChannelStat
}

func initialModel(db *store.DB, archiveRoot string) model {
	ti := textinput.New()
	ti.Placeholder = "Filter channels..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	return model{
		db:          db,
		archiveRoot: archiveRoot,
		filterInput: ti,
		preview:     viewport.New(0, 0),
	}
}

// Run starts the browser and blocks until it exits. If the user
// selects a channel, its conversation folder path is copied to the
// clipboard.
func Run(db *store.DB, archiveRoot string) error {
	m := initialModel(db, archiveRoot)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	if fm.copied != nil {
		folder := filepath.Join(archiveRoot, fm.copied.Channel)
		if err := clipboard.WriteAll(folder); err != nil {
			fmt.Printf("%s\n", folder)
			return nil
		}
		fmt.Printf("Copied to clipboard: %s\n", folder)
	}
	return nil
}

// Init triggers the initial channel load.
func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadChannels(""))
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.preview = viewport.New(m.previewWidth(), m.panelHeight())
		if len(m.channels) > 0 && m.cursor < len(m.channels) {
			cmds = append(cmds, loadPreviewCmd(m.db, m.channels[m.cursor].Channel, m.previewWidth()))
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if len(m.channels) > 0 && m.cursor < len(m.channels) {
				c := m.channels[m.cursor]
				m.copied = &c
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.loadCurrentPreview())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.channels)-1 {
				m.cursor++
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.loadCurrentPreview())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.PreviewUp):
			m.preview.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PreviewDn):
			m.preview.LineDown(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.preview.LineUp(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.preview.LineDown(m.panelHeight())
			return m, nil
		}

		// Pass remaining keys to the filter input
		var tiCmd tea.Cmd
		m.filterInput, tiCmd = m.filterInput.Update(msg)
		cmds = append(cmds, tiCmd)

		newFilter := m.filterInput.Value()
		if newFilter != m.filter {
			m.filter = newFilter
			cmds = append(cmds, m.scheduleDebouncedLoad(newFilter))
		}
		return m, tea.Batch(cmds...)

	case debounceTickMsg:
		// Only reload if the filter hasn't changed since the tick was scheduled
		if msg.filter == m.filter {
			cmds = append(cmds, m.loadChannels(msg.filter))
		}
		return m, tea.Batch(cmds...)

	case channelsMsg:
		if msg.filter != m.filter {
			return m, nil
		}
		if msg.err != nil {
			m.channels = nil
			m.cursor = 0
			m.listOffset = 0
			m.preview.SetContent("Error: " + msg.err.Error())
			m.previewKey = ""
			return m, nil
		}
		m.channels = msg.channels
		m.cursor = 0
		m.listOffset = 0
		if len(m.channels) > 0 {
			cmds = append(cmds, m.loadCurrentPreview())
		} else {
			m.preview.SetContent("")
			m.previewKey = ""
		}
		return m, tea.Batch(cmds...)

	case previewRenderedMsg:
		if msg.channel == m.previewKey {
			return m, nil
		}
		// Skip stale previews from rapid cursor movement
		if len(m.channels) > 0 && m.cursor < len(m.channels) {
			if msg.channel != m.channels[m.cursor].Channel {
				return m, nil
			}
		}
		if msg.err != nil {
			m.preview.SetContent("Preview error: " + msg.err.Error())
		} else {
			m.preview.SetContent(msg.content)
			m.preview.GotoTop()
		}
		m.previewKey = msg.channel
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

// View renders the full TUI.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	previewW := m.previewWidth()
	panelH := m.panelHeight()

	inputRow := m.filterInput.View()

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.preview.Width = previewW
	m.preview.Height = panelH
	previewPanel := styleActiveBorder.
		Width(previewW).
		Height(panelH).
		Render(m.preview.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, m.statusBar())
}

// helper methods

func (m model) listWidth() int {
	if m.width <= 0 {
		return 40
	}
	// 40% for list, minus border padding
	w := m.width*40/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) previewWidth() int {
	if m.width <= 0 {
		return 60
	}
	// 60% for preview, minus border padding
	w := m.width*60/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract input row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

func (m model) statusBar() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%d channels", len(m.channels)))
	parts = append(parts, "up/dn navigate")
	parts = append(parts, "C-u/C-d preview")
	parts = append(parts, "Enter copy folder")
	parts = append(parts, "Esc quit")
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func (m model) loadChannels(filter string) tea.Cmd {
	db := m.db
	return func() tea.Msg {
		channels, err := db.Channels()
		if err != nil {
			return channelsMsg{filter: filter, err: err}
		}
		if filter != "" {
			lower := strings.ToLower(filter)
			var matched []store.ChannelStat
			for _, c := range channels {
				if strings.Contains(strings.ToLower(c.Channel), lower) {
					matched = append(matched, c)
				}
			}
			channels = matched
		}
		return channelsMsg{filter: filter, channels: channels}
	}
}

func (m model) scheduleDebouncedLoad(filter string) tea.Cmd {
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceTickMsg{filter: filter}
	})
}

func (m model) loadCurrentPreview() tea.Cmd {
	if len(m.channels) == 0 || m.cursor >= len(m.channels) {
		return nil
	}
	channel := m.channels[m.cursor].Channel
	if channel == m.previewKey {
		return nil // already showing this preview
	}
	return loadPreviewCmd(m.db, channel, m.previewWidth())
}
