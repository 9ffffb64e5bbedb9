// ============================================================================
// sptext - Text Utility Dispatcher
// ============================================================================
//
// Package:     playground
// Description: Bubbletea model for the interactive method playground
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package playground

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	mdwlog "github.com/msto63/sptext/foundation/core/log"
	"github.com/msto63/sptext/foundation/sptext"
	"github.com/msto63/sptext/internal/textio"
	"github.com/msto63/sptext/internal/tui"
)

// DefaultHistoryLimit is the number of calls kept when nothing is configured
const DefaultHistoryLimit = 20

// Model is the playground model. Up and down select a method, the input
// takes the arguments as a YAML flow list and enter dispatches.
type Model struct {
	// State
	width  int
	height int

	// Components
	input textinput.Model

	// Dispatch state
	methods      []sptext.MethodDefinition
	selected     int
	history      []HistoryEntry
	historyLimit int
	status       string

	dispatcher *sptext.Dispatcher
}

// New creates a playground model
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = `"/dir1/dir2/", "/"`
	ti.Prompt = "args> "
	ti.CharLimit = 1000
	ti.Width = 60
	ti.Focus()

	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	logger := cfg.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}

	return Model{
		input:        ti,
		methods:      sptext.Methods(),
		historyLimit: limit,
		dispatcher:   sptext.New(sptext.Options{Logger: logger}),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down":
			if m.selected < len(m.methods)-1 {
				m.selected++
			}
			return m, nil
		case "ctrl+l":
			m.history = nil
			m.status = ""
			return m, nil
		case "enter":
			m.dispatch()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Width > 10 {
			m.input.Width = msg.Width - 10
		}
		return m, nil

	case settingsChangedMsg:
		if msg.historyLimit > 0 {
			m.historyLimit = msg.historyLimit
			m.trimHistory()
		}
		m.status = "configuration reloaded"
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Selected returns the currently selected method
func (m Model) Selected() sptext.MethodDefinition {
	return m.methods[m.selected]
}

// History returns the recorded calls, newest first
func (m Model) History() []HistoryEntry {
	return append([]HistoryEntry(nil), m.history...)
}

func (m *Model) dispatch() {
	method := m.Selected()
	line := m.input.Value()
	entry := HistoryEntry{Method: method.Name, Input: line}

	args, err := textio.ParseFlow(line)
	if err == nil {
		var result any
		result, err = m.dispatcher.Dispatch(method.Name, args...)
		if err == nil {
			entry.Result = textio.Quote(result)
		}
	}
	entry.Err = err

	m.history = append([]HistoryEntry{entry}, m.history...)
	m.trimHistory()
	m.status = ""
}

func (m *Model) trimHistory() {
	if len(m.history) > m.historyLimit {
		m.history = m.history[:m.historyLimit]
	}
}

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(tui.RenderTitle("sptext playground"))
	s.WriteString("\n")

	for i, method := range m.methods {
		if i == m.selected {
			s.WriteString(tui.SelectedMenuItemStyle.Render("> " + method.Signature()))
		} else {
			s.WriteString(tui.MenuItemStyle.Render("  " + method.Signature()))
		}
		s.WriteString("\n")
	}

	selected := m.Selected()
	s.WriteString("\n")
	s.WriteString(tui.SubtitleStyle.Render(selected.Description))
	s.WriteString("\n")
	for _, ex := range selected.Examples {
		s.WriteString(tui.SubtitleStyle.Render("  " + ex))
		s.WriteString("\n")
	}

	s.WriteString(tui.FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")

	if len(m.history) > 0 {
		var h strings.Builder
		for i, entry := range m.history {
			if i > 0 {
				h.WriteString("\n")
			}
			call := fmt.Sprintf("%s(%s)", entry.Method, entry.Input)
			if entry.Err != nil {
				h.WriteString(call + " " + tui.RenderError(entry.Err.Error()))
			} else {
				h.WriteString(call + " = " + tui.ResultStyle.Render(entry.Result))
			}
		}
		s.WriteString(tui.BoxStyle.Render(h.String()))
		s.WriteString("\n")
	}

	if m.status != "" {
		s.WriteString(tui.StatusBarStyle.Render(m.status))
		s.WriteString("\n")
	}

	s.WriteString(tui.RenderHelp("↑/↓ method  enter dispatch  ctrl+l clear  esc quit"))
	return s.String()
}
