package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/takaishi/minigrep/preview"
	"github.com/takaishi/minigrep/search"
)

const visibleResults = 5

// Model represents the match browser state
type Model struct {
	// Search request
	query string
	file  string
	mode  search.Mode

	// Search state
	lines         []string
	matches       []search.Match
	selectedIndex int
	resultsOffset int // Scroll offset for results list

	// Preview state
	preview *preview.Preview

	// Match picked with Enter, nil if the user quit
	chosen *search.Match

	// UI dimensions
	width  int
	height int
}

// New creates a browser over matches found in contents
func New(query, file string, mode search.Mode, contents string, matches []search.Match) *Model {
	m := &Model{
		query:         query,
		file:          file,
		mode:          mode,
		lines:         search.Lines(contents),
		matches:       matches,
		selectedIndex: -1,
	}
	// Auto-select first result if available
	if len(matches) > 0 {
		m.selectedIndex = 0
		m.loadPreview()
	}
	return m
}

// Chosen returns the match selected with Enter
func (m *Model) Chosen() (search.Match, bool) {
	if m.chosen == nil {
		return search.Match{}, false
	}
	return *m.chosen, true
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		return m, nil
	}
}

// View renders the UI
func (m *Model) View() string {
	return renderView(m)
}

// handleKey processes keyboard input
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit

	case "up", "k":
		if m.selectedIndex > 0 {
			m.selectedIndex--
			m.adjustScroll()
			m.loadPreview()
		}
		return m, nil

	case "down", "j":
		if m.selectedIndex < len(m.matches)-1 {
			m.selectedIndex++
			m.adjustScroll()
			m.loadPreview()
		}
		return m, nil

	case "home", "g":
		if len(m.matches) > 0 {
			m.selectedIndex = 0
			m.adjustScroll()
			m.loadPreview()
		}
		return m, nil

	case "end", "G":
		if len(m.matches) > 0 {
			m.selectedIndex = len(m.matches) - 1
			m.adjustScroll()
			m.loadPreview()
		}
		return m, nil

	case "enter":
		if m.selectedIndex >= 0 && m.selectedIndex < len(m.matches) {
			match := m.matches[m.selectedIndex]
			m.chosen = &match
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// adjustScroll adjusts the scroll offset to keep selected item visible
func (m *Model) adjustScroll() {
	if len(m.matches) <= visibleResults {
		m.resultsOffset = 0
		return
	}

	// If selected item is above visible area, scroll up
	if m.selectedIndex < m.resultsOffset {
		m.resultsOffset = m.selectedIndex
	}

	// If selected item is below visible area, scroll down
	if m.selectedIndex >= m.resultsOffset+visibleResults {
		m.resultsOffset = m.selectedIndex - visibleResults + 1
	}

	maxOffset := len(m.matches) - visibleResults
	if m.resultsOffset > maxOffset {
		m.resultsOffset = maxOffset
	}
	if m.resultsOffset < 0 {
		m.resultsOffset = 0
	}
}

// loadPreview loads preview for the currently selected result
func (m *Model) loadPreview() {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.matches) {
		m.preview = nil
		return
	}
	m.preview = preview.New(m.file, m.lines, m.matches[m.selectedIndex].Line)
}
