package tui

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/takaishi/minigrep/search"
)

var (
	// Header styles
	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	searchIconStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	queryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("236"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("62")).
			Bold(true).
			Padding(0, 1)

	// Result styles
	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedResultStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("25"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("236")).
			Bold(true)

	fileInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Align(lipgloss.Right).
			PaddingLeft(1)

	// Preview styles
	previewHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Bold(true)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(6).
			Align(lipgloss.Right)

	hitLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("25"))

	hitLineNumberStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("25")).
				Width(6).
				Align(lipgloss.Right)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// renderView renders the entire UI
func renderView(m *Model) string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	headerHeight := 4
	helpHeight := 1
	previewHeight := m.height - headerHeight - helpHeight - visibleResults - 2
	if previewHeight < 5 {
		previewHeight = 5
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m),
		renderResults(m),
		renderPreview(m, previewHeight),
		helpStyle.Render("↑/k ↓/j move • enter open in editor • q quit"),
	)
}

// renderHeader renders the query, the file, the case mode and the status line
func renderHeader(m *Model) string {
	icon := searchIconStyle.Render("🔍")
	query := queryStyle.Render(m.query)
	mode := modeStyle.Render(m.mode.String())

	headerLine := lipgloss.JoinHorizontal(lipgloss.Left,
		icon+" ",
		query,
		"  ",
		statusStyle.Render("in "+m.file),
		"  ",
		mode,
	)
	statusLine := statusStyle.Render(renderStatus(m))

	header := lipgloss.JoinVertical(lipgloss.Left, headerLine, statusLine)
	return headerStyle.Width(m.width - 2).Render(header)
}

// renderStatus renders the status information
func renderStatus(m *Model) string {
	switch len(m.matches) {
	case 0:
		return "No matches found"
	case 1:
		return "1 match"
	default:
		return fmt.Sprintf("%d matches", len(m.matches))
	}
}

// renderResults renders the visible part of the match list
func renderResults(m *Model) string {
	if len(m.matches) == 0 {
		return "No results found"
	}

	availableWidth := m.width - 4 // Reserve space for borders

	endIdx := m.resultsOffset + visibleResults
	if endIdx > len(m.matches) {
		endIdx = len(m.matches)
	}

	var lines []string
	for i := m.resultsOffset; i < endIdx; i++ {
		line := formatResult(m, m.matches[i], availableWidth)
		if i == m.selectedIndex {
			line = selectedResultStyle.Render(line)
		} else {
			line = resultStyle.Render(line)
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// formatResult formats a result as: code snippet | file line
func formatResult(m *Model, match search.Match, width int) string {
	fileInfo := fmt.Sprintf("%s %d", filepath.Base(m.file), match.Line)

	fileInfoAreaWidth := 30
	if fileInfoAreaWidth > width/3 {
		fileInfoAreaWidth = width / 3
	}
	if fileInfoAreaWidth < 12 {
		fileInfoAreaWidth = 12
	}

	codeWidth := width - fileInfoAreaWidth
	if codeWidth < 10 {
		codeWidth = 10
	}

	code := lipgloss.NewStyle().Width(codeWidth).Render(
		ansi.Truncate(highlightMatch(m.query, match), codeWidth, "..."),
	)
	info := fileInfoStyle.Width(fileInfoAreaWidth).Render(fileInfo)

	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Left, code, info))
}

// highlightMatch highlights the first occurrence of the query in the match text
func highlightMatch(query string, match search.Match) string {
	start, end := matchSpan(query, match)
	if start == end {
		return match.Text
	}
	return match.Text[:start] + highlightStyle.Render(match.Text[start:end]) + match.Text[end:]
}

// matchSpan returns the byte range of the occurrence starting at match.Column.
// Case folding can change byte lengths, so the end is clamped to the line
// and moved forward to a rune boundary.
func matchSpan(query string, match search.Match) (int, int) {
	text := match.Text
	start := match.Column - 1
	if start < 0 || start > len(text) {
		return 0, 0
	}
	end := start + len(query)
	if end > len(text) {
		end = len(text)
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}
	return start, end
}

// renderPreview renders the lines around the selected match
func renderPreview(m *Model, maxHeight int) string {
	if m.preview == nil {
		return ""
	}

	lines := []string{previewHeaderStyle.Render(m.preview.File)}

	availableWidth := m.width - 16 // Reserve space for line numbers and borders
	if availableWidth < 10 {
		availableWidth = 10
	}
	for i, line := range m.preview.Lines {
		if len(lines) >= maxHeight-1 {
			break
		}

		lineNumStr := fmt.Sprintf("%4d", m.preview.StartLine+i)
		if i+1 == m.preview.HitLine {
			lineNumStr = hitLineNumberStyle.Render(lineNumStr)
			line = hitLineStyle.Render(ansi.Truncate(line, availableWidth, "..."))
		} else {
			lineNumStr = lineNumberStyle.Render(lineNumStr)
			line = ansi.Truncate(line, availableWidth, "...")
		}

		lines = append(lines, fmt.Sprintf("%s | %s", lineNumStr, line))
	}

	return previewStyle.Width(m.width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
