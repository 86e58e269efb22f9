package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// PrintError writes err to w, styled when w is a color terminal
func PrintError(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)
	errorStyle := r.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)
	fmt.Fprintln(w, errorStyle.Render(err.Error()))
}
