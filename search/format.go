package search

import "fmt"

// FormatVimgrep formats a match the way ripgrep's --vimgrep does
// Format: file:line:column:text
func FormatVimgrep(file string, m Match) string {
	return fmt.Sprintf("%s:%d:%d:%s", file, m.Line, m.Column, m.Text)
}
