package search

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Find runs Search or SearchCaseInsensitive depending on mode
func Find(mode Mode, query, contents string) []string {
	if mode == ModeCaseInsensitive {
		return SearchCaseInsensitive(query, contents)
	}
	return Search(query, contents)
}

// FindMatches selects the same lines as Find and records where each one is
func FindMatches(mode Mode, query, contents string) []Match {
	var lower cases.Caser
	if mode == ModeCaseInsensitive {
		lower = cases.Lower(language.Und)
		query = lower.String(query)
	}

	matches := make([]Match, 0)
	for i, line := range Lines(contents) {
		var col int
		if mode == ModeCaseInsensitive {
			if !strings.Contains(lower.String(line), query) {
				continue
			}
			col = foldedIndex(lower, line, query)
		} else {
			col = strings.Index(line, query)
			if col < 0 {
				continue
			}
		}
		matches = append(matches, Match{
			Line:   i + 1,
			Column: col + 1,
			Text:   line,
		})
	}
	return matches
}

// foldedIndex returns the byte offset in line where the lowered query
// starts. Lowercasing can change byte lengths, so the line is lowered one
// rune at a time while recording, for every lowered byte, the offset of the
// rune it came from.
func foldedIndex(lower cases.Caser, line, query string) int {
	var folded strings.Builder
	folded.Grow(len(line))
	offsets := make([]int, 0, len(line))
	for i := 0; i < len(line); {
		_, size := utf8.DecodeRuneInString(line[i:])
		piece := lower.String(line[i : i+size])
		folded.WriteString(piece)
		for j := 0; j < len(piece); j++ {
			offsets = append(offsets, i)
		}
		i += size
	}

	idx := strings.Index(folded.String(), query)
	if idx < 0 || idx >= len(offsets) {
		// Context-dependent lowering (final sigma) can differ rune by rune.
		return 0
	}
	return offsets[idx]
}
