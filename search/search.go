package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lines splits contents into lines.
// Lines end at "\n"; a "\r" right before it is dropped, and a trailing
// terminator does not produce an empty last line.
// The returned strings share memory with contents.
func Lines(contents string) []string {
	lines := make([]string, 0, strings.Count(contents, "\n")+1)
	for len(contents) > 0 {
		line := contents
		if i := strings.IndexByte(contents, '\n'); i >= 0 {
			line = contents[:i]
			contents = contents[i+1:]
		} else {
			contents = ""
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return lines
}

// Search returns every line of contents that contains query, in order
func Search(query, contents string) []string {
	results := make([]string, 0)
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive is Search with both query and lines lowercased
// before comparison. The returned lines keep their original case.
func SearchCaseInsensitive(query, contents string) []string {
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	results := make([]string, 0)
	for _, line := range Lines(contents) {
		if strings.Contains(lower.String(line), query) {
			results = append(results, line)
		}
	}
	return results
}
