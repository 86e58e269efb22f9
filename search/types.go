package search

// Match is a single matching line with its position in the file
type Match struct {
	Line   int // 1-based
	Column int // 1-based byte offset of the first occurrence
	Text   string
}

// Mode selects how a query is compared against lines
type Mode int

const (
	ModeCaseSensitive Mode = iota
	ModeCaseInsensitive
)

// ModeFor returns the mode matching a Config's case sensitivity
func ModeFor(caseSensitive bool) Mode {
	if caseSensitive {
		return ModeCaseSensitive
	}
	return ModeCaseInsensitive
}

func (m Mode) String() string {
	if m == ModeCaseInsensitive {
		return "case-insensitive"
	}
	return "case-sensitive"
}
