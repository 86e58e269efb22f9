package preview

// Preview represents a window of file lines around a match
type Preview struct {
	File      string
	StartLine int // 1-based line number of Lines[0]
	Lines     []string
	HitLine   int // 1-based, relative to StartLine
}
