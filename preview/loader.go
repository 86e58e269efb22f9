package preview

const (
	previewBefore = 5
	previewAfter  = 10
)

// New builds a preview around lineNum (1-based) from lines already in memory
func New(file string, lines []string, lineNum int) *Preview {
	// Calculate preview range
	startLine := lineNum - previewBefore
	if startLine < 1 {
		startLine = 1
	}

	endLine := lineNum + previewAfter
	if endLine > len(lines) {
		endLine = len(lines)
	}

	var window []string
	if startLine <= endLine {
		window = lines[startLine-1 : endLine]
	}

	return &Preview{
		File:      file,
		StartLine: startLine,
		Lines:     window,
		HitLine:   lineNum - startLine + 1,
	}
}
