package preview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return lines
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		lineNum   int
		wantStart int
		wantLen   int
		wantHit   int
	}{
		{name: "middle of a long file", total: 100, lineNum: 50, wantStart: 45, wantLen: 16, wantHit: 6},
		{name: "near the top", total: 100, lineNum: 2, wantStart: 1, wantLen: 12, wantHit: 2},
		{name: "near the bottom", total: 20, lineNum: 18, wantStart: 13, wantLen: 8, wantHit: 6},
		{name: "short file", total: 3, lineNum: 1, wantStart: 1, wantLen: 3, wantHit: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("poem.txt", numbered(tt.total), tt.lineNum)
			require.NotNil(t, p)
			assert.Equal(t, "poem.txt", p.File)
			assert.Equal(t, tt.wantStart, p.StartLine)
			assert.Len(t, p.Lines, tt.wantLen)
			assert.Equal(t, tt.wantHit, p.HitLine)
			assert.Equal(t, fmt.Sprintf("line %d", tt.lineNum), p.Lines[p.HitLine-1])
		})
	}
}

func TestNew_EmptyFile(t *testing.T) {
	p := New("empty.txt", nil, 1)
	assert.Empty(t, p.Lines)
	assert.Equal(t, 1, p.StartLine)
}
