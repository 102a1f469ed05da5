package dedupe

import (
	"sort"

	"golang.org/x/text/cases"
)

// foldChunk sorts lines by a case-folded key computed once per line
type foldChunk struct {
	data []string
	keys []string
}

func newFoldChunk(lines []string) *foldChunk {
	folder := cases.Fold()
	c := new(foldChunk)
	c.data = lines
	c.keys = make([]string, len(lines))
	for i, line := range lines {
		c.keys[i] = folder.String(line)
	}
	return c
}

func (c *foldChunk) Len() int {
	return len(c.data)
}

func (c *foldChunk) Swap(i, j int) {
	c.data[i], c.data[j] = c.data[j], c.data[i]
	c.keys[i], c.keys[j] = c.keys[j], c.keys[i]
}

func (c *foldChunk) Less(i, j int) bool {
	return c.keys[i] < c.keys[j]
}

// SortFold sorts lines in place, ignoring case.
// The sort is stable: lines that differ only in case keep their relative order.
func SortFold(lines []string) {
	if len(lines) < 2 {
		return
	}
	sort.Stable(newFoldChunk(lines))
}
