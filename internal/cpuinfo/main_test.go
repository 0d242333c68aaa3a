package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutsArePacked(t *testing.T) {
	for _, l := range layouts() {
		if l.size%uintptr(l.lanes) != 0 {
			t.Errorf("%s: %d bytes is not a multiple of %d lanes", l.name, l.size, l.lanes)
			continue
		}
		laneSize := l.size / uintptr(l.lanes)
		assert.LessOrEqual(t, l.align, laneSize, "%s: alignment exceeds the lane size", l.name)
		assert.Contains(t, []uintptr{8, 16, 32}, l.size, "%s", l.name)
	}
}

func TestPrintLayouts(t *testing.T) {
	var buf bytes.Buffer
	printLayouts(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, len(layouts())+1)
	assert.Equal(t, []string{"TYPE", "LANES", "BYTES", "ALIGN"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"F32x4", "4", "16", "4"}, strings.Fields(lines[2]))
}
