package indent

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Raw columns are 1-based grapheme positions: raw column n sits before
// the n-th grapheme cluster of the line. Virtual columns are 1-based
// on-screen positions, with tabs expanding to the next multiple of the
// tab stop and wide graphemes (CJK, emoji) occupying two cells.

// RawLen returns the number of raw columns occupied by s, i.e. its
// grapheme cluster count.
func RawLen(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// ByteOffset converts a 1-based raw column into a byte offset into s.
// Columns past the end of the line map to len(s).
func ByteOffset(s string, col int) int {
	if col <= 1 {
		return 0
	}
	n := 1
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if n >= col {
			off, _ := g.Positions()
			return off
		}
		n++
	}
	return len(s)
}

// NextTabStop returns the first tab stop column strictly after the
// 1-based virtual column col.
func NextTabStop(col, tabStop int) int {
	return col + tabStop - ((col - 1) % tabStop)
}

// VirtualWidth returns the on-screen width of s under the given tab
// stop: the virtual column just past the last grapheme, minus one.
func VirtualWidth(s string, tabStop int) int {
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		if cluster == "\t" {
			w = NextTabStop(w+1, tabStop) - 1
		} else {
			w += runewidth.StringWidth(cluster)
		}
	}
	return w
}

// VirtualCol returns the virtual column of the cursor placed at the
// 1-based raw column col of line: one past the rendered width of
// everything to the cursor's left.
func VirtualCol(line string, col, tabStop int) int {
	return VirtualWidth(line[:ByteOffset(line, col)], tabStop) + 1
}

// RawColForVirtual scans raw columns left to right and returns the
// first whose virtual column equals target. ok is false when no raw
// column maps to target exactly; replacing spaces with tabs changes
// the raw-to-virtual mapping, so an exact hit is not guaranteed.
func RawColForVirtual(line string, target, tabStop int) (col int, ok bool) {
	last := RawLen(line) + 1
	for c := 1; c <= last; c++ {
		if VirtualCol(line, c, tabStop) == target {
			return c, true
		}
	}
	return last, false
}
