package indent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeadingWhitespace(t *testing.T) {
	require.Equal(t, "\t\t  ", LeadingWhitespace("\t\t  foo"))
	require.Equal(t, "", LeadingWhitespace("foo  "))
	require.Equal(t, "   ", LeadingWhitespace("   "))
	require.Equal(t, "", LeadingWhitespace(""))
}

func TestTrimTrailing(t *testing.T) {
	require.Equal(t, "foo", TrimTrailing("foo   "))
	require.Equal(t, "foo", TrimTrailing("foo\t \t"))
	require.Equal(t, "", TrimTrailing("   \t"))
	require.Equal(t, "  foo", TrimTrailing("  foo"))
}

func TestIsBlank(t *testing.T) {
	require.True(t, IsBlank(""))
	require.True(t, IsBlank(" \t "))
	require.False(t, IsBlank(" x "))
}

func TestNextTabStop(t *testing.T) {
	// 1-based columns, tab stop 4: stops at 5, 9, 13, ...
	require.Equal(t, 5, NextTabStop(1, 4))
	require.Equal(t, 5, NextTabStop(4, 4))
	require.Equal(t, 9, NextTabStop(5, 4))
	require.Equal(t, 81, NextTabStop(1, 80))
}

func TestVirtualWidth_TabsExpand(t *testing.T) {
	require.Equal(t, 4, VirtualWidth("\t", 4))
	require.Equal(t, 8, VirtualWidth("\t\t", 4))
	require.Equal(t, 4, VirtualWidth("ab\t", 4))
	require.Equal(t, 5, VirtualWidth("abcd\t", 4))
	require.Equal(t, 0, VirtualWidth("", 4))
}

func TestVirtualWidth_WideGraphemes(t *testing.T) {
	// CJK occupies two cells; a tab after it expands from column 3.
	require.Equal(t, 2, VirtualWidth("世", 4))
	require.Equal(t, 4, VirtualWidth("世\t", 4))
}

func TestVirtualCol(t *testing.T) {
	line := "\tfoo"
	require.Equal(t, 1, VirtualCol(line, 1, 4))
	require.Equal(t, 5, VirtualCol(line, 2, 4))
	require.Equal(t, 6, VirtualCol(line, 3, 4))
}

func TestRawLen_Graphemes(t *testing.T) {
	require.Equal(t, 3, RawLen("foo"))
	require.Equal(t, 4, RawLen("\tfoo"))
	require.Equal(t, 1, RawLen("👨‍👩‍👧‍👦"))
}

func TestByteOffset(t *testing.T) {
	require.Equal(t, 0, ByteOffset("foo", 1))
	require.Equal(t, 2, ByteOffset("foo", 3))
	require.Equal(t, 3, ByteOffset("foo", 4))
	require.Equal(t, 3, ByteOffset("foo", 99))
	require.Equal(t, 3, ByteOffset("世x", 2))
}

func TestRawColForVirtual_ExactHit(t *testing.T) {
	// "\t  x" under tab stop 4: raw columns map to virtual 1, 5, 6, 7.
	col, ok := RawColForVirtual("\t  x", 6, 4)
	require.True(t, ok)
	require.Equal(t, 3, col)
}

func TestRawColForVirtual_NoExactHit_EndOfLine(t *testing.T) {
	// Virtual columns 2..4 fall inside the tab; no raw column maps to 3.
	col, ok := RawColForVirtual("\tx", 3, 4)
	require.False(t, ok)
	require.Equal(t, 3, col, "falls back to one past the last raw column")
}

func TestRawColForVirtual_EmptyLine(t *testing.T) {
	col, ok := RawColForVirtual("", 1, 4)
	require.True(t, ok)
	require.Equal(t, 1, col)
}
