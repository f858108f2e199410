// Package indent implements the arithmetic heart of semtabs: converting
// between a raw indentation width (as reported by an auto-indent oracle)
// and a (levels, spaces) pair, and between that pair and the literal
// whitespace string that encodes it.
//
// One tab character encodes exactly one level of structural indentation.
// Spaces after the tabs carry sub-level alignment, so a line renders at
// the intended visual offset regardless of the reader's tab display width.
package indent

import "strings"

// Decomposition is the result of splitting a raw indentation width into
// whole indentation levels and an alignment remainder.
//
// Invariants when Valid: Levels >= 0 and 0 <= Spaces < step, where step is
// the amplification unit the width was decomposed with.
//
// Valid is false when no width was available (oracle inactive); callers
// must leave the line untouched in that case.
type Decomposition struct {
	Valid  bool
	Levels int
	Spaces int
}

// Decompose splits a raw width into (levels, spaces) using integer
// division by step. Negative widths are clamped to zero. step must be
// positive; configuration validation rejects anything else before the
// engine ever runs.
func Decompose(width, step int) Decomposition {
	if width < 0 {
		width = 0
	}
	return Decomposition{
		Valid:  true,
		Levels: width / step,
		Spaces: width % step,
	}
}

// Indent returns the literal whitespace string for the decomposition:
// Levels tab characters followed by Spaces space characters, in that
// fixed order. An invalid decomposition encodes to the empty string.
func (d Decomposition) Indent() string {
	if !d.Valid {
		return ""
	}
	return strings.Repeat("\t", d.Levels) + strings.Repeat(" ", d.Spaces)
}

// TotalWidth is the inverse of Decompose: the raw width this
// decomposition renders at when tabs count as step columns.
func (d Decomposition) TotalWidth(step int) int {
	return d.Levels*step + d.Spaces
}

// RawEnd returns the 1-based raw column immediately after the encoded
// indentation. Tabs and spaces each occupy one raw column.
func (d Decomposition) RawEnd() int {
	return d.Levels + d.Spaces + 1
}
