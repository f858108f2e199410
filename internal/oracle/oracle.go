// Package oracle provides the pluggable auto-indent strategies consumed
// by the engine. An oracle reports how many space-equivalent columns a
// line should be indented by, under the tab stop currently configured
// on the buffer; it never mutates anything.
//
// Which strategy is active is a configuration-time decision. The engine
// treats the chosen oracle as opaque and untrusted: a failing oracle
// degrades to a no-op, never to a corrupted line.
package oracle

import (
	"errors"
	"fmt"

	"github.com/arames/vim-sem-tabs/internal/host"
	"github.com/arames/vim-sem-tabs/internal/indent"
)

// ErrNoOpinion is the sentinel an oracle returns when it defers to the
// previous line's indentation.
var ErrNoOpinion = errors.New("oracle: no opinion for this line")

// Oracle computes the desired indentation width for a line, in columns
// under the buffer's current TabStop setting.
type Oracle interface {
	// Name identifies the strategy in configuration and logs.
	Name() string

	// Width returns the desired indentation width of the 1-based line.
	// ErrNoOpinion defers to the previous line; any other error means
	// the oracle failed and the line must be left alone.
	Width(b host.Buffer, line int) (int, error)
}

// ForName resolves a configured strategy name. "off" (or empty) yields
// a nil oracle, which deactivates the engine.
func ForName(name string) (Oracle, error) {
	switch name {
	case "block":
		return Block{}, nil
	case "list":
		return List{}, nil
	case "prev", "previous":
		return PrevLine{}, nil
	case "off", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown oracle %q", name)
	}
}

// Names lists the strategy names accepted by ForName, for configuration
// validation and help text.
func Names() []string {
	return []string{"block", "list", "prev", "off"}
}

// prevNonBlank returns the nearest line above the given one that holds
// any non-whitespace content, or 0 when there is none.
func prevNonBlank(b host.Buffer, line int) int {
	for n := line - 1; n >= 1; n-- {
		if !indent.IsBlank(b.Line(n)) {
			return n
		}
	}
	return 0
}

// indentWidth measures the literal indentation of line n under the
// buffer's current tab stop.
func indentWidth(b host.Buffer, n int) int {
	return indent.VirtualWidth(indent.LeadingWhitespace(b.Line(n)), b.Settings().TabStop)
}
