// Package host defines the editor surface the indentation engine runs
// against: whole-line reads and writes, cursor access, and the handful
// of display settings that govern tab rendering.
//
// Lines and raw columns are 1-based. Raw column n sits before the n-th
// grapheme of a line; a cursor at RawLen(line)+1 is at end of line. The
// engine mutates buffers only through SetLine and the line-opening
// primitives so a real host can keep its undo grouping intact.
package host

// Settings holds the host display and compatibility options the engine
// reads at point of use. TabStop and IndentUnit are the two values the
// oracle adapter temporarily inflates around an oracle call.
type Settings struct {
	// TabStop is the display width of a tab character.
	TabStop int

	// IndentUnit is the width of one indentation step, handed to
	// oracles that indent relative to the previous line.
	IndentUnit int

	// ExpandTabs means tabs are rendered as spaces file-wide; the
	// tab/space distinction the engine provides is moot and the
	// engine stays inactive.
	ExpandTabs bool

	// PastePreserve indicates the user wants whitespace-preserving
	// paste behavior; trailing-whitespace cleanup is skipped while set.
	PastePreserve bool
}

// Buffer is the text surface consumed by the engine. Implementations
// own line storage and cursor bookkeeping; the engine never creates or
// destroys lines except through InsertLineBreak and the OpenLine
// primitives.
type Buffer interface {
	// LineCount returns the number of lines. A buffer always holds at
	// least one (possibly empty) line.
	LineCount() int

	// Line returns the content of the 1-based line n, without a line
	// terminator.
	Line(n int) string

	// SetLine replaces the content of line n.
	SetLine(n int, text string)

	// Cursor returns the cursor's 1-based line and raw column.
	Cursor() (line, col int)

	// SetCursor moves the cursor, clamping to valid positions.
	SetCursor(line, col int)

	// InsertLineBreak splits the current line at the cursor the way
	// the host's Enter key would, including host-native side effects
	// such as auto-copied indentation and comment-leader continuation.
	// The cursor lands on the new line, after anything the host
	// carried over.
	InsertLineBreak()

	// OpenLineAbove inserts a line above the cursor line with the
	// host's native side effects and moves the cursor onto it.
	OpenLineAbove()

	// OpenLineBelow inserts a line below the cursor line with the
	// host's native side effects and moves the cursor onto it.
	OpenLineBelow()

	// Settings returns the live settings. Mutations are observed by
	// the next read; the engine restores any value it overrides.
	Settings() *Settings
}

// DefaultSettings returns the settings a fresh buffer starts with.
func DefaultSettings() Settings {
	return Settings{
		TabStop:    4,
		IndentUnit: 4,
	}
}
