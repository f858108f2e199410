// Package editor provides the interactive playground: a small modal
// text editor wired to the indentation engine, used to try the tab,
// enter, open-line and realign behaviors live in the terminal.
package editor

// Mode represents the current editing mode.
type Mode int

const (
	// ModeNormal is the default mode for navigation and commands.
	ModeNormal Mode = iota
	// ModeInsert is the mode for inserting text.
	ModeInsert
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}
