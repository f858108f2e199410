package host

import (
	"strings"

	"github.com/arames/vim-sem-tabs/internal/indent"
)

// defaultCommentLeaders are the line-comment markers MemBuffer continues
// onto a freshly opened line, mirroring what full editors do.
var defaultCommentLeaders = []string{"//", "#", "--", ";"}

// MemBuffer is an in-memory Buffer backing the CLI, the playground
// editor, and the tests. It reproduces the two host-native side effects
// the engine is required to preserve when opening lines: copying the
// previous indentation and continuing line comments.
type MemBuffer struct {
	lines    []string
	line     int // 1-based cursor line
	col      int // 1-based cursor raw column
	settings Settings
	leaders  []string
}

// NewMemBuffer creates a buffer holding the given lines. An empty call
// yields a single empty line.
func NewMemBuffer(lines ...string) *MemBuffer {
	if len(lines) == 0 {
		lines = []string{""}
	}
	return &MemBuffer{
		lines:    append([]string(nil), lines...),
		line:     1,
		col:      1,
		settings: DefaultSettings(),
		leaders:  defaultCommentLeaders,
	}
}

// FromText creates a buffer from newline-separated text.
func FromText(text string) *MemBuffer {
	return NewMemBuffer(strings.Split(text, "\n")...)
}

// Text returns the buffer content as newline-separated text.
func (b *MemBuffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// Lines returns a copy of the buffer's lines.
func (b *MemBuffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// SetCommentLeaders replaces the comment markers continued by the
// line-opening primitives. An empty list disables continuation.
func (b *MemBuffer) SetCommentLeaders(leaders []string) {
	b.leaders = append([]string(nil), leaders...)
}

func (b *MemBuffer) LineCount() int { return len(b.lines) }

func (b *MemBuffer) Line(n int) string {
	if n < 1 || n > len(b.lines) {
		return ""
	}
	return b.lines[n-1]
}

func (b *MemBuffer) SetLine(n int, text string) {
	if n < 1 || n > len(b.lines) {
		return
	}
	b.lines[n-1] = text
	b.clampCursor()
}

func (b *MemBuffer) Cursor() (int, int) { return b.line, b.col }

func (b *MemBuffer) SetCursor(line, col int) {
	b.line = line
	b.col = col
	b.clampCursor()
}

func (b *MemBuffer) Settings() *Settings { return &b.settings }

// InsertLineBreak splits the cursor line at the cursor. The tail moves
// to a new line prefixed by the current line's indentation and, when
// the head is a comment, its comment leader. The cursor lands after
// that carried-over prefix.
func (b *MemBuffer) InsertLineBreak() {
	text := b.Line(b.line)
	off := indent.ByteOffset(text, b.col)
	head, tail := text[:off], text[off:]

	prefix := b.carriedPrefix(head)
	b.lines[b.line-1] = head
	b.insertLineAt(b.line+1, prefix+tail)
	b.line++
	b.col = indent.RawLen(prefix) + 1
}

// OpenLineAbove inserts a line above the cursor line, carrying over the
// cursor line's indentation and comment leader, and moves the cursor to
// its end.
func (b *MemBuffer) OpenLineAbove() {
	prefix := b.carriedPrefix(b.Line(b.line))
	b.insertLineAt(b.line, prefix)
	b.col = indent.RawLen(prefix) + 1
}

// OpenLineBelow inserts a line below the cursor line, carrying over the
// cursor line's indentation and comment leader, and moves the cursor to
// its end.
func (b *MemBuffer) OpenLineBelow() {
	prefix := b.carriedPrefix(b.Line(b.line))
	b.insertLineAt(b.line+1, prefix)
	b.line++
	b.col = indent.RawLen(prefix) + 1
}

// InsertText splices text into the cursor line at the cursor and
// advances the cursor past it. Text must not contain newlines; callers
// split on line breaks via InsertLineBreak.
func (b *MemBuffer) InsertText(text string) {
	line := b.Line(b.line)
	off := indent.ByteOffset(line, b.col)
	b.lines[b.line-1] = line[:off] + text + line[off:]
	b.col += indent.RawLen(text)
}

// DeleteBack removes the grapheme before the cursor, joining with the
// previous line when the cursor is at column 1.
func (b *MemBuffer) DeleteBack() {
	if b.col > 1 {
		line := b.Line(b.line)
		start := indent.ByteOffset(line, b.col-1)
		end := indent.ByteOffset(line, b.col)
		b.lines[b.line-1] = line[:start] + line[end:]
		b.col--
		return
	}
	if b.line == 1 {
		return
	}
	prev := b.Line(b.line - 1)
	b.lines[b.line-2] = prev + b.Line(b.line)
	b.lines = append(b.lines[:b.line-1], b.lines[b.line:]...)
	b.line--
	b.col = indent.RawLen(prev) + 1
}

// carriedPrefix returns what the host carries onto a newly opened line:
// the reference line's leading whitespace plus its comment leader, when
// the line is a comment.
func (b *MemBuffer) carriedPrefix(ref string) string {
	lead := indent.LeadingWhitespace(ref)
	rest := ref[len(lead):]
	for _, leader := range b.leaders {
		if strings.HasPrefix(rest, leader+" ") {
			return lead + leader + " "
		}
	}
	return lead
}

func (b *MemBuffer) insertLineAt(n int, text string) {
	if n < 1 {
		n = 1
	}
	if n > len(b.lines)+1 {
		n = len(b.lines) + 1
	}
	b.lines = append(b.lines, "")
	copy(b.lines[n:], b.lines[n-1:])
	b.lines[n-1] = text
}

func (b *MemBuffer) clampCursor() {
	if b.line < 1 {
		b.line = 1
	}
	if b.line > len(b.lines) {
		b.line = len(b.lines)
	}
	if b.col < 1 {
		b.col = 1
	}
	// Column may rest one past the last grapheme (end-of-line insert
	// position).
	if max := indent.RawLen(b.Line(b.line)) + 1; b.col > max {
		b.col = max
	}
}
