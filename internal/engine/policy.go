package engine

import (
	"strings"

	"github.com/arames/vim-sem-tabs/internal/indent"
)

// The handlers below map the host's interactive triggers onto the
// engine. They run synchronously to completion; the host's event
// dispatch serializes them.

// HandleTab implements the Tab key.
//
// Inside the leading whitespace the key means "indent this line": with
// OneTabIndent the line is reindented from the oracle and the cursor
// jumps just past the new indentation; otherwise a single raw tab is
// inserted. Elsewhere, with TabSpaceJump the cursor skips across a
// whitespace run to the next non-whitespace character; failing all
// that, spaces are inserted up to the next display tab stop.
func (e *Engine) HandleTab() {
	line, col := e.buf.Cursor()
	text := e.buf.Line(line)
	tabStop := e.buf.Settings().TabStop

	// Cursor at or before the indentation boundary: every raw column
	// up to leadLen+1 is visually within the leading whitespace.
	leadLen := indent.RawLen(indent.LeadingWhitespace(text))
	if col <= leadLen+1 {
		if e.cfg.OneTabIndent {
			if d := e.Reindent(line); d.Valid {
				e.MoveAfterIndent(line, d)
				return
			}
			// Oracle inactive: fall through to a literal tab.
		}
		e.insertAtCursor("\t")
		return
	}

	if e.cfg.TabSpaceJump {
		if target, ok := whitespaceRunEnd(text, col); ok {
			e.buf.SetCursor(line, target)
			return
		}
	}

	v := indent.VirtualCol(text, col, tabStop)
	e.insertAtCursor(strings.Repeat(" ", indent.NextTabStop(v, tabStop)-v))
}

// HandleNewLine implements Enter in insert mode: let the host split the
// line with its native side effects, reindent the new line, clean the
// vacated line's trailing whitespace, and restore the cursor's visual
// position under the rewritten indentation.
func (e *Engine) HandleNewLine() {
	e.buf.InsertLineBreak()
	line, col := e.buf.Cursor()

	v := indent.VirtualCol(e.buf.Line(line), col, e.buf.Settings().TabStop)
	d := e.Reindent(line)

	if line > 1 && e.trailingCleanupAllowed() {
		e.DeleteTrailingWhitespace(line - 1)
	}
	if d.Valid {
		e.PreserveVirtualColumn(line, v)
	}
}

// HandleOpenBelow implements the "open line below" command. The host's
// own primitive runs first so its side effects (comment continuation)
// still occur; the fresh line is then reindented and the cursor left at
// its end for insert mode.
func (e *Engine) HandleOpenBelow() {
	e.buf.OpenLineBelow()
	e.reindentOpenedLine()
}

// HandleOpenAbove implements the "open line above" command, mirroring
// HandleOpenBelow.
func (e *Engine) HandleOpenAbove() {
	e.buf.OpenLineAbove()
	e.reindentOpenedLine()
}

func (e *Engine) reindentOpenedLine() {
	line, _ := e.buf.Cursor()
	e.Reindent(line)
	e.buf.SetCursor(line, indent.RawLen(e.buf.Line(line))+1)
}

// HandleInsertLeave cleans up indentation that was inserted
// speculatively but never used: trailing whitespace on the line the
// cursor is leaving, unless paste compatibility forbids it.
func (e *Engine) HandleInsertLeave() {
	if !e.trailingCleanupAllowed() {
		return
	}
	line, _ := e.buf.Cursor()
	e.DeleteTrailingWhitespace(line)
}

// RealignRange reindents every line of the inclusive range in
// increasing order, then places the cursor on the first non-blank
// character of the last line, matching the host's native align
// operator.
func (e *Engine) RealignRange(first, last int) {
	if first < 1 {
		first = 1
	}
	if last > e.buf.LineCount() {
		last = e.buf.LineCount()
	}
	if first > last {
		return
	}
	for n := first; n <= last; n++ {
		e.Reindent(n)
	}
	lead := indent.LeadingWhitespace(e.buf.Line(last))
	e.buf.SetCursor(last, indent.RawLen(lead)+1)
}

// RealignLine reindents the cursor line and moves the cursor just past
// the new indentation.
func (e *Engine) RealignLine() {
	line, _ := e.buf.Cursor()
	if d := e.Reindent(line); d.Valid {
		e.MoveAfterIndent(line, d)
	}
}

// insertAtCursor splices text into the cursor line through the host's
// line-replace primitive, keeping undo grouping with the host.
func (e *Engine) insertAtCursor(text string) {
	line, col := e.buf.Cursor()
	cur := e.buf.Line(line)
	off := indent.ByteOffset(cur, col)
	e.buf.SetLine(line, cur[:off]+text+cur[off:])
	e.buf.SetCursor(line, col+indent.RawLen(text))
}

// whitespaceRunEnd returns the raw column of the first non-whitespace
// character after the whitespace run the cursor sits on. ok is false
// when the cursor is not on whitespace or only whitespace follows.
func whitespaceRunEnd(text string, col int) (int, bool) {
	n := indent.RawLen(text)
	if col > n || !isIndentChar(text, col) {
		return 0, false
	}
	c := col
	for c <= n && isIndentChar(text, c) {
		c++
	}
	if c > n {
		return 0, false
	}
	return c, true
}

func isIndentChar(text string, col int) bool {
	off := indent.ByteOffset(text, col)
	return off < len(text) && (text[off] == ' ' || text[off] == '\t')
}
