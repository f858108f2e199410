package engine

import "github.com/arames/vim-sem-tabs/internal/indent"

// MoveAfterIndent places the cursor immediately past the synthesized
// indentation: raw column levels+spaces+1, since tabs and spaces each
// occupy one raw column.
func (e *Engine) MoveAfterIndent(line int, d indent.Decomposition) {
	if !d.Valid {
		return
	}
	e.buf.SetCursor(line, d.RawEnd())
}

// PreserveVirtualColumn repositions the cursor on line at the first raw
// column whose virtual column equals target, or at end of line when no
// raw column maps to it exactly. Needed after a rewrite: replacing N
// spaces with fewer tabs changes the raw-to-virtual mapping, so keeping
// the raw column would visually shift the cursor. Virtual columns are
// computed under the user-facing tab stop, not the internal step.
func (e *Engine) PreserveVirtualColumn(line, target int) {
	col, _ := indent.RawColForVirtual(e.buf.Line(line), target, e.buf.Settings().TabStop)
	e.buf.SetCursor(line, col)
}
