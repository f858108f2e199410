package engine

import (
	"errors"

	"github.com/arames/vim-sem-tabs/internal/indent"
	"github.com/arames/vim-sem-tabs/internal/log"
	"github.com/arames/vim-sem-tabs/internal/oracle"
)

// RawWidth asks the oracle for the desired indentation width of a line,
// amplified so the answer decomposes losslessly.
//
// The oracle reports widths in columns under the buffer's TabStop, so
// TabStop and IndentUnit are temporarily inflated to InternalStep: every
// whole indentation level then contributes exactly InternalStep to the
// reported width and the subsequent division is exact. Both settings
// are restored on every exit path, including oracle failure.
//
// ok is false when the engine is inactive: no oracle is configured, or
// ExpandTabs makes the tab/space distinction moot. An oracle failure
// also reports inactive so the caller degrades to a no-op.
func (e *Engine) RawWidth(line int) (width int, ok bool) {
	s := e.buf.Settings()
	if e.orc == nil || s.ExpandTabs {
		return 0, false
	}

	e.overrideMu.Lock()
	defer e.overrideMu.Unlock()

	step := e.cfg.InternalStep
	savedTabStop, savedIndentUnit := s.TabStop, s.IndentUnit
	s.TabStop, s.IndentUnit = step, step
	defer func() {
		s.TabStop, s.IndentUnit = savedTabStop, savedIndentUnit
	}()

	w, err := e.orc.Width(e.buf, line)
	switch {
	case errors.Is(err, oracle.ErrNoOpinion):
		// Fall back to the literal indentation already present on the
		// previous line, measured under the inflated tab stop so full
		// tabs count as whole levels.
		w = e.prevLineIndentWidth(line)
	case err != nil:
		log.ErrorErr(log.CatOracle, "oracle failed, leaving line alone", err,
			"oracle", e.orc.Name(), "line", line)
		return 0, false
	}
	if w < 0 {
		w = 0
	}
	return w, true
}

// prevLineIndentWidth measures the leading whitespace of the line above
// under the currently effective (inflated) tab stop.
func (e *Engine) prevLineIndentWidth(line int) int {
	if line <= 1 {
		return 0
	}
	lead := indent.LeadingWhitespace(e.buf.Line(line - 1))
	return indent.VirtualWidth(lead, e.buf.Settings().TabStop)
}
