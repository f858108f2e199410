package engine

import (
	"github.com/arames/vim-sem-tabs/internal/indent"
	"github.com/arames/vim-sem-tabs/internal/log"
)

// Reindent rewrites the leading whitespace of a line to the canonical
// tabs-then-spaces encoding of the oracle's desired width. Everything
// from the first non-whitespace character onward is preserved
// byte-for-byte; a line that is already canonical is left untouched, so
// the operation is idempotent in its output.
//
// When the oracle is inactive the returned decomposition has
// Valid=false and the line is not modified.
func (e *Engine) Reindent(line int) indent.Decomposition {
	width, ok := e.RawWidth(line)
	if !ok {
		return indent.Decomposition{}
	}

	d := indent.Decompose(width, e.cfg.InternalStep)
	text := e.buf.Line(line)
	lead := indent.LeadingWhitespace(text)
	body := text[len(lead):]

	if want := d.Indent(); lead != want {
		e.buf.SetLine(line, want+body)
		log.Debug(log.CatEngine, "reindented line",
			"line", line, "levels", d.Levels, "spaces", d.Spaces)
	}
	return d
}
