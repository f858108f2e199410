package engine

import "github.com/arames/vim-sem-tabs/internal/indent"

// DeleteTrailingWhitespace strips the maximal trailing whitespace run
// from a line. The rewrite is unconditional; on a clean line it is a
// safe no-op. Callers gate this on configuration and on the host's
// paste-compatibility flag.
func (e *Engine) DeleteTrailingWhitespace(line int) {
	e.buf.SetLine(line, indent.TrimTrailing(e.buf.Line(line)))
}

// trailingCleanupAllowed reports whether trailing-whitespace cleanup is
// currently permitted: enabled in configuration and not suppressed by
// whitespace-preserving paste mode.
func (e *Engine) trailingCleanupAllowed() bool {
	return e.cfg.DeleteTrailingWhitespace && !e.buf.Settings().PastePreserve
}
