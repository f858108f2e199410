// Package engine implements the indentation core: decomposing
// oracle-reported widths into tab levels plus space alignment,
// rewriting leading whitespace, preserving cursor position, and the
// event policy that ties the pieces to interactive editing triggers.
package engine

import (
	"sync"

	"github.com/arames/vim-sem-tabs/internal/config"
	"github.com/arames/vim-sem-tabs/internal/host"
	"github.com/arames/vim-sem-tabs/internal/oracle"
)

// Engine binds a buffer, an oracle and the configuration together. All
// operations run to completion within a single event handler; the only
// lock guards the scoped settings override around oracle calls so a
// concurrent host can never observe the inflated tab stop.
type Engine struct {
	buf host.Buffer
	orc oracle.Oracle // nil deactivates the engine
	cfg *config.Config

	overrideMu sync.Mutex
}

// New creates an engine for the given buffer. orc may be nil, in which
// case every reindent reports inactive and leaves the buffer alone.
// cfg must have passed Validate.
func New(buf host.Buffer, orc oracle.Oracle, cfg *config.Config) *Engine {
	return &Engine{buf: buf, orc: orc, cfg: cfg}
}

// Buffer returns the buffer the engine operates on.
func (e *Engine) Buffer() host.Buffer { return e.buf }
