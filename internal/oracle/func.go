package oracle

import "github.com/arames/vim-sem-tabs/internal/host"

// WidthFunc adapts an arbitrary width computation into an Oracle. It
// covers the "custom indent expression" case: user-supplied logic whose
// failures must not propagate past the engine.
type WidthFunc func(b host.Buffer, line int) (int, error)

// Func wraps a WidthFunc with a name for configuration and logs.
type Func struct {
	Label string
	Fn    WidthFunc
}

func (f Func) Name() string {
	if f.Label == "" {
		return "func"
	}
	return f.Label
}

func (f Func) Width(b host.Buffer, line int) (int, error) {
	return f.Fn(b, line)
}
