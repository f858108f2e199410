package oracle

import "github.com/arames/vim-sem-tabs/internal/host"

// PrevLine copies the indentation width of the nearest non-blank line
// above. It is the generic strategy for file types without structural
// rules.
type PrevLine struct{}

func (PrevLine) Name() string { return "prev" }

func (PrevLine) Width(b host.Buffer, line int) (int, error) {
	prev := prevNonBlank(b, line)
	if prev == 0 {
		return 0, nil
	}
	return indentWidth(b, prev), nil
}
