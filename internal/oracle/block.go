package oracle

import (
	"strings"

	"github.com/arames/vim-sem-tabs/internal/host"
	"github.com/arames/vim-sem-tabs/internal/indent"
)

// Block indents brace-structured code: one IndentUnit deeper after a
// line ending in an opening delimiter, one shallower on a line whose
// first character closes one. Grounded on how C-family auto-indenters
// treat `{ ( [` and `} ) ]`.
type Block struct{}

func (Block) Name() string { return "block" }

func (Block) Width(b host.Buffer, line int) (int, error) {
	prev := prevNonBlank(b, line)
	if prev == 0 {
		return 0, nil
	}
	unit := b.Settings().IndentUnit

	width := indentWidth(b, prev)
	if trimmed := indent.TrimTrailing(b.Line(prev)); trimmed != "" {
		if strings.ContainsRune("{([", rune(trimmed[len(trimmed)-1])) {
			width += unit
		}
	}

	cur := b.Line(line)
	if rest := cur[len(indent.LeadingWhitespace(cur)):]; rest != "" {
		if strings.ContainsRune("})]", rune(rest[0])) {
			width -= unit
		}
	}
	if width < 0 {
		width = 0
	}
	return width, nil
}
