package oracle

import (
	"github.com/arames/vim-sem-tabs/internal/host"
	"github.com/arames/vim-sem-tabs/internal/indent"
)

// List indents Lisp-style lists: a continuation line aligns under the
// second element of the innermost form left open on the previous line,
// or one IndentUnit past the form's opening paren when the head stands
// alone. When the previous line leaves no form open, List defers.
type List struct{}

func (List) Name() string { return "list" }

func (List) Width(b host.Buffer, line int) (int, error) {
	prev := prevNonBlank(b, line)
	if prev == 0 {
		return 0, nil
	}

	text := b.Line(prev)
	ts := b.Settings().TabStop
	open := openParenCol(text)
	if open == 0 {
		return 0, ErrNoOpinion
	}

	if arg := secondElementCol(text, open); arg > 0 {
		return indent.VirtualCol(text, arg, ts) - 1, nil
	}
	return indent.VirtualCol(text, open, ts) - 1 + b.Settings().IndentUnit, nil
}

// openParenCol returns the raw column of the innermost '(' left
// unclosed at the end of the line, or 0 when the line is balanced.
func openParenCol(line string) int {
	var stack []int
	col := 0
	for _, r := range line {
		col++ // raw columns; list sources are assumed narrow ASCII here
		switch r {
		case '(':
			stack = append(stack, col)
		case ')':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if len(stack) == 0 {
		return 0
	}
	return stack[len(stack)-1]
}

// secondElementCol returns the raw column of the form's second element,
// i.e. the first non-space run after the head token, or 0 when the head
// is the last thing on the line.
func secondElementCol(line string, open int) int {
	runes := []rune(line)
	i := open // index just past '(' (0-based: runes[open-1] == '(')
	// skip the head token
	for i < len(runes) && runes[i] != ' ' && runes[i] != '\t' {
		i++
	}
	// skip the gap
	for i < len(runes) && (runes[i] == ' ' || runes[i] == '\t') {
		i++
	}
	if i >= len(runes) {
		return 0
	}
	return i + 1
}
