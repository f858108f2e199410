package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/arames/vim-sem-tabs/internal/indent"
)

var (
	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Width(4).
			Align(lipgloss.Right).
			MarginRight(1)

	cursorStyle = lipgloss.NewStyle().Reverse(true)

	tabGlyphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	normalModeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	insertModeStyle = normalModeStyle.Background(lipgloss.Color("35"))

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1)

	pasteStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	logPaneStyle = lipgloss.NewStyle().Faint(true)
)

func (m *Model) View() string {
	curLine, curCol := m.buf.Cursor()
	tabStop := m.buf.Settings().TabStop

	var b strings.Builder
	for n := 1; n <= m.buf.LineCount(); n++ {
		b.WriteString(lineNumberStyle.Render(fmt.Sprintf("%d", n)))
		b.WriteString(m.renderLine(m.buf.Line(n), n == curLine, curCol, tabStop))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.statusBar(curLine, curCol, tabStop))
	b.WriteByte('\n')

	for _, entry := range m.logs {
		b.WriteString(logPaneStyle.Render(strings.TrimRight(entry, "\n")))
		b.WriteByte('\n')
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderLine expands tabs visually (a dim "»" padded to the next tab
// stop), marks trailing spaces with a dim "·", and draws a block cursor
// over the grapheme at cursorCol.
func (m *Model) renderLine(line string, hasCursor bool, cursorCol, tabStop int) string {
	var out strings.Builder
	col := 1
	vcol := 1
	trailFrom := indent.RawLen(indent.TrimTrailing(line)) + 1

	g := uniseg.NewGraphemes(line)
	for g.Next() {
		cluster := g.Str()
		onCursor := hasCursor && col == cursorCol

		if cluster == "\t" {
			next := indent.NextTabStop(vcol, tabStop)
			glyph := "»"
			if onCursor {
				glyph = cursorStyle.Render(glyph)
			} else {
				glyph = tabGlyphStyle.Render(glyph)
			}
			out.WriteString(glyph)
			out.WriteString(strings.Repeat(" ", next-vcol-1))
			vcol = next
		} else {
			if cluster == " " && col >= trailFrom {
				cluster = "·"
			}
			if onCursor {
				out.WriteString(cursorStyle.Render(cluster))
			} else if col >= trailFrom {
				out.WriteString(tabGlyphStyle.Render(cluster))
			} else {
				out.WriteString(cluster)
			}
			vcol += indent.VirtualWidth(cluster, tabStop)
		}
		col++
	}

	// End-of-line cursor position.
	if hasCursor && cursorCol >= col {
		out.WriteString(cursorStyle.Render(" "))
	}
	return out.String()
}

func (m *Model) statusBar(line, col, tabStop int) string {
	mode := normalModeStyle
	if m.mode == ModeInsert {
		mode = insertModeStyle
	}

	name := m.path
	if name == "" {
		name = "[scratch]"
	}

	lead := indent.LeadingWhitespace(m.buf.Line(line))
	tabs := strings.Count(lead, "\t")
	spaces := len(lead) - tabs
	vcol := indent.VirtualCol(m.buf.Line(line), col, tabStop)

	parts := []string{
		mode.Render(m.mode.String()),
		statusBarStyle.Render(name),
		statusBarStyle.Render(fmt.Sprintf("Ln %d, Col %d, VCol %d", line, col, vcol)),
		statusBarStyle.Render(fmt.Sprintf("indent %dt+%ds", tabs, spaces)),
	}
	if m.buf.Settings().PastePreserve {
		parts = append(parts, pasteStyle.Render("PASTE"))
	}
	if m.status != "" {
		parts = append(parts, statusBarStyle.Render(m.status))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
