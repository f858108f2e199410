package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/arames/vim-sem-tabs/internal/config"
	"github.com/arames/vim-sem-tabs/internal/host"
	"github.com/arames/vim-sem-tabs/internal/indent"
	"github.com/arames/vim-sem-tabs/internal/oracle"
)

func TestReindent_DecomposesOracleWidth(t *testing.T) {
	// Oracle reports 170 with internal_step 80: two levels plus ten
	// alignment columns.
	e, buf := newTestEngine(fixedOracle(170), "    value(a,")

	d := e.Reindent(1)
	require.True(t, d.Valid)
	require.Equal(t, 2, d.Levels)
	require.Equal(t, 10, d.Spaces)
	require.Equal(t, "\t\t          value(a,", buf.Line(1))
}

func TestReindent_Inactive_NoChange(t *testing.T) {
	e, buf := newTestEngine(nil, "   untouched   ")

	d := e.Reindent(1)
	require.False(t, d.Valid)
	require.Equal(t, "   untouched   ", buf.Line(1))
}

func TestReindent_OracleFailure_NoChange(t *testing.T) {
	failing := oracle.Func{Fn: func(host.Buffer, int) (int, error) {
		return 0, errors.New("oracle blew up")
	}}
	e, buf := newTestEngine(failing, "  keep me  ")

	d := e.Reindent(1)
	require.False(t, d.Valid)
	require.Equal(t, "  keep me  ", buf.Line(1))
}

func TestReindent_BlankLine(t *testing.T) {
	// A fully blank line is all leading whitespace; it is rewritten
	// directly, no placeholder tricks needed.
	e, buf := newTestEngine(fixedOracle(160), "      ")

	d := e.Reindent(1)
	require.True(t, d.Valid)
	require.Equal(t, "\t\t", buf.Line(1))
	require.Equal(t, 2, d.Levels)
}

func TestReindent_EmptyLine(t *testing.T) {
	e, buf := newTestEngine(fixedOracle(80), "")

	e.Reindent(1)
	require.Equal(t, "\t", buf.Line(1))
}

func TestReindent_Idempotent(t *testing.T) {
	e, buf := newTestEngine(fixedOracle(85), "\tx := 1")

	e.Reindent(1)
	first := buf.Line(1)
	e.Reindent(1)
	require.Equal(t, first, buf.Line(1))
	require.Equal(t, "\t     x := 1", first)
}

func TestReindent_PreservesContentBytes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(0, 400).Draw(t, "width")
		lead := rapid.StringMatching(`[ \t]{0,8}`).Draw(t, "lead")
		// Body starts with a non-whitespace byte so the leading run is
		// well defined; the rest may contain interior whitespace.
		body := rapid.StringMatching(`[!-~][ -~\t]{0,20}`).Draw(t, "body")

		e, buf := newTestEngine(fixedOracle(width), lead+body)
		d := e.Reindent(1)

		require.True(t, d.Valid)
		got := buf.Line(1)
		require.Equal(t, d.Indent()+body, got)

		// Suffix from the first non-whitespace byte is untouched.
		gotLead := indent.LeadingWhitespace(got)
		require.Equal(t, body, got[len(gotLead):])
	})
}

func TestReindent_IdempotentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[ \t]{0,6}[!-~]{0,12}`), 1, 8).Draw(t, "lines")
		n := rapid.IntRange(1, len(lines)).Draw(t, "line")

		buf := host.NewMemBuffer(lines...)
		cfg := config.Defaults()
		e := New(buf, oracle.Block{}, &cfg)

		e.Reindent(n)
		once := buf.Line(n)
		e.Reindent(n)
		require.Equal(t, once, buf.Line(n))
	})
}
