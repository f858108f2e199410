package oracle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arames/vim-sem-tabs/internal/host"
)

func TestForName_KnownStrategies(t *testing.T) {
	for _, name := range []string{"block", "list", "prev"} {
		o, err := ForName(name)
		require.NoError(t, err)
		require.NotNil(t, o)
		require.Equal(t, name, o.Name())
	}
}

func TestForName_Off(t *testing.T) {
	o, err := ForName("off")
	require.NoError(t, err)
	require.Nil(t, o)

	o, err = ForName("")
	require.NoError(t, err)
	require.Nil(t, o)
}

func TestForName_Unknown(t *testing.T) {
	_, err := ForName("quantum")
	require.Error(t, err)
	require.Contains(t, err.Error(), "quantum")
}

func TestPrevLine_CopiesIndentWidth(t *testing.T) {
	b := host.NewMemBuffer("\t\tvalue", "next")
	b.Settings().TabStop = 4

	w, err := PrevLine{}.Width(b, 2)
	require.NoError(t, err)
	require.Equal(t, 8, w)
}

func TestPrevLine_SkipsBlankLines(t *testing.T) {
	b := host.NewMemBuffer("  x", "", "\t ", "y")

	w, err := PrevLine{}.Width(b, 4)
	require.NoError(t, err)
	require.Equal(t, 2, w)
}

func TestPrevLine_FirstLine(t *testing.T) {
	b := host.NewMemBuffer("x")

	w, err := PrevLine{}.Width(b, 1)
	require.NoError(t, err)
	require.Equal(t, 0, w)
}

func TestBlock_IndentsAfterOpenBrace(t *testing.T) {
	b := host.NewMemBuffer("func main() {", "body")
	b.Settings().IndentUnit = 4

	w, err := Block{}.Width(b, 2)
	require.NoError(t, err)
	require.Equal(t, 4, w)
}

func TestBlock_DedentsClosingBrace(t *testing.T) {
	b := host.NewMemBuffer("\tbody()", "}")
	b.Settings().TabStop = 4
	b.Settings().IndentUnit = 4

	w, err := Block{}.Width(b, 2)
	require.NoError(t, err)
	require.Equal(t, 0, w)
}

func TestBlock_CarriesPrevIndent(t *testing.T) {
	b := host.NewMemBuffer("\t\tcall()", "more")
	b.Settings().TabStop = 4

	w, err := Block{}.Width(b, 2)
	require.NoError(t, err)
	require.Equal(t, 8, w)
}

func TestBlock_NeverNegative(t *testing.T) {
	b := host.NewMemBuffer("x()", "}")
	b.Settings().IndentUnit = 4

	w, err := Block{}.Width(b, 2)
	require.NoError(t, err)
	require.Equal(t, 0, w)
}

func TestBlock_IgnoresTrailingWhitespaceBeforeBrace(t *testing.T) {
	b := host.NewMemBuffer("if x {   ", "body")
	b.Settings().IndentUnit = 2

	w, err := Block{}.Width(b, 2)
	require.NoError(t, err)
	require.Equal(t, 2, w)
}

func TestList_AlignsUnderSecondElement(t *testing.T) {
	b := host.NewMemBuffer("(defun greet (name)", "(body)")

	w, err := List{}.Width(b, 2)
	require.NoError(t, err)
	// Aligns under "greet", which starts at raw column 8.
	require.Equal(t, 7, w)
}

func TestList_HeadAlone_UsesIndentUnit(t *testing.T) {
	b := host.NewMemBuffer("  (let", "x")
	b.Settings().IndentUnit = 2

	w, err := List{}.Width(b, 2)
	require.NoError(t, err)
	// One unit past the open paren at raw column 3.
	require.Equal(t, 4, w)
}

func TestList_BalancedLine_Defers(t *testing.T) {
	b := host.NewMemBuffer("(done)", "next")

	_, err := List{}.Width(b, 2)
	require.ErrorIs(t, err, ErrNoOpinion)
}

func TestList_FirstLine(t *testing.T) {
	b := host.NewMemBuffer("x")

	w, err := List{}.Width(b, 1)
	require.NoError(t, err)
	require.Equal(t, 0, w)
}

func TestFunc_WrapsUserLogic(t *testing.T) {
	o := Func{Label: "fixed", Fn: func(host.Buffer, int) (int, error) { return 42, nil }}
	require.Equal(t, "fixed", o.Name())

	w, err := o.Width(host.NewMemBuffer(), 1)
	require.NoError(t, err)
	require.Equal(t, 42, w)
}

func TestFunc_PropagatesFailure(t *testing.T) {
	boom := errors.New("bad expression")
	o := Func{Fn: func(host.Buffer, int) (int, error) { return 0, boom }}
	require.Equal(t, "func", o.Name())

	_, err := o.Width(host.NewMemBuffer(), 1)
	require.ErrorIs(t, err, boom)
}
