package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults_AreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestValidate_RejectsNonPositiveStep(t *testing.T) {
	c := Defaults()
	c.InternalStep = 0
	require.Error(t, c.Validate())

	c.InternalStep = -80
	err := c.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "internal_step")
}

func TestValidate_RejectsNonPositiveTabStop(t *testing.T) {
	c := Defaults()
	c.TabStop = 0
	require.Error(t, c.Validate())
}

func TestValidate_RejectsNonPositiveIndentUnit(t *testing.T) {
	c := Defaults()
	c.IndentUnit = -1
	require.Error(t, c.Validate())
}

func TestValidate_RejectsUnknownOracle(t *testing.T) {
	c := Defaults()
	c.Oracle = "psychic"
	err := c.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "psychic")
}

func TestValidate_AcceptsOracleOff(t *testing.T) {
	c := Defaults()
	c.Oracle = "off"
	require.NoError(t, c.Validate())
}

func TestHostSettings_SeedsFromConfig(t *testing.T) {
	c := Defaults()
	c.TabStop = 8
	c.ExpandTabs = true

	s := c.HostSettings()
	require.Equal(t, 8, s.TabStop)
	require.Equal(t, c.IndentUnit, s.IndentUnit)
	require.True(t, s.ExpandTabs)
	require.False(t, s.PastePreserve, "paste mode is runtime state, not config")
}

// TestDefaultTemplate_MatchesDefaults keeps the commented YAML template
// in sync with Defaults().
func TestDefaultTemplate_MatchesDefaults(t *testing.T) {
	var raw map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(defaultConfigYAML), &raw))

	want := Defaults()
	require.Equal(t, want.OneTabIndent, raw["one_tab_indent"])
	require.Equal(t, want.TabSpaceJump, raw["tab_space_jump"])
	require.Equal(t, want.DeleteTrailingWhitespace, raw["delete_trailing_whitespace"])
	require.Equal(t, want.InternalStep, raw["internal_step"])
	require.Equal(t, want.TabStop, raw["tab_stop"])
	require.Equal(t, want.IndentUnit, raw["indent_unit"])
	require.Equal(t, want.ExpandTabs, raw["expand_tabs"])
	require.Equal(t, want.Oracle, raw["oracle"])

	leaders, ok := raw["comment_leaders"].([]any)
	require.True(t, ok)
	require.Len(t, leaders, len(want.CommentLeaders))
	for i, l := range want.CommentLeaders {
		require.Equal(t, l, leaders[i])
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".semtabs", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "internal_step: 80")

	// Never clobber an existing file.
	require.Error(t, WriteDefaultConfig(path))
}
