package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultConfigYAML is the commented template written on first run.
// Kept as a literal so the generated file documents itself.
const defaultConfigYAML = `# semtabs configuration
#
# Indentation levels are encoded as tabs, intra-line alignment as
# spaces. These options control how the Tab key, Enter, and the realign
# operators behave.

# Reindent the whole line when Tab is pressed inside leading whitespace.
one_tab_indent: true

# Jump across a whitespace run instead of inserting when Tab is pressed
# mid-line.
tab_space_jump: true

# Strip trailing whitespace on the vacated line after Enter and on
# leaving insert mode. Skipped while paste mode is active.
delete_trailing_whitespace: true

# Amplification unit for the oracle round trip. Must be positive and
# larger than any alignment offset you expect to use.
internal_step: 80

# Display width of a tab character.
tab_stop: 4

# Width of one indentation step.
indent_unit: 4

# Render tabs as spaces file-wide. Disables the engine.
expand_tabs: false

# Auto-indent strategy: block, list, prev, or off.
oracle: block

# Line-comment markers continued onto newly opened lines.
comment_leaders: ["//", "#", "--", ";"]
`

// WriteDefaultConfig creates the default config file at path, creating
// parent directories as needed. Fails if the file already exists.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
