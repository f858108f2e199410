// Package config provides configuration types, defaults, validation and
// persistence for semtabs.
package config

import (
	"fmt"

	"github.com/arames/vim-sem-tabs/internal/host"
	"github.com/arames/vim-sem-tabs/internal/oracle"
)

// Config holds all configuration options for semtabs. It is built once
// at startup, validated, and passed by reference into every entry
// point; the engine itself never mutates it.
type Config struct {
	// OneTabIndent makes the Tab key reindent the whole line when the
	// cursor sits in its leading whitespace, instead of inserting a
	// literal tab.
	OneTabIndent bool `mapstructure:"one_tab_indent"`

	// TabSpaceJump makes the Tab key skip over a whitespace run to the
	// next non-whitespace character instead of inserting anything.
	TabSpaceJump bool `mapstructure:"tab_space_jump"`

	// DeleteTrailingWhitespace enables trailing-whitespace cleanup on
	// the line vacated by a new-line and on leaving insert mode.
	DeleteTrailingWhitespace bool `mapstructure:"delete_trailing_whitespace"`

	// InternalStep is the amplification unit handed to the oracle so
	// its single width output decomposes losslessly into levels and
	// remainder. It only needs to exceed any plausible alignment
	// offset; 80 matches a traditional line width.
	InternalStep int `mapstructure:"internal_step"`

	// TabStop is the display width of a tab character.
	TabStop int `mapstructure:"tab_stop"`

	// IndentUnit is the width of one indentation step.
	IndentUnit int `mapstructure:"indent_unit"`

	// ExpandTabs renders tabs as spaces file-wide and deactivates the
	// engine, since the tab/space distinction becomes meaningless.
	ExpandTabs bool `mapstructure:"expand_tabs"`

	// Oracle selects the auto-indent strategy: "block", "list",
	// "prev", or "off".
	Oracle string `mapstructure:"oracle"`

	// CommentLeaders are the line-comment markers continued onto
	// freshly opened lines.
	CommentLeaders []string `mapstructure:"comment_leaders"`
}

// Defaults returns the configuration used when no config file exists.
func Defaults() Config {
	return Config{
		OneTabIndent:             true,
		TabSpaceJump:             true,
		DeleteTrailingWhitespace: true,
		InternalStep:             80,
		TabStop:                  4,
		IndentUnit:               4,
		Oracle:                   "block",
		CommentLeaders:           []string{"//", "#", "--", ";"},
	}
}

// Validate rejects malformed configuration loudly at load time rather
// than deferring to first use. In particular a non-positive
// internal_step would later be used as a divisor.
func (c Config) Validate() error {
	if c.InternalStep <= 0 {
		return fmt.Errorf("internal_step must be positive, got %d", c.InternalStep)
	}
	if c.TabStop <= 0 {
		return fmt.Errorf("tab_stop must be positive, got %d", c.TabStop)
	}
	if c.IndentUnit <= 0 {
		return fmt.Errorf("indent_unit must be positive, got %d", c.IndentUnit)
	}
	if _, err := oracle.ForName(c.Oracle); err != nil {
		return fmt.Errorf("oracle: %w (valid: %v)", err, oracle.Names())
	}
	return nil
}

// HostSettings seeds a buffer's settings from the configuration.
func (c Config) HostSettings() host.Settings {
	return host.Settings{
		TabStop:    c.TabStop,
		IndentUnit: c.IndentUnit,
		ExpandTabs: c.ExpandTabs,
	}
}
