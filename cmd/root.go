// Package cmd wires the semtabs command line: the root command opens the
// interactive playground editor, and subcommands cover batch formatting.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arames/vim-sem-tabs/internal/config"
	"github.com/arames/vim-sem-tabs/internal/engine"
	"github.com/arames/vim-sem-tabs/internal/host"
	"github.com/arames/vim-sem-tabs/internal/log"
	"github.com/arames/vim-sem-tabs/internal/oracle"
	"github.com/arames/vim-sem-tabs/internal/ui/editor"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "semtabs [file]",
	Short: "Indentation with tabs for structure, spaces for alignment",
	Long: `semtabs keeps indentation semantic: one tab per nesting level,
spaces only for intra-line alignment. The root command opens an
interactive playground editor; pass a file to edit it in place.`,
	Args:    cobra.MaximumNArgs(1),
	Version: version,
	RunE:    runPlayground,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/semtabs/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write a debug log to semtabs.log")
	rootCmd.PersistentFlags().String("oracle", "",
		"auto-indent strategy: block, list, prev, or off")

	_ = viper.BindPFlag("oracle", rootCmd.PersistentFlags().Lookup("oracle"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("one_tab_indent", defaults.OneTabIndent)
	viper.SetDefault("tab_space_jump", defaults.TabSpaceJump)
	viper.SetDefault("delete_trailing_whitespace", defaults.DeleteTrailingWhitespace)
	viper.SetDefault("internal_step", defaults.InternalStep)
	viper.SetDefault("tab_stop", defaults.TabStop)
	viper.SetDefault("indent_unit", defaults.IndentUnit)
	viper.SetDefault("expand_tabs", defaults.ExpandTabs)
	viper.SetDefault("oracle", defaults.Oracle)
	viper.SetDefault("comment_leaders", defaults.CommentLeaders)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .semtabs/config.yaml (current directory)
		// 2. ~/.config/semtabs/config.yaml (user config)
		if _, err := os.Stat(".semtabs/config.yaml"); err == nil {
			viper.SetConfigFile(".semtabs/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "semtabs"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .semtabs/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".semtabs/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// initLogging turns on the debug log when --debug or SEMTABS_DEBUG asks
// for it. The returned cleanup is a no-op when logging stayed off.
func initLogging(tui bool) func() {
	if !debug && os.Getenv("SEMTABS_DEBUG") == "" {
		return func() {}
	}

	var cleanup func()
	var err error
	if tui {
		cleanup, err = log.InitWithTeaLog("semtabs.log", "semtabs")
	} else {
		cleanup, err = log.Init("semtabs.log")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "semtabs: debug log unavailable: %v\n", err)
		return func() {}
	}
	log.Info(log.CatConfig, "logging enabled", "config", viper.ConfigFileUsed())
	return cleanup
}

// newEngine builds a buffer-bound engine from the loaded configuration.
func newEngine(buf *host.MemBuffer) (*engine.Engine, error) {
	orc, err := oracle.ForName(cfg.Oracle)
	if err != nil {
		return nil, err
	}
	*buf.Settings() = cfg.HostSettings()
	buf.SetCommentLeaders(cfg.CommentLeaders)
	return engine.New(buf, orc, &cfg), nil
}

func runPlayground(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cleanup := initLogging(true)
	defer cleanup()

	var buf *host.MemBuffer
	var path string
	if len(args) == 1 {
		path = args[0]
		data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied file to edit
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		buf = host.FromText(strings.TrimSuffix(string(data), "\n"))
	} else {
		buf = host.NewMemBuffer()
	}

	eng, err := newEngine(buf)
	if err != nil {
		return err
	}

	model := editor.New(buf, eng, &cfg, path)
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running playground: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
