package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arames/vim-sem-tabs/internal/host"
	"github.com/arames/vim-sem-tabs/internal/log"
	"github.com/arames/vim-sem-tabs/internal/watcher"
)

var (
	formatWrite bool
	formatWatch bool
)

var formatCmd = &cobra.Command{
	Use:   "format [flags] FILE...",
	Short: "Realign indentation in files",
	Long: `Reindent every line of the given files so that structural levels
are encoded as tabs and intra-line alignment as trailing spaces.
Without -w the result is printed to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().BoolVarP(&formatWrite, "write", "w", false,
		"write result back to the source file instead of stdout")
	formatCmd.Flags().BoolVar(&formatWatch, "watch", false,
		"keep running and reformat files as they change (requires -w)")
}

func runFormat(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if formatWatch && !formatWrite {
		return fmt.Errorf("--watch requires -w")
	}

	cleanup := initLogging(false)
	defer cleanup()

	for _, path := range args {
		if err := formatFile(path); err != nil {
			return err
		}
	}

	if formatWatch {
		return watchFiles(args)
	}
	return nil
}

// formatFile realigns one file. With -w an unchanged file is left
// untouched; a changed one is replaced atomically via a temp file and
// rename so a crash never leaves it half-written.
func formatFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied file to format
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	formatted := formatText(text)
	out := formatted + "\n"

	if !formatWrite {
		fmt.Print(out)
		return nil
	}

	if formatted == text {
		log.Debug(log.CatFormat, "already aligned", "path", path)
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".semtabs-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.WriteString(out); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}
	_ = os.Chmod(tmp.Name(), info.Mode())
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	log.Info(log.CatFormat, "reformatted", "path", path)
	return nil
}

// formatText realigns every line of text and strips trailing whitespace
// when the configuration asks for it.
func formatText(text string) string {
	buf := host.FromText(text)
	eng, err := newEngine(buf)
	if err != nil {
		// Validate already vetted the oracle name.
		return text
	}

	eng.RealignRange(1, buf.LineCount())
	if cfg.DeleteTrailingWhitespace {
		for n := 1; n <= buf.LineCount(); n++ {
			eng.DeleteTrailingWhitespace(n)
		}
	}
	return buf.Text()
}

// watchFiles blocks, reformatting changed files until interrupted.
func watchFiles(files []string) error {
	w, err := watcher.New(watcher.DefaultConfig(files))
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	fmt.Fprintf(os.Stderr, "semtabs: watching %d file(s)\n", len(files))
	for {
		select {
		case batch := <-onChange:
			for _, path := range batch {
				if err := formatFile(path); err != nil {
					fmt.Fprintf(os.Stderr, "semtabs: %v\n", err)
				}
			}
		case <-sig:
			return nil
		}
	}
}
