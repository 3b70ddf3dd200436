// Package main provides the CLI entrypoint for typr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typr/internal/config"
	"github.com/verte-zerg/typr/internal/ledger"
	"github.com/verte-zerg/typr/internal/model"
	"github.com/verte-zerg/typr/internal/stats"
	"github.com/verte-zerg/typr/internal/store"
	"github.com/verte-zerg/typr/internal/textsource"
	"github.com/verte-zerg/typr/internal/tui"
	"github.com/verte-zerg/typr/internal/wordlist"
)

const (
	defaultMode        = "ascii"
	defaultChars       = 150
	defaultLength      = 150
	defaultCurveWindow = 10
	mistypedTop        = 20
)

var (
	practiceMode     string
	practiceChars    int
	practiceLength   int
	practiceTextFile string
	practiceNoTrack  bool

	statsLast int

	mistypedTopN int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typr",
		Short:         "TUI typing practice",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceMode, "mode", defaultMode, "content mode: ascii, words, or text")
	rootCmd.Flags().IntVar(&practiceChars, "chars", defaultChars, "target length for ascii mode")
	rootCmd.Flags().IntVar(&practiceLength, "length", defaultLength, "target length bound for words mode")
	rootCmd.Flags().StringVar(&practiceTextFile, "text-file", "", "text file for text mode")
	rootCmd.Flags().BoolVar(&practiceNoTrack, "no-track", false, "disable mistyped-character tracking")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newMistypedCmd())
	rootCmd.AddCommand(newClearCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &practiceMode, fileCfg.Practice.Mode)
	applyIntConfig(cmd, "chars", &practiceChars, fileCfg.Practice.Chars)
	applyIntConfig(cmd, "length", &practiceLength, fileCfg.Practice.Length)
	applyStringConfig(cmd, "text-file", &practiceTextFile, fileCfg.Practice.TextFile)
	track := !practiceNoTrack
	if !cmd.Flags().Changed("no-track") && fileCfg.Practice.TrackMistakes != nil {
		track = *fileCfg.Practice.TrackMistakes
	}
	notifications := true
	if fileCfg.Practice.Notifications != nil {
		notifications = *fileCfg.Practice.Notifications
	}

	mode, err := parseMode(practiceMode)
	if err != nil {
		return err
	}
	cfg := model.Config{
		Mode:          mode,
		Chars:         practiceChars,
		TargetLen:     practiceLength,
		TextFile:      practiceTextFile,
		TrackMistakes: track,
		Notifications: notifications,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	words := loadWords()
	text := loadText(cfg.TextFile)

	// A broken database degrades to an in-memory run, never a fatal error.
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open db, running without persistence: %v\n", err)
		st = nil
	}
	defer func() {
		if st != nil {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}
	}()

	ctx := context.Background()
	led, err := ledger.Load(ctx, ledgerStore(st))
	if err != nil {
		logErrf("failed to load mistyped characters, starting empty: %v\n", err)
	}

	m := tui.NewModel(cfg, st, led, textsource.New(), words, text)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	// Save on exit so mistakes survive the process.
	if st != nil {
		if err := led.Save(ctx, st); err != nil {
			logErrf("failed to save mistyped characters: %v\n", err)
		}
	}
	return nil
}

// ledgerStore adapts a possibly-nil store to the ledger's interface; a
// typed nil inside a non-nil interface would defeat the nil check.
func ledgerStore(st *store.Store) ledger.Store {
	if st == nil {
		return nil
	}
	return st
}

// loadWords prefers the user's words file and falls back to the built-in
// list. A missing file is the common case, not an error.
func loadWords() []string {
	words, err := wordlist.LoadWords(config.DefaultWordsPath())
	if err != nil {
		return wordlist.Default()
	}
	return wordlist.FilterTypable(words)
}

// loadText reads the configured text file, or the default location when
// none is set. Missing content is fine; text mode will refuse to start.
func loadText(path string) string {
	if path == "" {
		path = config.DefaultTextPath()
	}
	text, err := wordlist.LoadText(path)
	if err != nil {
		return ""
	}
	return text
}

func newMistypedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mistyped",
		Short: "Show the most mistyped characters",
		Args:  cobra.NoArgs,
		RunE:  runMistypedCmd,
	}
	cmd.Flags().IntVar(&mistypedTopN, "top", mistypedTop, "number of characters to show")
	return cmd
}

func runMistypedCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)

	led, err := ledger.Load(context.Background(), st)
	if err != nil {
		logErrf("failed to load mistyped characters: %v\n", err)
	}
	return stats.RenderMistakes(cmd.OutOrStdout(), led.TopN(mistypedTopN))
}

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the mistyped-character ledger",
		Args:  cobra.NoArgs,
		RunE:  runClearCmd,
	}
}

func runClearCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)

	if err := st.ClearMistakes(context.Background()); err != nil {
		return fmt.Errorf("failed to clear mistyped characters: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), "Mistyped characters cleared.")
	return err
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show session history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)

	sessions, err := st.ListSessions(context.Background(), statsLast)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	return stats.RenderHistory(cmd.OutOrStdout(), sessions, width, defaultCurveWindow)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func parseMode(s string) (model.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascii":
		return model.ModeAscii, nil
	case "words":
		return model.ModeWords, nil
	case "text":
		return model.ModeText, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (expected ascii, words, or text)", s)
	}
}

func validateConfig(cfg model.Config) error {
	if cfg.Chars <= 0 {
		return fmt.Errorf("--chars must be > 0")
	}
	if cfg.TargetLen <= 0 {
		return fmt.Errorf("--length must be > 0")
	}
	return nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typr configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# mode = %q             # Content mode: ascii, words, or text
# chars = %d            # Target length for ascii mode
# length = %d           # Target length bound for words mode
# text-file = ""        # Text file for text mode
# track-mistakes = true # Record mistyped characters
# notifications = true  # Show transient notices
`,
		defaultMode,
		defaultChars,
		defaultLength,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
