// Package main provides the CLI entrypoint for tomatui.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tomatui/internal/config"
	"tomatui/internal/notify"
	"tomatui/internal/timer"
	"tomatui/internal/tui"
)

const (
	defaultFocusMinutes = 25
	defaultBreakMinutes = 5
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	timerFocus int
	timerBreak int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tomatui",
		Short:         "Pomodoro timer for the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTimerCmd,
	}

	rootCmd.Flags().IntVarP(&timerFocus, "focus", "f", defaultFocusMinutes, "focus time in minutes")
	rootCmd.Flags().IntVarP(&timerBreak, "break", "b", defaultBreakMinutes, "break time in minutes")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runTimerCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "focus", &timerFocus, fileCfg.Timer.Focus)
	applyIntConfig(cmd, "break", &timerBreak, fileCfg.Timer.Break)

	if err := validateDurations(timerFocus, timerBreak); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	engine := timer.New(timerFocus, timerBreak)
	notifier := notify.New()
	model := tui.NewModel(engine, notifier)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
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

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateDurations(focusMinutes, breakMinutes int) error {
	if focusMinutes < 1 {
		return fmt.Errorf("--focus must be >= 1")
	}
	if breakMinutes < 1 {
		return fmt.Errorf("--break must be >= 1")
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tomatui configuration
# Uncomment a value to enable it. CLI flags override config values.

[timer]
# focus = %d              # Focus time in minutes
# break = %d              # Break time in minutes
`,
		defaultFocusMinutes,
		defaultBreakMinutes,
	)
}
