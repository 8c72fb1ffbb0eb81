// Package cli implements the command-line interface for petshelter.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexander-akhmetov/petshelter/internal/config"
	"github.com/alexander-akhmetov/petshelter/internal/debug"
	"github.com/alexander-akhmetov/petshelter/internal/session"
	"github.com/alexander-akhmetov/petshelter/internal/shelter"
	"github.com/alexander-akhmetov/petshelter/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

var rootPlain bool

var rootCmd = &cobra.Command{
	Use:   "petshelter",
	Short: "Interactive adoption desk for a small pet shelter",
	Long: `Petshelter runs an interactive adoption session over a fixed in-memory
roster: list the available pets, search them by type and breed, or adopt
one by name. The roster lives for the run only; nothing is persisted.

On a terminal the session runs as a small inline TUI. When stdin or stdout
is not a terminal (pipes, CI), or with --plain, it falls back to a plain
line-based dialogue with no ANSI escapes.`,
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&rootPlain, "plain", false, "Use the plain line-based frontend even on a terminal")

	rootCmd.AddCommand(configCmd)
}

func runRoot(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sh, err := shelter.NewSeeded()
	if err != nil {
		return fmt.Errorf("seed shelter: %w", err)
	}
	debug.Logf("cli: seeded %d pets", sh.Len())

	sess := session.New(sh)
	sess.SetShelterName(cfg.ShelterName)

	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))

	if usePlain(rootPlain || cfg.Plain, stdinTTY, stdoutTTY) {
		debug.Logf("cli: plain frontend (stdin_tty=%v stdout_tty=%v forced=%v)", stdinTTY, stdoutTTY, rootPlain || cfg.Plain)
		return RunSession(os.Stdin, NewWriter(os.Stdout, stdoutTTY), sess)
	}

	debug.Logf("cli: tui frontend")
	return tui.Run(sess)
}

// usePlain decides between the plain line-based frontend and the TUI. The
// TUI needs a real terminal on both stdin and stdout; config or the --plain
// flag force plain mode.
func usePlain(forcePlain, stdinTTY, stdoutTTY bool) bool {
	if forcePlain {
		return true
	}
	return !stdinTTY || !stdoutTTY
}
