// Package main provides the CLI entry point for anot.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/anot/internal/color"
	"github.com/smykla-skalski/anot/internal/config"
	"github.com/smykla-skalski/anot/internal/crashdump"
	"github.com/smykla-skalski/anot/internal/xdg"
	"github.com/smykla-skalski/anot/pkg/logger"
)

const (
	// ExitCodeOK indicates success.
	ExitCodeOK = 0

	// ExitCodeError indicates a handled failure.
	ExitCodeError = 1

	// ExitCodeCrash indicates an unexpected panic/crash occurred.
	ExitCodeCrash = 3
)

var (
	configPath  string
	resetConfig bool
	debugCount  int
	noColorFlag bool

	log       logger.Logger = logger.NewNoOpLogger()
	logCloser io.Closer

	// crashContext describes the running command for the panic handler.
	crashContext = &crashdump.ContextInfo{}
)

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() (exitCode int) {
	defer closeLogger()

	defer func() {
		if r := recover(); r != nil {
			handlePanic(r)

			exitCode = ExitCodeCrash
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)

		return ExitCodeError
	}

	return ExitCodeOK
}

var rootCmd = &cobra.Command{
	Use:   "anot",
	Short: "Desktop notifications for coding agents",
	Long: `anot turns Claude Code hook events and Codex turn notifications into
desktop notifications, and keeps the agent settings that invoke it in order.

Examples:
  anot init claude          # register hooks in a Claude Code settings file
  anot init codex           # point Codex notify at anot
  anot doctor               # check the setup`,
	PersistentPreRunE: setup,
	RunE:              runRoot,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"Path to the preferences file (default: "+xdg.CollapseHome(xdg.PreferencesFile())+")",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&resetConfig,
		"reset-config",
		"r",
		false,
		"Rewrite the preferences file with defaults before running",
	)
	rootCmd.PersistentFlags().CountVarP(
		&debugCount,
		"debug",
		"d",
		"Increase log verbosity (-d info, -dd debug)",
	)
	rootCmd.PersistentFlags().BoolVar(
		&noColorFlag,
		"no-color",
		false,
		"Disable colored output",
	)
}

// setup opens the log file and applies --reset-config.
func setup(cmd *cobra.Command, _ []string) error {
	crashContext.Command = cmd.CommandPath()

	openLogger()

	log.Info("command invoked", "command", cmd.CommandPath())

	if !resetConfig {
		return nil
	}

	if _, err := preferencesStore().Reset(); err != nil {
		err = errors.Wrap(err, "failed to reset preferences")

		if cmd == claudeCmd {
			return respondFailed(cmd.OutOrStdout(), err)
		}

		return err
	}

	return nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if versionRequested {
		fmt.Fprint(cmd.OutOrStdout(), versionString())

		return nil
	}

	if resetConfig {
		fmt.Fprintf(cmd.OutOrStdout(), "Preferences reset: %s\n", xdg.CollapseHome(preferencesPath()))

		return nil
	}

	return cmd.Help()
}

// openLogger never fails: notification commands must keep working when the
// log file cannot be opened.
func openLogger() {
	fileLogger, err := logger.NewFileLogger(xdg.LogFile(), logger.LevelFromVerbosity(debugCount))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)

		return
	}

	log = fileLogger
	logCloser = fileLogger
}

func closeLogger() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

func preferencesPath() string {
	if configPath != "" {
		return xdg.ExpandPathSilent(configPath)
	}

	return xdg.PreferencesFile()
}

func preferencesStore() *config.Store {
	return config.NewStore(preferencesPath(), log)
}

func theme() color.Theme {
	return color.NewTheme(color.Enabled(noColorFlag, os.Stdout))
}

// printError writes err and its hints.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	if hints := errors.FlattenHints(err); hints != "" {
		fmt.Fprintf(w, "Hint: %s\n", hints)
	}
}

func handlePanic(recovered any) {
	fmt.Fprintf(os.Stderr, "panic: %v\n", recovered)

	log.Error("panic recovered", "value", fmt.Sprint(recovered))

	store, err := crashdump.Open(xdg.CrashDumpDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open crash dump directory: %v\n", err)

		return
	}

	path, err := store.Save(crashdump.Capture(recovered, version, crashContext))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write crash dump: %v\n", err)

		return
	}

	fmt.Fprintf(os.Stderr, "crash dump saved to: %s\n", path)
}
