package main

import (
	"io"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smykla-skalski/anot/internal/color"
	"github.com/smykla-skalski/anot/internal/config"
	"github.com/smykla-skalski/anot/internal/doctor"
	"github.com/smykla-skalski/anot/internal/doctor/checkers/binary"
	"github.com/smykla-skalski/anot/internal/doctor/checkers/claude"
	"github.com/smykla-skalski/anot/internal/doctor/checkers/codex"
	configchecker "github.com/smykla-skalski/anot/internal/doctor/checkers/config"
	"github.com/smykla-skalski/anot/internal/doctor/checkers/delivery"
	"github.com/smykla-skalski/anot/internal/doctor/fixers"
	"github.com/smykla-skalski/anot/internal/doctor/reporters"
	"github.com/smykla-skalski/anot/internal/exec"
	"github.com/smykla-skalski/anot/internal/icon"
	"github.com/smykla-skalski/anot/internal/prompt"
	"github.com/smykla-skalski/anot/internal/settings"
	"github.com/smykla-skalski/anot/internal/tui"
	"github.com/smykla-skalski/anot/internal/xdg"
)

var (
	verboseFlag  bool
	fixFlag      bool
	categoryFlag []string
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the anot setup",
	Long: `Diagnose the anot setup.

Checks:
- anot is reachable in PATH
- the preferences file is valid
- Claude Code hooks are registered once per event
- Codex notify runs anot
- a notification backend and the agent icons are available

Examples:
  anot doctor                     # Run all checks
  anot doctor --verbose           # Show details
  anot doctor --fix               # Fix what can be fixed without asking
  anot doctor --category claude   # Check one category`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().BoolVarP(
		&verboseFlag,
		"verbose",
		"v",
		false,
		"Enable verbose output with details",
	)

	doctorCmd.Flags().BoolVar(
		&fixFlag,
		"fix",
		false,
		"Automatically fix issues without prompting",
	)

	doctorCmd.Flags().StringSliceVar(
		&categoryFlag,
		"category",
		[]string{},
		"Filter checks by category ("+strings.Join(categoryNames(), ", ")+")",
	)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	log.Info("starting doctor command",
		"verbose", verboseFlag,
		"fix", fixFlag,
		"categories", strings.Join(categoryFlag, ","),
	)

	root, _, err := projectRoot()
	if err != nil {
		return err
	}

	icons := icon.NewStore(xdg.IconsDir())
	registry := buildDoctorRegistry(root, icons)

	prompter := prompt.NewStdPrompter()
	registerFixers(registry, prompter, icons)

	runner := doctor.NewRunner(registry, selectReporter(out), prompter, out, log)

	opts := doctor.RunOptions{
		Verbose:     verboseFlag,
		AutoFix:     fixFlag,
		Interactive: !fixFlag && tui.IsTerminal(),
		Categories:  parseCategories(cmd.ErrOrStderr(), categoryFlag),
	}

	return runner.Run(cmd.Context(), opts)
}

// buildDoctorRegistry creates and populates the health check registry.
func buildDoctorRegistry(root string, icons *icon.Store) *doctor.Registry {
	registry := doctor.NewRegistry()

	registry.RegisterChecker(binary.NewExistsChecker())

	registry.RegisterChecker(configchecker.NewPreferencesChecker(preferencesPath()))

	locations := settings.ClaudeLocations(root)
	for _, checker := range claude.NewRegistrationCheckers(locations) {
		registry.RegisterChecker(checker)
	}

	registry.RegisterChecker(claude.NewOverlapChecker(locations))

	registry.RegisterChecker(codex.NewNotifyChecker(settings.CodexConfigPath()))

	registry.RegisterChecker(delivery.NewBackendChecker(runtime.GOOS, exec.NewToolChecker()))
	registry.RegisterChecker(delivery.NewIconsChecker(icons))

	return registry
}

// registerFixers registers all available fixers.
func registerFixers(registry *doctor.Registry, prompter prompt.Prompter, icons *icon.Store) {
	registry.RegisterFixer(fixers.NewPreferencesFixer(prompter, config.NewStore(preferencesPath(), log)))
	registry.RegisterFixer(fixers.NewIconsFixer(icons))
}

// selectReporter uses the table reporter on a color terminal.
func selectReporter(out io.Writer) doctor.Reporter {
	if f, ok := out.(*os.File); ok && color.Enabled(noColorFlag, f) {
		return reporters.NewTableReporter(out, color.NewTheme(true))
	}

	return reporters.NewSimpleReporter(out)
}

// parseCategories converts names to categories, warning about unknown ones.
func parseCategories(warn io.Writer, names []string) []doctor.Category {
	categories := make([]doctor.Category, 0, len(names))

	for _, name := range names {
		category := doctor.Category(strings.ToLower(strings.TrimSpace(name)))

		if !slices.Contains(doctor.AllCategories, category) {
			_, _ = io.WriteString(warn, "Warning: unknown category \""+name+"\", ignoring\n")

			continue
		}

		categories = append(categories, category)
	}

	return categories
}

func categoryNames() []string {
	names := make([]string, 0, len(doctor.AllCategories))
	for _, category := range doctor.AllCategories {
		names = append(names, string(category))
	}

	return names
}
