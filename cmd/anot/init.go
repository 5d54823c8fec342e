package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/anot/internal/git"
	"github.com/smykla-skalski/anot/internal/settings"
	"github.com/smykla-skalski/anot/internal/tui"
	"github.com/smykla-skalski/anot/internal/xdg"
	"github.com/smykla-skalski/anot/pkg/agent"
	"github.com/smykla-skalski/anot/pkg/event"
)

// Codex init actions.
const (
	actionInstall  = "install"
	actionOverride = "override"
	actionKeep     = "keep"
	actionRemove   = "remove"
)

var (
	eventsFlag   []string
	actionFlag   string
	dryRunFlag   bool
	noBackupFlag bool
	noTUIFlag    bool
)

// defaultClaudeEvents are preselected when nothing is registered yet.
var defaultClaudeEvents = []event.HookEventName{
	event.HookEventNotification,
	event.HookEventStop,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Register anot with a coding agent",
	Long: `Register anot with a coding agent.

Only entries that invoke anot are touched; everything else in the settings
file is kept as is. Running init twice with the same choices changes nothing.`,
}

var initClaudeCmd = &cobra.Command{
	Use:   "claude [path]",
	Short: "Register anot hooks in a Claude Code settings file",
	Long: `Register anot hooks in a Claude Code settings file.

Without a path, pick one of the user, project or local settings files.
Without --events, pick the hook events interactively. --events with an empty
value removes every anot hook from the file.

Examples:
  anot init claude
  anot init claude --events Notification,Stop
  anot init claude .claude/settings.local.json --events Stop --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInitClaude,
}

var initCodexCmd = &cobra.Command{
	Use:   "codex [path]",
	Short: "Point the Codex notify command at anot",
	Long: `Point the Codex notify command at anot.

Actions:
  install   set notify to anot unless another command is configured
  override  set notify to anot, replacing any other command
  keep      leave notify as it is
  remove    delete the notify key

Without --action, you are asked what to do.

Examples:
  anot init codex
  anot init codex --action install
  anot init codex ~/.codex/config.toml --action override --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInitCodex,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.AddCommand(initClaudeCmd)
	initCmd.AddCommand(initCodexCmd)

	initCmd.PersistentFlags().BoolVar(
		&dryRunFlag,
		"dry-run",
		false,
		"Print the change as a diff without writing it",
	)
	initCmd.PersistentFlags().BoolVar(
		&noBackupFlag,
		"no-backup",
		false,
		"Do not keep a backup of the previous file",
	)
	initCmd.PersistentFlags().BoolVar(
		&noTUIFlag,
		"no-tui",
		false,
		"Use simple prompts instead of the interactive TUI",
	)

	initClaudeCmd.Flags().StringSliceVar(
		&eventsFlag,
		"events",
		nil,
		"Comma-separated hook events to notify on (e.g. Notification,Stop)",
	)

	initCodexCmd.Flags().StringVar(
		&actionFlag,
		"action",
		"",
		"What to do with notify: install, override, keep or remove",
	)
}

func runInitClaude(cmd *cobra.Command, args []string) error {
	ui := tui.New(noTUIFlag)
	eventsGiven := cmd.Flags().Changed("events")

	root, inRepo, err := projectRoot()
	if err != nil {
		return err
	}

	path, err := settingsPath(args, func() (string, error) {
		return ui.ChooseClaudeSettings(settings.ClaudeLocations(root))
	})
	if err != nil {
		return err
	}

	before, exists, err := settings.ReadDocument(path)
	if err != nil {
		return err
	}

	current, err := settings.OwnedClaudeEvents(before)
	if err != nil {
		return errors.Wrapf(err, "cannot update %s", xdg.CollapseHome(path))
	}

	var desired []event.HookEventName

	if eventsGiven {
		desired, err = parseEvents(eventsFlag)
	} else {
		preselected := current
		if len(preselected) == 0 {
			preselected = defaultClaudeEvents
		}

		desired, err = ui.ChooseHookEvents(event.HookEventNameValues(), preselected)
	}

	if err != nil {
		return err
	}

	if !exists && len(desired) > 0 && !eventsGiven && !dryRunFlag {
		if err := confirmCreate(ui, path); err != nil {
			return err
		}
	}

	after, err := settings.MergeClaude(before, desired, settings.CommandLine(executablePath(), agent.Claude))
	if err != nil {
		return errors.Wrapf(err, "cannot update %s", xdg.CollapseHome(path))
	}

	log.Info("claude settings merged", "path", path, "events", len(desired))

	if err := applyChange(cmd.OutOrStdout(), path, before, after); err != nil {
		return err
	}

	if inRepo && !exists && len(desired) > 0 && !dryRunFlag && path == settings.ClaudeLocalSettingsPath(root) {
		excludeLocalSettings(cmd.OutOrStdout(), root)
	}

	return nil
}

// projectRoot returns the repository root of the working directory, or the
// working directory itself outside a repository.
func projectRoot() (string, bool, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrap(err, "failed to get working directory")
	}

	root, inRepo := git.ProjectRoot(cwd)

	return root, inRepo, nil
}

// excludeLocalSettings keeps a new project-local settings file out of git.
// Failures are logged only: the settings file is already written.
func excludeLocalSettings(out io.Writer, root string) {
	pattern := filepath.ToSlash(filepath.Join(".claude", filepath.Base(settings.ClaudeLocalSettingsPath(root))))

	err := git.NewExcludeFile(root).Add(pattern)
	switch {
	case err == nil:
		fmt.Fprintf(out, "Added %s to .git/info/exclude\n", pattern)
	case errors.Is(err, git.ErrAlreadyExcluded):
	default:
		log.Error("failed to update git exclude", "root", root, "error", err.Error())
	}
}

func runInitCodex(cmd *cobra.Command, args []string) error {
	ui := tui.New(noTUIFlag)

	path, err := settingsPath(args, func() (string, error) {
		return ui.ChooseCodexConfig(settings.CodexLocations())
	})
	if err != nil {
		return err
	}

	before, exists, err := settings.ReadDocument(path)
	if err != nil {
		return err
	}

	state, err := settings.InspectCodex(before)
	if err != nil {
		return errors.Wrapf(err, "cannot update %s", xdg.CollapseHome(path))
	}

	plan, err := planCodex(ui, state, settings.CommandArgv(executablePath(), agent.Codex), actionFlag)
	if err != nil {
		return err
	}

	if !plan.change {
		fmt.Fprintf(cmd.OutOrStdout(), "Keeping notify in %s\n", xdg.CollapseHome(path))

		return nil
	}

	if !exists && plan.desired != nil && actionFlag == "" && !dryRunFlag {
		if err := confirmCreate(ui, path); err != nil {
			return err
		}
	}

	after, err := settings.MergeCodex(before, plan.desired, plan.policy)
	if err != nil {
		return errors.Wrapf(err, "cannot update %s", xdg.CollapseHome(path))
	}

	log.Info("codex config merged", "path", path, "status", state.Status.String(), "policy", plan.policy.String())

	return applyChange(cmd.OutOrStdout(), path, before, after)
}

// codexPlan is the MergeCodex call an init run resolves to.
type codexPlan struct {
	desired []string
	policy  settings.OverridePolicy
	change  bool
}

func planCodex(ui tui.UI, state *settings.NotifyState, argv []string, action string) (codexPlan, error) {
	switch action {
	case actionInstall:
		if state.Status == settings.NotifyForeign {
			return codexPlan{}, errors.WithHint(
				errors.Wrapf(settings.ErrExplicitPolicyRequired, "notify is set to %q", state.Argv),
				"Use --action override to replace it or --action keep to leave it",
			)
		}

		return codexPlan{desired: argv, change: true}, nil
	case actionOverride:
		return codexPlan{desired: argv, policy: settings.PolicyOverride, change: true}, nil
	case actionKeep:
		return codexPlan{policy: settings.PolicyKeep}, nil
	case actionRemove:
		return codexPlan{policy: settings.PolicyRemove, change: true}, nil
	case "":
		return askCodex(ui, state, argv)
	default:
		return codexPlan{}, errors.Newf(
			"unknown action %q (expected %s, %s, %s or %s)",
			action, actionInstall, actionOverride, actionKeep, actionRemove,
		)
	}
}

func askCodex(ui tui.UI, state *settings.NotifyState, argv []string) (codexPlan, error) {
	if state.Status == settings.NotifyForeign {
		policy, err := ui.ChooseNotifyAction(state)
		if err != nil {
			return codexPlan{}, err
		}

		switch policy {
		case settings.PolicyOverride:
			return codexPlan{desired: argv, policy: policy, change: true}, nil
		case settings.PolicyRemove:
			return codexPlan{policy: policy, change: true}, nil
		default:
			return codexPlan{policy: settings.PolicyKeep}, nil
		}
	}

	enable, err := ui.ConfirmNotify(state.Status == settings.NotifyOwned)
	if err != nil {
		return codexPlan{}, err
	}

	if enable {
		return codexPlan{desired: argv, change: true}, nil
	}

	return codexPlan{change: true}, nil
}

func settingsPath(args []string, choose func() (string, error)) (string, error) {
	if len(args) == 1 {
		path, err := xdg.ExpandPath(args[0])
		if err != nil {
			return "", errors.Wrap(err, "invalid path")
		}

		return filepath.Abs(path)
	}

	path, err := choose()
	if err != nil {
		return "", err
	}

	return xdg.ExpandPath(path)
}

func confirmCreate(ui tui.UI, path string) error {
	ok, err := ui.ConfirmCreate(path)
	if err != nil {
		return err
	}

	if !ok {
		return errors.Wrapf(tui.ErrCancelled, "%s was not created", xdg.CollapseHome(path))
	}

	return nil
}

func parseEvents(names []string) ([]event.HookEventName, error) {
	kinds := make([]event.HookEventName, 0, len(names))

	for _, name := range names {
		if name == "" {
			continue
		}

		kind, err := event.HookEventNameString(name)
		if err != nil {
			return nil, errors.WithHintf(
				errors.Newf("unknown hook event %q", name),
				"Known events: %v", event.HookEventNameStrings(),
			)
		}

		kinds = append(kinds, kind)
	}

	return kinds, nil
}

// applyChange prints, skips or writes the merged document.
func applyChange(out io.Writer, path string, before, after []byte) error {
	display := xdg.CollapseHome(path)

	if bytes.Equal(before, after) {
		fmt.Fprintf(out, "%s is already up to date\n", display)

		return nil
	}

	if dryRunFlag {
		diff, err := settings.UnifiedDiff(display, before, after)
		if err != nil {
			return err
		}

		fmt.Fprint(out, theme().Diff(diff))

		return nil
	}

	backup, err := settings.WriteDocument(path, after, !noBackupFlag)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Updated %s\n", display)

	if backup != "" {
		fmt.Fprintf(out, "Backup saved to %s\n", xdg.CollapseHome(backup))
	}

	return nil
}

// executablePath returns the path agents should invoke. A binary that is not
// named anot (go run, tests) falls back to the anot found in PATH.
func executablePath() string {
	if exe, err := os.Executable(); err == nil && filepath.Base(exe) == settings.BinaryName {
		return exe
	}

	if path, err := osexec.LookPath(settings.BinaryName); err == nil {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}

		return path
	}

	return settings.BinaryName
}
