package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/internal/prompt"
	"github.com/smykla-skalski/anot/internal/settings"
	"github.com/smykla-skalski/anot/internal/xdg"
	"github.com/smykla-skalski/anot/pkg/event"
)

// FallbackUI implements UI using simple line prompts.
// This is used when the terminal is not interactive (CI, piped input, etc.)
// or when --no-tui is given.
type FallbackUI struct {
	prompter prompt.Prompter
	out      io.Writer
}

// NewFallbackUI creates a new FallbackUI instance.
func NewFallbackUI() *FallbackUI {
	return &FallbackUI{
		prompter: prompt.NewStdPrompter(),
		out:      os.Stderr,
	}
}

// NewFallbackUIWithPrompter creates a FallbackUI with a custom prompter.
func NewFallbackUIWithPrompter(p prompt.Prompter, out io.Writer) *FallbackUI {
	return &FallbackUI{
		prompter: p,
		out:      out,
	}
}

// IsInteractive returns false as FallbackUI is for non-interactive terminals.
func (*FallbackUI) IsInteractive() bool {
	return false
}

// ChooseClaudeSettings picks a Claude Code settings file.
func (f *FallbackUI) ChooseClaudeSettings(locations []settings.Location) (string, error) {
	return f.choosePath("Claude Code settings file:", locations)
}

// ChooseCodexConfig picks a Codex config file.
func (f *FallbackUI) ChooseCodexConfig(locations []settings.Location) (string, error) {
	return f.choosePath("Codex config file:", locations)
}

// ConfirmCreate asks whether path may be created.
func (f *FallbackUI) ConfirmCreate(path string) (bool, error) {
	ok, err := f.prompter.Confirm(fmt.Sprintf("%s does not exist. Create it?", xdg.CollapseHome(path)), true)

	return ok, cancelled(err)
}

// ChooseHookEvents picks hook events with current preselected.
func (f *FallbackUI) ChooseHookEvents(all, current []event.HookEventName) ([]event.HookEventName, error) {
	labels := make([]string, 0, len(all))
	defaults := make([]int, 0, len(current))

	for i, kind := range all {
		labels = append(labels, kind.String())

		for _, c := range current {
			if c == kind {
				defaults = append(defaults, i)
			}
		}
	}

	indexes, err := f.prompter.MultiSelect("Notify on these Claude Code events:", labels, defaults)
	if err != nil {
		return nil, cancelled(err)
	}

	selected := make([]event.HookEventName, 0, len(indexes))
	for _, i := range indexes {
		selected = append(selected, all[i])
	}

	return sortEvents(selected), nil
}

// ChooseNotifyAction picks what to do with a foreign notify command.
func (f *FallbackUI) ChooseNotifyAction(current *settings.NotifyState) (settings.OverridePolicy, error) {
	labels := make([]string, 0, len(notifyActions))
	keep := 0

	for i, action := range notifyActions {
		labels = append(labels, action.label)

		if action.policy == settings.PolicyKeep {
			keep = i
		}
	}

	title := fmt.Sprintf("Codex already runs another notify command: %q", current.Argv)

	i, err := f.prompter.Select(title, labels, keep)
	if err != nil {
		return settings.PolicyUnset, cancelled(err)
	}

	return notifyActions[i].policy, nil
}

// ConfirmNotify asks whether Codex should notify through anot.
func (f *FallbackUI) ConfirmNotify(enabled bool) (bool, error) {
	title := "Send Codex turn notifications through anot?"
	if enabled {
		title = "Codex already notifies through anot. Keep it?"
	}

	ok, err := f.prompter.Confirm(title, true)

	return ok, cancelled(err)
}

func (f *FallbackUI) choosePath(title string, locations []settings.Location) (string, error) {
	labels := make([]string, 0, len(locations)+1)
	for _, loc := range locations {
		labels = append(labels, loc.Describe())
	}

	labels = append(labels, customPathLabel)

	def := 0
	preferred := defaultPath(locations)

	for i, loc := range locations {
		if loc.Path == preferred {
			def = i
		}
	}

	i, err := f.prompter.Select(title, labels, def)
	if err != nil {
		return "", cancelled(err)
	}

	if i < len(locations) {
		return locations[i].Path, nil
	}

	path, err := f.prompter.Input("Path", "")
	if err != nil {
		return "", cancelled(err)
	}

	expanded, err := xdg.ExpandPath(path)
	if err != nil {
		return "", errors.Wrap(err, "invalid path")
	}

	fmt.Fprintf(f.out, "Using %s\n", expanded) //nolint:errcheck // best-effort echo

	return expanded, nil
}

// cancelled marks end of input as a cancellation. Invalid answers keep
// their own error.
func cancelled(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) || errors.Is(err, prompt.ErrEmptyInput) {
		return errors.Mark(err, ErrCancelled)
	}

	return err
}
