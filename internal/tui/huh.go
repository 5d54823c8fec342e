package tui

import (
	"fmt"
	"slices"

	"charm.land/huh/v2"
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/internal/settings"
	"github.com/smykla-skalski/anot/internal/xdg"
	"github.com/smykla-skalski/anot/pkg/event"
)

// HuhUI implements UI using huh forms.
type HuhUI struct{}

// NewHuhUI creates a new HuhUI instance.
func NewHuhUI() *HuhUI {
	return &HuhUI{}
}

// IsInteractive returns true as HuhUI is for interactive terminals.
func (*HuhUI) IsInteractive() bool {
	return true
}

// ChooseClaudeSettings picks a Claude Code settings file.
func (h *HuhUI) ChooseClaudeSettings(locations []settings.Location) (string, error) {
	return h.choosePath("Claude Code settings file", locations)
}

// ChooseCodexConfig picks a Codex config file.
func (h *HuhUI) ChooseCodexConfig(locations []settings.Location) (string, error) {
	return h.choosePath("Codex config file", locations)
}

// ConfirmCreate asks whether path may be created.
func (*HuhUI) ConfirmCreate(path string) (bool, error) {
	create := true

	err := run(huh.NewConfirm().
		Title(fmt.Sprintf("%s does not exist. Create it?", xdg.CollapseHome(path))).
		Affirmative("Create").
		Negative("Cancel").
		Value(&create))

	return create, err
}

// ChooseHookEvents picks hook events with current preselected.
func (*HuhUI) ChooseHookEvents(all, current []event.HookEventName) ([]event.HookEventName, error) {
	options := make([]huh.Option[event.HookEventName], 0, len(all))
	for _, kind := range all {
		options = append(options, huh.NewOption(kind.String(), kind))
	}

	selected := slices.Clone(current)

	err := run(huh.NewMultiSelect[event.HookEventName]().
		Title("Notify on these Claude Code events").
		Description("Unselected events are removed from the settings file.").
		Options(options...).
		Value(&selected))
	if err != nil {
		return nil, err
	}

	return sortEvents(selected), nil
}

// ChooseNotifyAction picks what to do with a foreign notify command.
func (*HuhUI) ChooseNotifyAction(current *settings.NotifyState) (settings.OverridePolicy, error) {
	options := make([]huh.Option[settings.OverridePolicy], 0, len(notifyActions))
	for _, action := range notifyActions {
		options = append(options, huh.NewOption(action.label, action.policy))
	}

	policy := settings.PolicyKeep

	err := run(huh.NewSelect[settings.OverridePolicy]().
		Title("Codex already runs another notify command").
		Description(fmt.Sprintf("notify = %q", current.Argv)).
		Options(options...).
		Value(&policy))
	if err != nil {
		return settings.PolicyUnset, err
	}

	return policy, nil
}

// ConfirmNotify asks whether Codex should notify through anot.
func (*HuhUI) ConfirmNotify(enabled bool) (bool, error) {
	want := true

	title := "Send Codex turn notifications through anot?"
	if enabled {
		title = "Codex already notifies through anot. Keep it?"
	}

	err := run(huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&want))

	return want, err
}

func (*HuhUI) choosePath(title string, locations []settings.Location) (string, error) {
	const custom = ""

	options := make([]huh.Option[string], 0, len(locations)+1)
	for _, loc := range locations {
		options = append(options, huh.NewOption(loc.Describe(), loc.Path))
	}

	options = append(options, huh.NewOption(customPathLabel, custom))

	choice := defaultPath(locations)

	if err := run(huh.NewSelect[string]().Title(title).Options(options...).Value(&choice)); err != nil {
		return "", err
	}

	if choice != custom {
		return choice, nil
	}

	var path string

	err := run(huh.NewInput().
		Title("Path").
		Validate(func(s string) error {
			if s == "" {
				return errors.New("path must not be empty")
			}

			_, err := xdg.ExpandPath(s)

			return err
		}).
		Value(&path))
	if err != nil {
		return "", err
	}

	return xdg.ExpandPath(path)
}

// run shows a single-field form.
func run(field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return errors.WithStack(ErrCancelled)
	}

	return err
}
