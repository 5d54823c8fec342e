// Package tui provides terminal user interface components.
package tui

import (
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/internal/settings"
	"github.com/smykla-skalski/anot/pkg/event"
)

// ErrCancelled is returned when the user aborts a selection.
var ErrCancelled = errors.New("cancelled")

// customPathLabel is the last entry of every settings file list.
const customPathLabel = "Custom path…"

// UI defines the interface for terminal user interface operations.
// This interface abstracts the TUI implementation to allow for both
// interactive (huh) and fallback (simple prompt) implementations.
type UI interface {
	// ChooseClaudeSettings picks the Claude Code settings file to edit.
	ChooseClaudeSettings(locations []settings.Location) (string, error)

	// ChooseCodexConfig picks the Codex config file to edit.
	ChooseCodexConfig(locations []settings.Location) (string, error)

	// ConfirmCreate asks whether a missing settings file may be created.
	ConfirmCreate(path string) (bool, error)

	// ChooseHookEvents picks the hook events anot should be registered for.
	// current is preselected.
	ChooseHookEvents(all, current []event.HookEventName) ([]event.HookEventName, error)

	// ChooseNotifyAction decides what to do with a notify command anot does
	// not own.
	ChooseNotifyAction(current *settings.NotifyState) (settings.OverridePolicy, error)

	// ConfirmNotify asks whether Codex should notify through anot.
	ConfirmNotify(enabled bool) (bool, error)

	// IsInteractive returns true if running in an interactive terminal.
	IsInteractive() bool
}

// notifyActions are the choices offered for a foreign notify command.
var notifyActions = []struct {
	policy settings.OverridePolicy
	label  string
}{
	{settings.PolicyOverride, "Replace it with anot"},
	{settings.PolicyKeep, "Keep it and leave Codex unchanged"},
	{settings.PolicyRemove, "Remove it"},
}
