// Package fixers repairs what doctor checks report.
package fixers

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/internal/config"
	"github.com/smykla-skalski/anot/internal/doctor"
	"github.com/smykla-skalski/anot/internal/prompt"
	"github.com/smykla-skalski/anot/internal/xdg"
)

// PreferencesFixer rewrites the preferences file with defaults.
type PreferencesFixer struct {
	prompter prompt.Prompter
	store    *config.Store
}

// NewPreferencesFixer creates a new PreferencesFixer.
func NewPreferencesFixer(prompter prompt.Prompter, store *config.Store) *PreferencesFixer {
	return &PreferencesFixer{
		prompter: prompter,
		store:    store,
	}
}

// ID returns the fixer identifier.
func (*PreferencesFixer) ID() string {
	return doctor.FixResetPreferences
}

// Description returns a human-readable description.
func (*PreferencesFixer) Description() string {
	return "Rewrite the preferences file with default values"
}

// CanFix checks if this fixer can fix the given result.
func (f *PreferencesFixer) CanFix(result doctor.CheckResult) bool {
	return result.FixID == f.ID() && result.Status == doctor.StatusFail
}

// Fix rewrites the preferences file.
func (f *PreferencesFixer) Fix(_ context.Context, interactive bool) error {
	if interactive {
		msg := fmt.Sprintf("Overwrite %s with defaults?", xdg.CollapseHome(f.store.Path()))

		confirmed, err := f.prompter.Confirm(msg, true)
		if err != nil {
			return errors.Wrap(err, "failed to get confirmation")
		}

		if !confirmed {
			return nil
		}
	}

	if _, err := f.store.Reset(); err != nil {
		return errors.Wrap(err, "failed to reset preferences")
	}

	return nil
}
