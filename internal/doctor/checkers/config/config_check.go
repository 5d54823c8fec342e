// Package config provides checkers for the preferences file.
package config

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	internalconfig "github.com/smykla-skalski/anot/internal/config"
	"github.com/smykla-skalski/anot/internal/doctor"
	"github.com/smykla-skalski/anot/internal/xdg"
)

const checkName = "Preferences file"

// PreferencesChecker loads the preferences file without bootstrapping it.
type PreferencesChecker struct {
	loader *internalconfig.KoanfLoader
}

// NewPreferencesChecker creates a checker for the preferences file at path.
func NewPreferencesChecker(path string) *PreferencesChecker {
	return &PreferencesChecker{loader: internalconfig.NewKoanfLoader(path)}
}

// Name returns the name of the check
func (*PreferencesChecker) Name() string {
	return checkName
}

// Category returns the category of the check
func (*PreferencesChecker) Category() doctor.Category {
	return doctor.CategoryConfig
}

// Check loads and validates the preferences file
func (c *PreferencesChecker) Check(_ context.Context) doctor.CheckResult {
	path := xdg.CollapseHome(c.loader.Path())

	prefs, err := c.loader.Load()
	switch {
	case errors.Is(err, internalconfig.ErrPreferencesNotFound):
		return doctor.FailWarning(checkName, "Not found at "+path).
			WithDetails("Defaults are written on the first notification").
			WithFixID(doctor.FixResetPreferences)
	case err != nil:
		result := doctor.FailError(checkName, err.Error()).
			WithFixID(doctor.FixResetPreferences)

		for _, hint := range errors.GetAllHints(err) {
			result = result.WithDetails(hint)
		}

		return result
	}

	return doctor.Pass(checkName, path).WithDetails(
		fmt.Sprintf("version %d", prefs.Version),
		fmt.Sprintf("claude.pretend = %t", prefs.Claude.Pretend),
		fmt.Sprintf("codex.pretend = %t", prefs.Codex.Pretend),
	)
}
