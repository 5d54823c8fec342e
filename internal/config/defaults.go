// Package config loads, validates, and persists anot preferences.
package config

import (
	"github.com/smykla-skalski/anot/pkg/config"
)

// defaultsToMap returns the default preferences as a koanf confmap.
func defaultsToMap() map[string]any {
	defaults := config.DefaultPreferences()

	return map[string]any{
		"version":        defaults.Version,
		"claude.pretend": defaults.Claude.Pretend,
		"codex.pretend":  defaults.Codex.Pretend,
	}
}
