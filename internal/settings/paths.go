package settings

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/smykla-skalski/anot/internal/xdg"
)

// Location is a candidate settings file.
type Location struct {
	// Scope names the location (user, project, local, codex-home, ...).
	Scope string

	// Path is the file path.
	Path string

	// Exists is true when the file is present.
	Exists bool

	// ModTime is the last modification time when Exists is true.
	ModTime time.Time
}

// Describe renders the location for selection lists.
func (l Location) Describe() string {
	display := xdg.CollapseHome(l.Path)

	if !l.Exists {
		return display + " (" + l.Scope + ", will be created)"
	}

	return display + " (" + l.Scope + ", modified " + humanize.Time(l.ModTime) + ")"
}

// NewLocation stats path and returns its Location.
func NewLocation(scope, path string) Location {
	loc := Location{Scope: scope, Path: path}

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		loc.Exists = true
		loc.ModTime = info.ModTime()
	}

	return loc
}

// ClaudeUserSettingsPath returns ~/.claude/settings.json.
func ClaudeUserSettingsPath() string {
	return filepath.Join(xdg.ExpandPathSilent("~"), ".claude", "settings.json")
}

// ClaudeProjectSettingsPath returns .claude/settings.json under dir.
func ClaudeProjectSettingsPath(dir string) string {
	return filepath.Join(dir, ".claude", "settings.json")
}

// ClaudeLocalSettingsPath returns .claude/settings.local.json under dir.
func ClaudeLocalSettingsPath(dir string) string {
	return filepath.Join(dir, ".claude", "settings.local.json")
}

// ClaudeLocations lists the Claude Code settings files in precedence order
// for the project rooted at dir.
func ClaudeLocations(dir string) []Location {
	return []Location{
		NewLocation("user", ClaudeUserSettingsPath()),
		NewLocation("project", ClaudeProjectSettingsPath(dir)),
		NewLocation("local", ClaudeLocalSettingsPath(dir)),
	}
}

// CodexConfigPath returns $CODEX_HOME/config.toml, or ~/.codex/config.toml.
func CodexConfigPath() string {
	if home := os.Getenv("CODEX_HOME"); home != "" {
		return filepath.Join(xdg.ExpandPathSilent(home), "config.toml")
	}

	return codexDefaultPath()
}

func codexDefaultPath() string {
	return filepath.Join(xdg.ExpandPathSilent("~"), ".codex", "config.toml")
}

// CodexLocations lists candidate Codex config files, the active one first.
func CodexLocations() []Location {
	active := CodexConfigPath()
	locations := []Location{NewLocation("active", active)}

	if def := codexDefaultPath(); def != active {
		locations = append(locations, NewLocation("default", def))
	}

	return locations
}
