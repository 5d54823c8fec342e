// Package xdg provides centralized path management for anot.
// All user-level paths anot touches on disk are defined here.
// Agent settings locations live in internal/settings.
package xdg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	// configDirName is the directory under the platform config dir.
	configDirName = "agent_notifications"

	// cacheDirName is the directory under the platform cache dir.
	cacheDirName = "anot"

	// PreferencesFileName is the name of the preferences file.
	PreferencesFileName = "a-notifications.json"

	// LogFileName is the name of the log file.
	LogFileName = "anot.log"
)

func userHome() (string, error) {
	return os.UserHomeDir()
}

// --- base directories ---

// ConfigHome returns $XDG_CONFIG_HOME or the platform config directory
// (~/.config on Linux, ~/Library/Application Support on macOS).
func ConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}

	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}

	home, err := userHome()
	if err != nil {
		return filepath.Join("~", ".config")
	}

	return filepath.Join(home, ".config")
}

// CacheHome returns $XDG_CACHE_HOME or the platform cache directory.
func CacheHome() string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}

	if dir, err := os.UserCacheDir(); err == nil {
		return dir
	}

	home, err := userHome()
	if err != nil {
		return filepath.Join("~", ".cache")
	}

	return filepath.Join(home, ".cache")
}

// --- anot-specific directories ---

// ConfigDir returns ConfigHome()/agent_notifications.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), configDirName)
}

// LogsDir returns ConfigDir()/logs.
func LogsDir() string {
	return filepath.Join(ConfigDir(), "logs")
}

// IconsDir returns CacheHome()/anot/icons.
func IconsDir() string {
	return filepath.Join(CacheHome(), cacheDirName, "icons")
}

// CrashDumpDir returns CacheHome()/anot/crashes.
func CrashDumpDir() string {
	return filepath.Join(CacheHome(), cacheDirName, "crashes")
}

// --- specific file paths ---

// PreferencesFile returns ConfigDir()/a-notifications.json.
func PreferencesFile() string {
	return filepath.Join(ConfigDir(), PreferencesFileName)
}

// LogFile returns the log file path.
// Respects ANOT_LOG_FILE env var, otherwise LogsDir()/anot.log.
func LogFile() string {
	if v := os.Getenv("ANOT_LOG_FILE"); v != "" {
		return v
	}

	return filepath.Join(LogsDir(), LogFileName)
}

// --- utility functions ---

// ExpandPath resolves ~ prefix to the user's home directory.
// Returns the path unchanged if it doesn't start with ~.
// Returns error for invalid tilde usage like "~foo".
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := userHome()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}

	switch {
	case path == "~":
		return home, nil
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:]), nil
	default:
		return "", errors.Newf("paths starting with ~ must be either ~ or ~/subdir, got %q", path)
	}
}

// ExpandPathSilent resolves ~ prefix, returning the original path on error.
func ExpandPathSilent(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}

	return expanded
}

// CollapseHome replaces the home directory prefix with ~ for display.
func CollapseHome(path string) string {
	home, err := userHome()
	if err != nil || home == "" {
		return path
	}

	if path == home {
		return "~"
	}

	if rel, ok := strings.CutPrefix(path, home+string(filepath.Separator)); ok {
		return filepath.Join("~", rel)
	}

	return path
}

// EnsureDir creates a directory with 0700 permissions if it doesn't exist.
func EnsureDir(path string) error {
	const dirMode = 0o700

	if err := os.MkdirAll(path, dirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", path)
	}

	return nil
}
