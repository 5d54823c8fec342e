package config

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/internal/atomicfile"
	"github.com/smykla-skalski/anot/pkg/config"
)

const (
	// ConfigFileMode is the file mode for the preferences file (user read/write only).
	ConfigFileMode = 0o600
)

// Writer persists preferences as indented JSON.
type Writer struct {
	path string
}

// NewWriter creates a Writer for the preferences file at path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Write validates and atomically writes prefs.
func (w *Writer) Write(prefs *config.Preferences) error {
	if err := NewValidator().Validate(prefs); err != nil {
		return err
	}

	data, err := Marshal(prefs)
	if err != nil {
		return err
	}

	if _, err := atomicfile.Write(w.path, data, atomicfile.Options{Perm: ConfigFileMode}); err != nil {
		return errors.Wrapf(err, "failed to write preferences file %s", w.path)
	}

	return nil
}

// Reset overwrites the preferences file with defaults.
func (w *Writer) Reset() (*config.Preferences, error) {
	defaults := config.DefaultPreferences()

	if err := w.Write(defaults); err != nil {
		return nil, err
	}

	return defaults, nil
}

// Marshal renders prefs the way they are stored on disk.
func Marshal(prefs *config.Preferences) ([]byte, error) {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode preferences")
	}

	return append(data, '\n'), nil
}
