package config

import (
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/pkg/config"
	"github.com/smykla-skalski/anot/pkg/logger"
)

// Store is the preferences entry point used by commands: it loads, writes
// defaults on first run, and resets on request.
type Store struct {
	loader *KoanfLoader
	writer *Writer
	log    logger.Logger
}

// NewStore creates a Store for the preferences file at path.
func NewStore(path string, log logger.Logger) *Store {
	return &Store{
		loader: NewKoanfLoader(path),
		writer: NewWriter(path),
		log:    log,
	}
}

// Path returns the preferences file path.
func (s *Store) Path() string {
	return s.loader.Path()
}

// Load returns the current preferences, writing defaults when the file
// does not exist yet.
func (s *Store) Load() (*config.Preferences, error) {
	prefs, err := s.loader.Load()
	if err == nil {
		return prefs, nil
	}

	if !errors.Is(err, ErrPreferencesNotFound) {
		return nil, err
	}

	s.log.Info("preferences file missing, writing defaults", "path", s.Path())

	if _, err := s.writer.Reset(); err != nil {
		return nil, err
	}

	return s.loader.Load()
}

// Reset rewrites the preferences file with defaults.
func (s *Store) Reset() (*config.Preferences, error) {
	s.log.Info("resetting preferences", "path", s.Path())

	return s.writer.Reset()
}
