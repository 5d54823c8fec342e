package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	jsonparser "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-skalski/anot/pkg/config"
)

const envPrefix = "ANOT_"

var (
	// ErrConfig is returned when the preferences file is unreadable,
	// malformed, or carries an unsupported version.
	ErrConfig = errors.New("invalid preferences")

	// ErrPreferencesNotFound is returned when the preferences file does not exist.
	ErrPreferencesNotFound = errors.New("preferences file not found")
)

// KoanfLoader loads preferences from multiple sources using koanf.
// Precedence order (highest to lowest):
// 1. Environment Variables (ANOT_CLAUDE_PRETEND, ANOT_CODEX_PRETEND)
// 2. Preferences file
// 3. Defaults
type KoanfLoader struct {
	k             *koanf.Koanf
	path          string
	unmarshalConf koanf.UnmarshalConf
}

// NewKoanfLoader creates a KoanfLoader reading the preferences file at path.
func NewKoanfLoader(path string) *KoanfLoader {
	return &KoanfLoader{
		k:    koanf.New("."),
		path: path,
		unmarshalConf: koanf.UnmarshalConf{
			Tag:       "koanf",
			FlatPaths: false,
		},
	}
}

// Path returns the preferences file path.
func (l *KoanfLoader) Path() string {
	return l.path
}

// Load reads preferences. A missing file yields ErrPreferencesNotFound so
// the caller can decide whether to bootstrap it.
func (l *KoanfLoader) Load() (*config.Preferences, error) {
	l.k = koanf.New(".")

	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	fileK, err := l.loadFile()
	if err != nil {
		return nil, err
	}

	// The version gate applies to the file alone so that defaults can never
	// paper over a missing or foreign version.
	if err := NewValidator().ValidateVersion(fileK.Exists("version"), fileK.Get("version")); err != nil {
		return nil, errors.Wrapf(err, "preferences file %s", l.path)
	}

	if err := l.k.Merge(fileK); err != nil {
		return nil, errors.Wrap(err, "failed to merge preferences file")
	}

	envOpt := env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	var prefs config.Preferences

	conf := l.unmarshalConf
	conf.DecoderConfig = decoderConfig()

	if err := l.k.UnmarshalWithConf("", &prefs, conf); err != nil {
		return nil, errors.Wrapf(ErrConfig, "cannot decode preferences: %v", err)
	}

	return &prefs, nil
}

func (l *KoanfLoader) loadFile() (*koanf.Koanf, error) {
	info, err := os.Stat(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrPreferencesNotFound, "%s", l.path)
		}

		return nil, errors.WithSecondaryError(errors.Wrapf(ErrConfig, "cannot stat %s", l.path), err)
	}

	if info.IsDir() {
		return nil, errors.Wrapf(ErrConfig, "%s is a directory", l.path)
	}

	fileK := koanf.New(".")
	if err := fileK.Load(file.Provider(l.path), jsonparser.Parser()); err != nil {
		return nil, errors.WithSecondaryError(
			errors.Wrapf(ErrConfig, "malformed preferences file %s", l.path),
			err,
		)
	}

	return fileK, nil
}

// envTransform maps environment variable names to preference paths.
// ANOT_CLAUDE_PRETEND -> claude.pretend
// Empty values are skipped.
func envTransform(key, value string) (string, any) {
	if value == "" {
		return "", nil
	}

	key = strings.TrimPrefix(key, envPrefix)
	key = strings.ToLower(key)
	key = strings.Replace(key, "_", ".", 1)

	return key, value
}
