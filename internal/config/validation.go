package config

import (
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/pkg/config"
)

// Validator validates preferences semantics.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateVersion checks the raw version value read from the file.
func (*Validator) ValidateVersion(present bool, raw any) error {
	if !present {
		return errors.WithHint(
			errors.Wrap(ErrConfig, "missing version"),
			"run `anot reset` to rewrite the preferences with defaults",
		)
	}

	version, ok := asInt(raw)
	if !ok {
		return errors.Wrapf(ErrConfig, "version must be an integer, got %v", raw)
	}

	if version != config.CurrentPreferencesVersion {
		return errors.WithHint(
			errors.Wrapf(
				ErrConfig,
				"unsupported version %d (expected %d)",
				version,
				config.CurrentPreferencesVersion,
			),
			"run `anot reset` to rewrite the preferences with defaults",
		)
	}

	return nil
}

// Validate checks a fully loaded Preferences value.
func (v *Validator) Validate(prefs *config.Preferences) error {
	if prefs == nil {
		return errors.WithMessage(ErrConfig, "preferences are nil")
	}

	return v.ValidateVersion(true, prefs.Version)
}

func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}

		return int(v), true
	default:
		return 0, false
	}
}
