package config

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
)

// decoderConfig returns the mapstructure config used to unmarshal merged
// preferences. koanf sets Result.
func decoderConfig() *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(stringToBoolHookFunc()),
		WeaklyTypedInput: true,
	}
}

// stringToBoolHookFunc parses booleans coming from environment variables.
// Values strconv.ParseBool rejects are errors instead of false.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		s, ok := data.(string)
		if !ok || t.Kind() != reflect.Bool {
			return data, nil
		}

		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return nil, errors.Newf("invalid boolean %q", s)
		}

		return b, nil
	}
}
