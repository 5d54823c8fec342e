// Package schema generates the JSON Schema of the anot preferences file, so
// editors can validate a-notifications.json.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"
	"github.com/tidwall/pretty"

	"github.com/smykla-skalski/anot/pkg/config"
)

const (
	schemaURI   = "https://json-schema.org/draft/2020-12/schema"
	title       = "anot preferences"
	description = "Per-agent notification preferences read by anot on every hook run"
)

var indentOptions = &pretty.Options{Width: 80, Prefix: "", Indent: "  "}

// Filename returns the schema file name, versioned like the preferences.
func Filename() string {
	return fmt.Sprintf("a-notifications.v%d.schema.json", config.CurrentPreferencesVersion)
}

// Generate reflects config.Preferences. Unknown keys are rejected, matching
// the strict preferences loader.
func Generate() *jsonschema.Schema {
	r := &jsonschema.Reflector{ExpandedStruct: true}

	s := r.Reflect(&config.Preferences{})
	s.Version = schemaURI
	s.Title = title
	s.Description = description

	return s
}

// GenerateJSON renders Generate, newline-terminated, indented when indent
// is set.
func GenerateJSON(indent bool) ([]byte, error) {
	data, err := json.Marshal(Generate())
	if err != nil {
		return nil, errors.Wrap(err, "marshaling schema to JSON")
	}

	if indent {
		// pretty already terminates its output with a newline.
		return pretty.PrettyOptions(data, indentOptions), nil
	}

	return append(data, '\n'), nil
}
