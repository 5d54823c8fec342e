// Package parser decodes agent payloads into typed events.
//
// Parsing is pure: it never touches the filesystem or the network.
package parser

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"

	"github.com/smykla-skalski/anot/pkg/agent"
	"github.com/smykla-skalski/anot/pkg/event"
)

var (
	// ErrSchema is returned for input that is empty, not JSON, not an
	// object, or lacks a required field or has one of the wrong type.
	ErrSchema = errors.New("schema error")

	// ErrUnsupportedEventKind is returned for a well-formed payload whose
	// event kind anot does not know.
	ErrUnsupportedEventKind = errors.New("unsupported event kind")
)

// Parse decodes data according to the protocol the caller declared.
func Parse(data []byte, protocol agent.Protocol) (*event.AgentEvent, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.Wrap(ErrSchema, "empty input")
	}

	if trimmed[0] != '{' {
		return nil, errors.Wrap(ErrSchema, "payload must be a JSON object")
	}

	if !gjson.ValidBytes(trimmed) {
		return nil, errors.Wrap(ErrSchema, "invalid JSON")
	}

	doc := gjson.ParseBytes(trimmed)

	switch protocol {
	case agent.ProtocolHook:
		hook, err := parseHook(doc)
		if err != nil {
			return nil, err
		}

		return event.FromHook(hook), nil
	case agent.ProtocolNotify:
		notify, err := parseNotify(doc)
		if err != nil {
			return nil, err
		}

		return event.FromNotify(notify), nil
	default:
		return nil, errors.Newf("unknown protocol %d", protocol)
	}
}

// JSONParser parses a payload from a reader.
type JSONParser struct {
	reader io.Reader
}

// NewJSONParser creates a new JSONParser that reads from the given reader.
func NewJSONParser(reader io.Reader) *JSONParser {
	return &JSONParser{
		reader: reader,
	}
}

// Parse reads the whole input and decodes it.
func (p *JSONParser) Parse(protocol agent.Protocol) (*event.AgentEvent, error) {
	data, err := io.ReadAll(p.reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}

	return Parse(data, protocol)
}

// requiredString returns a field that must be present and a string.
func requiredString(doc gjson.Result, field string) (string, error) {
	v := doc.Get(field)
	if !v.Exists() {
		return "", missing(field)
	}

	if v.Type != gjson.String {
		return "", errors.Wrapf(ErrSchema, "field %q must be a string, got %s", field, v.Type)
	}

	return v.Str, nil
}

// optionalString returns a string field, or "" when it is absent or holds
// another type.
func optionalString(doc gjson.Result, field string) string {
	if v := doc.Get(field); v.Type == gjson.String {
		return v.Str
	}

	return ""
}

func missing(field string) error {
	return errors.Wrapf(ErrSchema, "missing required field %q", field)
}
