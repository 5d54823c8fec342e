package parser

import (
	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"

	"github.com/smykla-skalski/anot/pkg/event"
)

// parseNotify decodes a Codex notify payload. Codex writes kebab-case keys;
// snake_case spellings are accepted as aliases.
func parseNotify(doc gjson.Result) (*event.NotifyEvent, error) {
	name, err := requiredString(doc, "type")
	if err != nil {
		return nil, err
	}

	typ, err := notifyType(name)
	if err != nil {
		return nil, err
	}

	return &event.NotifyEvent{
		Type:   typ,
		TurnID: firstNonEmpty(optionalString(doc, "turn-id"), optionalString(doc, "turn_id")),
		InputMessages: firstNonNil(
			stringArray(doc, "input-messages"),
			stringArray(doc, "input_messages"),
		),
		LastAssistantMessage: firstNonEmpty(
			optionalString(doc, "last-assistant-message"),
			optionalString(doc, "last_assistant_message"),
		),
	}, nil
}

func notifyType(name string) (event.NotifyType, error) {
	for _, t := range event.NotifyTypes() {
		if string(t) == name {
			return t, nil
		}
	}

	return "", errors.Wrapf(ErrUnsupportedEventKind, "notify type %q", name)
}

// stringArray returns the string items of an array field, nil when the
// field is absent or not an array.
func stringArray(doc gjson.Result, field string) []string {
	v := doc.Get(field)
	if !v.IsArray() {
		return nil
	}

	items := []string{}

	for _, item := range v.Array() {
		if item.Type == gjson.String {
			items = append(items, item.Str)
		}
	}

	return items
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func firstNonNil(values ...[]string) []string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}

	return nil
}
