package parser

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"

	"github.com/smykla-skalski/anot/pkg/event"
)

// hookRequirements lists the string fields each kind needs beyond session_id.
var hookRequirements = map[event.HookEventName][]string{
	event.HookEventPreToolUse:       {"tool_name"},
	event.HookEventPostToolUse:      {"tool_name"},
	event.HookEventNotification:     {"message"},
	event.HookEventUserPromptSubmit: {"prompt"},
}

// parseHook reads the kind before anything else, so an unknown kind is
// reported as such whatever the rest of the payload holds. Only the fields a
// kind requires are type-checked; optional fields of another type read as
// empty.
func parseHook(doc gjson.Result) (*event.HookEvent, error) {
	name, err := requiredString(doc, "hook_event_name")
	if err != nil {
		return nil, err
	}

	kind, err := hookEventName(name)
	if err != nil {
		return nil, err
	}

	sessionID, err := requiredString(doc, "session_id")
	if err != nil {
		return nil, err
	}

	for _, field := range hookRequirements[kind] {
		if _, err := requiredString(doc, field); err != nil {
			return nil, errors.Wrapf(err, "%s event", kind)
		}
	}

	return &event.HookEvent{
		EventName:            kind,
		SessionID:            sessionID,
		TranscriptPath:       optionalString(doc, "transcript_path"),
		CWD:                  optionalString(doc, "cwd"),
		PermissionMode:       optionalString(doc, "permission_mode"),
		ToolName:             optionalString(doc, "tool_name"),
		ToolInput:            optionalRaw(doc, "tool_input"),
		ToolResponse:         optionalRaw(doc, "tool_response"),
		Message:              optionalString(doc, "message"),
		Title:                optionalString(doc, "title"),
		NotificationType:     optionalString(doc, "notification_type"),
		Prompt:               optionalString(doc, "prompt"),
		StopHookActive:       doc.Get("stop_hook_active").Type == gjson.True,
		LastAssistantMessage: optionalString(doc, "last_assistant_message"),
		Trigger:              optionalString(doc, "trigger"),
		CustomInstructions:   optionalString(doc, "custom_instructions"),
		Source:               optionalString(doc, "source"),
		Reason:               optionalString(doc, "reason"),
	}, nil
}

// hookEventName matches the exact wire spelling of a kind.
func hookEventName(name string) (event.HookEventName, error) {
	kind, err := event.HookEventNameString(name)
	if err != nil || kind.String() != name {
		return 0, errors.Wrapf(ErrUnsupportedEventKind, "hook_event_name %q", name)
	}

	return kind, nil
}

func optionalRaw(doc gjson.Result, field string) json.RawMessage {
	v := doc.Get(field)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}

	return json.RawMessage(v.Raw)
}
