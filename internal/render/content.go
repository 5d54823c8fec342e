package render

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-runewidth"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/smykla-skalski/anot/internal/parser"
	"github.com/smykla-skalski/anot/pkg/agent"
	"github.com/smykla-skalski/anot/pkg/event"
)

const (
	// MaxBodyWidth is the display width bodies are truncated to.
	MaxBodyWidth = 160

	// MaxSummaryWidth is the display width tool summaries are truncated to.
	MaxSummaryWidth = 80

	ellipsis = "…"
)

// Fallback bodies for events without usable text.
const (
	stopFallback         = "The agent has stopped responding."
	subagentStopFallback = "A subagent has stopped responding."
	turnCompleteFallback = "Turn complete"
	notificationFallback = "The agent needs your attention."
	promptFallback       = "Prompt submitted"
	unknownTool          = "an unknown tool"
)

var (
	toolInputFields    = []string{"command", "file_path", "path", "pattern", "url", "query", "description", "prompt"}
	toolResponseFields = []string{"stdout", "output", "content", "result", "filePath"}

	sessionEndReasons = map[string]string{
		"clear":             "cleared with /clear",
		"logout":            "logged out",
		"prompt_input_exit": "exited at the prompt",
		"other":             "ended",
	}
)

// Content returns the title and body of ev. It is deterministic and never
// returns an empty title or body.
func Content(ev *event.AgentEvent) (title, body string, err error) {
	info, ok := agent.Lookup(ev.Agent())
	if !ok {
		return "", "", errors.Wrapf(parser.ErrUnsupportedEventKind, "no agent for protocol %s", ev.Protocol)
	}

	switch {
	case ev.Hook != nil:
		return hookContent(info.Label, ev.Hook)
	case ev.Notify != nil:
		return notifyContent(info.Label, ev.Notify)
	default:
		return "", "", errors.Wrap(parser.ErrUnsupportedEventKind, "empty event")
	}
}

func hookContent(label string, h *event.HookEvent) (string, string, error) {
	switch h.EventName {
	case event.HookEventPreToolUse:
		return label + " is using a tool", toolBody(h.ToolName, summarize(h.ToolInput, toolInputFields)), nil
	case event.HookEventPostToolUse:
		summary := summarize(h.ToolResponse, toolResponseFields)
		if summary == "" {
			summary = summarize(h.ToolInput, toolInputFields)
		}

		return label + " is using a tool", toolBody(h.ToolName, summary), nil
	case event.HookEventNotification:
		return label, orDefault(h.Message, notificationFallback), nil
	case event.HookEventUserPromptSubmit:
		return label + " received a prompt", orDefault(truncate(fold(h.Prompt), MaxBodyWidth), promptFallback), nil
	case event.HookEventStop:
		return label + " finished", orDefault(truncate(fold(h.LastAssistantMessage), MaxBodyWidth), stopFallback), nil
	case event.HookEventSubagentStop:
		return label + " finished", orDefault(truncate(fold(h.LastAssistantMessage), MaxBodyWidth), subagentStopFallback), nil
	case event.HookEventSessionStart:
		return label + " started a session", sessionBody(h.SessionID, h.Source), nil
	case event.HookEventSessionEnd:
		return label + " ended a session", sessionBody(h.SessionID, reasonPhrase(h.Reason)), nil
	case event.HookEventPreCompact:
		return label + " is compacting", sessionBody(h.SessionID, h.Trigger), nil
	default:
		return "", "", errors.Wrapf(parser.ErrUnsupportedEventKind, "hook event %s", h.EventName)
	}
}

func notifyContent(label string, n *event.NotifyEvent) (string, string, error) {
	if n.Type != event.NotifyAgentTurnComplete {
		return "", "", errors.Wrapf(parser.ErrUnsupportedEventKind, "notify type %q", n.Type)
	}

	body := fold(n.LastAssistantMessage)
	if body == "" {
		body = fold(strings.Join(n.InputMessages, " "))
	}

	return label + " finished a turn", orDefault(truncate(body, MaxBodyWidth), turnCompleteFallback), nil
}

func toolBody(tool, summary string) string {
	tool = orDefault(fold(tool), unknownTool)

	if summary == "" {
		return truncate(tool, MaxBodyWidth)
	}

	return truncate(tool+": "+truncate(summary, MaxSummaryWidth), MaxBodyWidth)
}

func sessionBody(id, detail string) string {
	body := "Session " + id
	if detail != "" {
		body += " (" + detail + ")"
	}

	return truncate(body, MaxBodyWidth)
}

func reasonPhrase(reason string) string {
	if phrase, ok := sessionEndReasons[reason]; ok {
		return phrase
	}

	return reason
}

// summarize picks the most descriptive field of a tool payload, falling
// back to the compact JSON.
func summarize(raw []byte, fields []string) string {
	if len(raw) == 0 {
		return ""
	}

	doc := gjson.ParseBytes(raw)

	switch {
	case doc.Type == gjson.Null:
		return ""
	case doc.Type == gjson.String:
		return fold(doc.Str)
	case doc.IsObject():
		for _, field := range fields {
			if v := doc.Get(field); v.Exists() && v.Type != gjson.Null {
				if s := fold(v.String()); s != "" {
					return s
				}
			}
		}
	}

	return fold(string(pretty.Ugly(raw)))
}

// fold collapses runs of whitespace, newlines included, into single spaces.
func fold(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, ellipsis)
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}

	return s
}
