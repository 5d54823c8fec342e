// Package event defines the typed agent events anot turns into notifications.
package event

import (
	"encoding/json"

	"github.com/smykla-skalski/anot/pkg/agent"
)

//go:generate enumer -type=HookEventName -trimprefix=HookEvent -json -text

// HookEventName is the closed set of Claude Code hook event kinds.
type HookEventName int

const (
	// HookEventPreToolUse fires before a tool runs.
	HookEventPreToolUse HookEventName = iota

	// HookEventPostToolUse fires after a tool completes.
	HookEventPostToolUse

	// HookEventNotification fires when the agent needs the user's attention.
	HookEventNotification

	// HookEventUserPromptSubmit fires when the user submits a prompt.
	HookEventUserPromptSubmit

	// HookEventStop fires when the main agent finishes responding.
	HookEventStop

	// HookEventSubagentStop fires when a subagent finishes.
	HookEventSubagentStop

	// HookEventPreCompact fires before context compaction.
	HookEventPreCompact

	// HookEventSessionStart fires when a session starts or resumes.
	HookEventSessionStart

	// HookEventSessionEnd fires when a session ends.
	HookEventSessionEnd
)

// HasMatcher reports whether settings entries for this kind carry a tool
// matcher.
func (i HookEventName) HasMatcher() bool {
	return i == HookEventPreToolUse || i == HookEventPostToolUse
}

// NotifyType is the closed set of Codex notify payload types.
type NotifyType string

// NotifyAgentTurnComplete is sent when Codex finishes a turn.
const NotifyAgentTurnComplete NotifyType = "agent-turn-complete"

// NotifyTypes returns every known notify type.
func NotifyTypes() []NotifyType {
	return []NotifyType{NotifyAgentTurnComplete}
}

// HookEvent is a decoded Claude Code hook payload.
type HookEvent struct {
	// EventName is the kind of lifecycle event.
	EventName HookEventName

	// SessionID identifies the agent session. Always present.
	SessionID string

	TranscriptPath string
	CWD            string
	PermissionMode string

	// ToolName is set for PreToolUse and PostToolUse.
	ToolName string

	// ToolInput and ToolResponse are free-form tool payloads.
	ToolInput    json.RawMessage
	ToolResponse json.RawMessage

	// Message and Title are set for Notification.
	Message          string
	Title            string
	NotificationType string

	// Prompt is set for UserPromptSubmit.
	Prompt string

	// StopHookActive and LastAssistantMessage are set for Stop and SubagentStop.
	StopHookActive       bool
	LastAssistantMessage string

	// Trigger and CustomInstructions are set for PreCompact.
	Trigger            string
	CustomInstructions string

	// Source is set for SessionStart (startup, resume, clear, compact).
	Source string

	// Reason is set for SessionEnd (clear, logout, prompt_input_exit, other).
	Reason string
}

// Matcher returns the value settings matchers are compared against: the
// tool name for tool events, empty otherwise.
func (h *HookEvent) Matcher() string {
	if h.EventName.HasMatcher() {
		return h.ToolName
	}

	return ""
}

// NotifyEvent is a decoded Codex notify payload.
type NotifyEvent struct {
	Type                 NotifyType
	TurnID               string
	InputMessages        []string
	LastAssistantMessage string
}

// AgentEvent is a tagged union over the agent protocols. Exactly one of
// Hook and Notify is non-nil, matching Protocol.
type AgentEvent struct {
	Protocol agent.Protocol
	Hook     *HookEvent
	Notify   *NotifyEvent
}

// FromHook wraps a hook event.
func FromHook(h *HookEvent) *AgentEvent {
	return &AgentEvent{Protocol: agent.ProtocolHook, Hook: h}
}

// FromNotify wraps a notify event.
func FromNotify(n *NotifyEvent) *AgentEvent {
	return &AgentEvent{Protocol: agent.ProtocolNotify, Notify: n}
}

// Agent returns the agent that emitted the event.
func (e *AgentEvent) Agent() agent.Agent {
	a, _ := agent.ForProtocol(e.Protocol)

	return a
}

// Kind returns the event kind name for logging.
func (e *AgentEvent) Kind() string {
	switch {
	case e.Hook != nil:
		return e.Hook.EventName.String()
	case e.Notify != nil:
		return string(e.Notify.Type)
	default:
		return "unknown"
	}
}

// SessionID returns the session or turn identifier, when known.
func (e *AgentEvent) SessionID() string {
	switch {
	case e.Hook != nil:
		return e.Hook.SessionID
	case e.Notify != nil:
		return e.Notify.TurnID
	default:
		return ""
	}
}
