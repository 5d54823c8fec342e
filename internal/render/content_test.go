package render_test

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-runewidth"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/anot/internal/parser"
	"github.com/smykla-skalski/anot/internal/render"
	"github.com/smykla-skalski/anot/pkg/event"
)

func hook(h event.HookEvent) *event.AgentEvent {
	if h.SessionID == "" {
		h.SessionID = "s1"
	}

	return event.FromHook(&h)
}

var _ = Describe("Content", func() {
	DescribeTable("hook events",
		func(h event.HookEvent, wantTitle, wantBody string) {
			title, body, err := render.Content(hook(h))
			Expect(err).NotTo(HaveOccurred())
			Expect(title).To(Equal(wantTitle))
			Expect(body).To(Equal(wantBody))
		},
		Entry("PreToolUse with a command",
			event.HookEvent{
				EventName: event.HookEventPreToolUse,
				ToolName:  "Bash",
				ToolInput: json.RawMessage(`{"command":"go test ./...","description":"Run tests"}`),
			},
			"Claude Code is using a tool", "Bash: go test ./..."),
		Entry("PreToolUse without input",
			event.HookEvent{EventName: event.HookEventPreToolUse, ToolName: "Task"},
			"Claude Code is using a tool", "Task"),
		Entry("PreToolUse with an empty tool name",
			event.HookEvent{EventName: event.HookEventPreToolUse, ToolName: ""},
			"Claude Code is using a tool", "an unknown tool"),
		Entry("PostToolUse with a blank tool name",
			event.HookEvent{
				EventName: event.HookEventPostToolUse,
				ToolName:  "  ",
				ToolInput: json.RawMessage(`{"command":"ls"}`),
			},
			"Claude Code is using a tool", "an unknown tool: ls"),
		Entry("PreToolUse with an unknown input shape",
			event.HookEvent{
				EventName: event.HookEventPreToolUse,
				ToolName:  "mcp__x",
				ToolInput: json.RawMessage(`{ "a": 1,  "b": [true] }`),
			},
			"Claude Code is using a tool", `mcp__x: {"a":1,"b":[true]}`),
		Entry("PostToolUse prefers the response",
			event.HookEvent{
				EventName:    event.HookEventPostToolUse,
				ToolName:     "Bash",
				ToolInput:    json.RawMessage(`{"command":"ls"}`),
				ToolResponse: json.RawMessage(`{"stdout":"a.go\nb.go\n","stderr":""}`),
			},
			"Claude Code is using a tool", "Bash: a.go b.go"),
		Entry("PostToolUse falls back to the input",
			event.HookEvent{
				EventName:    event.HookEventPostToolUse,
				ToolName:     "Write",
				ToolInput:    json.RawMessage(`{"file_path":"/tmp/x.go"}`),
				ToolResponse: json.RawMessage(`null`),
			},
			"Claude Code is using a tool", "Write: /tmp/x.go"),
		Entry("Notification is verbatim",
			event.HookEvent{
				EventName: event.HookEventNotification,
				Message:   "Claude needs your permission to use Bash",
			},
			"Claude Code", "Claude needs your permission to use Bash"),
		Entry("UserPromptSubmit",
			event.HookEvent{EventName: event.HookEventUserPromptSubmit, Prompt: "fix the\nbuild"},
			"Claude Code received a prompt", "fix the build"),
		Entry("Stop with a last message",
			event.HookEvent{EventName: event.HookEventStop, LastAssistantMessage: "All tests pass."},
			"Claude Code finished", "All tests pass."),
		Entry("Stop without a last message",
			event.HookEvent{EventName: event.HookEventStop},
			"Claude Code finished", "The agent has stopped responding."),
		Entry("SubagentStop",
			event.HookEvent{EventName: event.HookEventSubagentStop},
			"Claude Code finished", "A subagent has stopped responding."),
		Entry("SessionStart with source",
			event.HookEvent{EventName: event.HookEventSessionStart, SessionID: "abc", Source: "resume"},
			"Claude Code started a session", "Session abc (resume)"),
		Entry("SessionEnd with reason",
			event.HookEvent{EventName: event.HookEventSessionEnd, SessionID: "abc", Reason: "logout"},
			"Claude Code ended a session", "Session abc (logged out)"),
		Entry("SessionEnd with an unknown reason",
			event.HookEvent{EventName: event.HookEventSessionEnd, SessionID: "abc", Reason: "crash"},
			"Claude Code ended a session", "Session abc (crash)"),
		Entry("PreCompact without trigger",
			event.HookEvent{EventName: event.HookEventPreCompact, SessionID: "abc"},
			"Claude Code is compacting", "Session abc"),
	)

	DescribeTable("notify events",
		func(n event.NotifyEvent, wantBody string) {
			title, body, err := render.Content(event.FromNotify(&n))
			Expect(err).NotTo(HaveOccurred())
			Expect(title).To(Equal("Codex finished a turn"))
			Expect(body).To(Equal(wantBody))
		},
		Entry("last assistant message",
			event.NotifyEvent{
				Type:                 event.NotifyAgentTurnComplete,
				LastAssistantMessage: "Done.",
				InputMessages:        []string{"do it"},
			},
			"Done."),
		Entry("input messages",
			event.NotifyEvent{
				Type:          event.NotifyAgentTurnComplete,
				InputMessages: []string{"rename foo", "and bar"},
			},
			"rename foo and bar"),
		Entry("nothing to show",
			event.NotifyEvent{Type: event.NotifyAgentTurnComplete, LastAssistantMessage: "  "},
			"Turn complete"),
	)

	It("truncates long bodies by display width", func() {
		long := strings.Repeat("界", 200)

		_, body, err := render.Content(hook(event.HookEvent{
			EventName:            event.HookEventStop,
			LastAssistantMessage: long,
		}))
		Expect(err).NotTo(HaveOccurred())
		Expect(runewidth.StringWidth(body)).To(BeNumerically("<=", render.MaxBodyWidth))
		Expect(body).To(HaveSuffix("…"))
	})

	It("truncates tool summaries", func() {
		input, _ := json.Marshal(map[string]string{"command": strings.Repeat("x", 300)})

		_, body, err := render.Content(hook(event.HookEvent{
			EventName: event.HookEventPreToolUse,
			ToolName:  "Bash",
			ToolInput: input,
		}))
		Expect(err).NotTo(HaveOccurred())
		Expect(runewidth.StringWidth(strings.TrimPrefix(body, "Bash: "))).To(BeNumerically("<=", render.MaxSummaryWidth))
	})

	It("never truncates notification messages", func() {
		long := strings.Repeat("m", 400)

		_, body, err := render.Content(hook(event.HookEvent{
			EventName: event.HookEventNotification,
			Message:   long,
		}))
		Expect(err).NotTo(HaveOccurred())
		Expect(body).To(Equal(long))
	})

	It("produces a non-empty title and body for every kind", func() {
		for _, kind := range event.HookEventNameValues() {
			ev := hook(event.HookEvent{EventName: kind, ToolName: "Read", Message: "m", Prompt: "p"})

			title, body, err := render.Content(ev)
			Expect(err).NotTo(HaveOccurred(), kind.String())
			Expect(title).NotTo(BeEmpty())
			Expect(body).NotTo(BeEmpty())

			again, againBody, _ := render.Content(ev)
			Expect(again).To(Equal(title))
			Expect(againBody).To(Equal(body))
		}
	})

	It("produces a non-empty body when only the kind is known", func() {
		for _, kind := range event.HookEventNameValues() {
			_, body, err := render.Content(hook(event.HookEvent{EventName: kind}))
			Expect(err).NotTo(HaveOccurred(), kind.String())
			Expect(body).NotTo(BeEmpty(), kind.String())
		}
	})

	It("rejects unknown kinds", func() {
		_, _, err := render.Content(hook(event.HookEvent{EventName: event.HookEventName(99)}))
		Expect(errors.Is(err, parser.ErrUnsupportedEventKind)).To(BeTrue())

		_, _, err = render.Content(event.FromNotify(&event.NotifyEvent{Type: "approval-requested"}))
		Expect(errors.Is(err, parser.ErrUnsupportedEventKind)).To(BeTrue())
	})
})
