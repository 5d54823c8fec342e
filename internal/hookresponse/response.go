// Package hookresponse builds the JSON object anot writes to stdout when
// Claude Code runs it as a hook.
package hookresponse

// HookResponse is the top-level JSON structure written to stdout.
type HookResponse struct {
	// Continue lets Claude Code proceed. anot never stops the agent.
	Continue bool `json:"continue"`

	// SuppressOutput hides the hook's stdout from the transcript.
	SuppressOutput bool `json:"suppressOutput"`

	// SystemMessage is shown to the user.
	SystemMessage string `json:"systemMessage,omitempty"`
}
