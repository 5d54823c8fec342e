// Package agent holds the closed set of supported coding agents and their
// capabilities.
package agent

//go:generate enumer -type=Agent -transform=lower -json -text

// Agent identifies a supported coding agent.
type Agent int

const (
	// Claude is Anthropic's Claude Code, integrated through its hook protocol.
	Claude Agent = iota

	// Codex is OpenAI's Codex CLI, integrated through its notify protocol.
	Codex
)

// Protocol is the wire protocol an agent uses to report events.
type Protocol int

const (
	// ProtocolHook is Claude Code's hook protocol: one JSON object on stdin
	// per lifecycle event.
	ProtocolHook Protocol = iota

	// ProtocolNotify is Codex's notify protocol: one JSON object passed as
	// the last argument when a turn completes.
	ProtocolNotify
)

// String returns the protocol name.
func (p Protocol) String() string {
	switch p {
	case ProtocolHook:
		return "hook"
	case ProtocolNotify:
		return "notify"
	default:
		return "unknown"
	}
}

// SettingsFormat is the file format of an agent's settings document.
type SettingsFormat int

const (
	// SettingsJSON is a JSON document (Claude Code settings.json).
	SettingsJSON SettingsFormat = iota

	// SettingsTOML is a TOML document (Codex config.toml).
	SettingsTOML
)

// Info describes what anot knows about an agent.
type Info struct {
	// Agent is the enum value.
	Agent Agent

	// Label is the human-readable name used in notification titles.
	Label string

	// Subcommand is the anot subcommand the agent invokes, and the last
	// word of every settings entry anot owns.
	Subcommand string

	// Protocol is how the agent reports events.
	Protocol Protocol

	// NativeApp is the macOS application whose identity pretend mode borrows.
	NativeApp string

	// IconAsset is the embedded icon file name.
	IconAsset string

	// Settings is the format of the agent's settings document.
	Settings SettingsFormat
}

var builtinAgents = map[Agent]Info{
	Claude: {
		Agent:      Claude,
		Label:      "Claude Code",
		Subcommand: "claude",
		Protocol:   ProtocolHook,
		NativeApp:  "Claude",
		IconAsset:  "claude.png",
		Settings:   SettingsJSON,
	},
	Codex: {
		Agent:      Codex,
		Label:      "Codex",
		Subcommand: "codex",
		Protocol:   ProtocolNotify,
		NativeApp:  "ChatGPT",
		IconAsset:  "codex.png",
		Settings:   SettingsTOML,
	},
}

// Lookup returns the capability entry for a. The table is total over the
// enum; an out-of-range value yields the zero Info and false.
func Lookup(a Agent) (Info, bool) {
	info, ok := builtinAgents[a]

	return info, ok
}

// MustLookup is Lookup for values known to be valid enum members.
func MustLookup(a Agent) Info {
	info, ok := builtinAgents[a]
	if !ok {
		panic("agent: unknown agent " + a.String())
	}

	return info
}

// ForProtocol returns the agent that speaks protocol p.
func ForProtocol(p Protocol) (Agent, bool) {
	for _, a := range AgentValues() {
		if builtinAgents[a].Protocol == p {
			return a, true
		}
	}

	return 0, false
}

// All returns the capability entries in enum order.
func All() []Info {
	values := AgentValues()
	infos := make([]Info, 0, len(values))

	for _, a := range values {
		infos = append(infos, builtinAgents[a])
	}

	return infos
}
