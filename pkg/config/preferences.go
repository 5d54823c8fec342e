// Package config provides the preferences schema for anot.
package config

import "github.com/smykla-skalski/anot/pkg/agent"

// CurrentPreferencesVersion is the only preferences schema version anot reads.
const CurrentPreferencesVersion = 1

// Preferences is the persisted per-agent configuration.
type Preferences struct {
	// Version is the schema version. Required; must equal CurrentPreferencesVersion.
	Version int `json:"version" koanf:"version" jsonschema:"required,enum=1"`

	// Claude holds Claude Code preferences.
	Claude AgentPreferences `json:"claude" koanf:"claude" jsonschema:"description=Claude Code preferences"`

	// Codex holds Codex preferences.
	Codex AgentPreferences `json:"codex" koanf:"codex" jsonschema:"description=Codex preferences"`
}

// AgentPreferences holds the preferences shared by every agent.
type AgentPreferences struct {
	// Pretend makes notifications appear to come from the agent's native
	// desktop app, on platforms that allow choosing the sender identity.
	Pretend bool `json:"pretend" koanf:"pretend" jsonschema:"description=Show notifications as the agent's desktop app when the platform allows it"`
}

// DefaultPreferences returns the first-run preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Version: CurrentPreferencesVersion,
		Claude:  AgentPreferences{Pretend: true},
		Codex:   AgentPreferences{Pretend: false},
	}
}

// For returns the preferences of agent a.
func (p *Preferences) For(a agent.Agent) AgentPreferences {
	switch a {
	case agent.Claude:
		return p.Claude
	case agent.Codex:
		return p.Codex
	default:
		return AgentPreferences{}
	}
}
