// Package settings edits agent settings documents so that they invoke anot,
// touching only the entries anot owns.
package settings

import (
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/smykla-skalski/anot/pkg/agent"
)

// BinaryName is the executable name every owned entry must invoke.
const BinaryName = "anot"

// Ownership decides whether a settings entry was written by anot for one
// agent. An entry is owned when it runs a single command whose program
// basename is BinaryName, whose last argument is the agent subcommand, and
// whose arguments in between are all flags.
type Ownership struct {
	Binary     string
	Subcommand string
}

// NewOwnership returns the predicate for agent a.
func NewOwnership(a agent.Agent) Ownership {
	return Ownership{
		Binary:     BinaryName,
		Subcommand: agent.MustLookup(a).Subcommand,
	}
}

// OwnsCommand applies the predicate to a shell command string.
func (o Ownership) OwnsCommand(command string) bool {
	argv, ok := splitCommand(command)
	if !ok {
		return false
	}

	return o.OwnsArgv(argv)
}

// OwnsArgv applies the predicate to an argument vector.
func (o Ownership) OwnsArgv(argv []string) bool {
	if len(argv) < 2 {
		return false
	}

	if filepath.Base(argv[0]) != o.Binary {
		return false
	}

	if argv[len(argv)-1] != o.Subcommand {
		return false
	}

	for _, arg := range argv[1 : len(argv)-1] {
		if !strings.HasPrefix(arg, "-") {
			return false
		}
	}

	return true
}

// CommandLine renders the canonical hook command for exe and agent a.
func CommandLine(exe string, a agent.Agent) string {
	quoted, err := syntax.Quote(exe, syntax.LangBash)
	if err != nil {
		quoted = exe
	}

	return quoted + " " + agent.MustLookup(a).Subcommand
}

// CommandArgv renders the canonical notify vector for exe and agent a.
func CommandArgv(exe string, a agent.Agent) []string {
	return []string{exe, agent.MustLookup(a).Subcommand}
}

// splitCommand parses command as exactly one simple command and returns
// its words. Anything else (pipelines, lists, redirects, assignments,
// substitutions) is rejected.
func splitCommand(command string) ([]string, bool) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil || len(file.Stmts) != 1 {
		return nil, false
	}

	stmt := file.Stmts[0]
	if stmt.Negated || stmt.Background || stmt.Coprocess || len(stmt.Redirs) > 0 {
		return nil, false
	}

	call, ok := stmt.Cmd.(*syntax.CallExpr)
	if !ok || len(call.Assigns) > 0 || len(call.Args) == 0 {
		return nil, false
	}

	argv := make([]string, 0, len(call.Args))

	for _, word := range call.Args {
		s, ok := wordToString(word)
		if !ok {
			return nil, false
		}

		argv = append(argv, s)
	}

	return argv, true
}

// wordToString flattens literal and quoted word parts. Simple parameter
// expansions are kept verbatim so "$HOME/bin/anot" still has basename anot.
func wordToString(word *syntax.Word) (string, bool) {
	var result strings.Builder

	for _, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			result.WriteString(p.Value)
		case *syntax.SglQuoted:
			result.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, dqPart := range p.Parts {
				switch dqp := dqPart.(type) {
				case *syntax.Lit:
					result.WriteString(dqp.Value)
				case *syntax.ParamExp:
					if !writeParam(&result, dqp) {
						return "", false
					}
				default:
					return "", false
				}
			}
		case *syntax.ParamExp:
			if !writeParam(&result, p) {
				return "", false
			}
		default:
			return "", false
		}
	}

	return result.String(), true
}

func writeParam(b *strings.Builder, p *syntax.ParamExp) bool {
	if p.Param == nil || p.Exp != nil || p.Repl != nil || p.Slice != nil || p.Index != nil || p.Length {
		return false
	}

	b.WriteString("$" + p.Param.Value)

	return true
}
