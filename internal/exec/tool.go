package exec

//go:generate mockgen -source=tool.go -destination=tool_mock.go -package=exec

import (
	"os/exec"

	"github.com/cockroachdb/errors"
)

// ErrToolNotFound is returned when a required tool is not in PATH.
var ErrToolNotFound = errors.New("tool not found in PATH")

// installHints tells users where the notification helpers come from.
var installHints = map[string]string{
	"terminal-notifier": "Install it with: brew install terminal-notifier",
	"notify-send":       "Install libnotify, e.g. apt install libnotify-bin or dnf install libnotify",
	"osascript":         "osascript ships with macOS; check that /usr/bin is in PATH",
}

// ToolChecker looks up helper binaries.
type ToolChecker interface {
	// IsAvailable reports whether tool resolves in PATH.
	IsAvailable(tool string) bool

	// RequireTool returns ErrToolNotFound, with an install hint for known
	// tools, when tool does not resolve.
	RequireTool(tool string) error
}

type pathLookup struct {
	lookPath func(string) (string, error)
}

// NewToolChecker returns a ToolChecker backed by PATH.
func NewToolChecker() ToolChecker {
	return &pathLookup{lookPath: exec.LookPath}
}

func (p *pathLookup) IsAvailable(tool string) bool {
	_, err := p.lookPath(tool)

	return err == nil
}

func (p *pathLookup) RequireTool(tool string) error {
	if p.IsAvailable(tool) {
		return nil
	}

	err := errors.Wrap(ErrToolNotFound, tool)
	if hint, ok := installHints[tool]; ok {
		err = errors.WithHint(err, hint)
	}

	return err
}
