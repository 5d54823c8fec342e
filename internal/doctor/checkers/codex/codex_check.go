// Package codex provides checkers for the Codex notify command.
package codex

import (
	"context"
	"fmt"
	"strings"

	"github.com/smykla-skalski/anot/internal/doctor"
	"github.com/smykla-skalski/anot/internal/settings"
	"github.com/smykla-skalski/anot/internal/xdg"
)

const checkName = "Notify command"

// NotifyChecker inspects the root notify key of a Codex config file
type NotifyChecker struct {
	path string
}

// NewNotifyChecker creates a checker for the Codex config at path.
func NewNotifyChecker(path string) *NotifyChecker {
	return &NotifyChecker{path: path}
}

// Name returns the name of the check
func (*NotifyChecker) Name() string {
	return checkName
}

// Category returns the category of the check
func (*NotifyChecker) Category() doctor.Category {
	return doctor.CategoryCodex
}

// Check performs the notify check
func (c *NotifyChecker) Check(_ context.Context) doctor.CheckResult {
	path := xdg.CollapseHome(c.path)

	doc, exists, err := settings.ReadDocument(c.path)
	if err != nil {
		return doctor.FailError(checkName, err.Error())
	}

	if !exists {
		return doctor.Skip(checkName, "Codex config not found at "+path)
	}

	state, err := settings.InspectCodex(doc)
	if err != nil {
		return doctor.FailError(checkName, "Codex config cannot be inspected").
			WithDetails("File: "+path, fmt.Sprintf("Error: %v", err))
	}

	switch state.Status {
	case settings.NotifyOwned:
		return doctor.Pass(checkName, "notify = "+renderArgv(state.Argv)).
			WithDetails("File: " + path)
	case settings.NotifyForeign:
		return doctor.FailWarning(checkName, "notify runs another command").
			WithDetails(
				"notify = "+renderArgv(state.Argv),
				"Replace it with: anot init codex --action override",
			)
	default:
		return doctor.FailWarning(checkName, "notify is not configured").
			WithDetails("File: "+path, "Register with: anot init codex")
	}
}

func renderArgv(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		quoted[i] = fmt.Sprintf("%q", arg)
	}

	return "[" + strings.Join(quoted, ", ") + "]"
}
