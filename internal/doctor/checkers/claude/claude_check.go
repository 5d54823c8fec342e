// Package claude provides checkers for hook registration in Claude Code
// settings files.
package claude

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/internal/doctor"
	"github.com/smykla-skalski/anot/internal/settings"
	"github.com/smykla-skalski/anot/internal/xdg"
	"github.com/smykla-skalski/anot/pkg/event"
)

const userScope = "user"

// RegistrationChecker checks the anot hook groups of one settings file
type RegistrationChecker struct {
	location settings.Location
}

// NewRegistrationChecker creates a checker for the settings file at loc.
func NewRegistrationChecker(loc settings.Location) *RegistrationChecker {
	return &RegistrationChecker{location: loc}
}

// NewRegistrationCheckers creates one checker per location.
func NewRegistrationCheckers(locations []settings.Location) []doctor.HealthChecker {
	checkers := make([]doctor.HealthChecker, 0, len(locations))
	for _, loc := range locations {
		checkers = append(checkers, NewRegistrationChecker(loc))
	}

	return checkers
}

// Name returns the name of the check
func (c *RegistrationChecker) Name() string {
	return fmt.Sprintf("Hooks in %s settings", c.location.Scope)
}

// Category returns the category of the check
func (*RegistrationChecker) Category() doctor.Category {
	return doctor.CategoryClaude
}

// Check performs the registration check
func (c *RegistrationChecker) Check(_ context.Context) doctor.CheckResult {
	name := c.Name()
	path := xdg.CollapseHome(c.location.Path)
	optional := c.location.Scope != userScope

	doc, exists, err := settings.ReadDocument(c.location.Path)
	if err != nil {
		return doctor.FailError(name, err.Error())
	}

	if !exists {
		if optional {
			return doctor.Skip(name, "Settings file not found (optional)")
		}

		return doctor.FailWarning(name, "Settings file not found").
			WithDetails("Expected at: "+path, "Register with: anot init claude")
	}

	summaries, err := settings.DescribeClaude(doc)
	if err != nil {
		return describeError(name, path, err)
	}

	var (
		owned      []string
		duplicates []string
	)

	for _, s := range summaries {
		if s.Owned > 0 {
			owned = append(owned, s.Kind.String())
		}

		if s.Owned > 1 {
			duplicates = append(duplicates, s.Kind.String())
		}
	}

	if len(owned) == 0 {
		if optional {
			return doctor.Pass(name, "Not registered (optional)")
		}

		return doctor.FailWarning(name, "anot is not registered").
			WithDetails("File: "+path, "Register with: anot init claude")
	}

	msg := fmt.Sprintf("%d event(s): %s", len(owned), strings.Join(owned, ", "))

	if len(duplicates) > 0 {
		return doctor.FailWarning(name, msg).WithDetails(
			"Duplicate anot groups for: "+strings.Join(duplicates, ", "),
			"Collapse them with: anot init claude "+path,
		)
	}

	return doctor.Pass(name, msg).WithDetails("File: " + path)
}

func describeError(name, path string, err error) doctor.CheckResult {
	switch {
	case errors.Is(err, settings.ErrUnparsableDocument):
		return doctor.FailError(name, "Settings file is not valid JSON").
			WithDetails("File: "+path, fmt.Sprintf("Error: %v", err))
	case errors.Is(err, settings.ErrAmbiguousOwnership):
		return doctor.FailError(name, "Hook entries cannot be attributed safely").
			WithDetails("File: "+path, fmt.Sprintf("Error: %v", err))
	default:
		return doctor.FailError(name, fmt.Sprintf("Failed to read settings: %v", err))
	}
}

// OverlapChecker reports events registered in more than one settings file.
// Claude Code runs the hooks of every scope, so those events notify twice.
type OverlapChecker struct {
	locations []settings.Location
}

// NewOverlapChecker creates a checker across the given locations.
func NewOverlapChecker(locations []settings.Location) *OverlapChecker {
	return &OverlapChecker{locations: locations}
}

// Name returns the name of the check
func (*OverlapChecker) Name() string {
	return "Single registration per event"
}

// Category returns the category of the check
func (*OverlapChecker) Category() doctor.Category {
	return doctor.CategoryClaude
}

// Check performs the overlap check
func (c *OverlapChecker) Check(_ context.Context) doctor.CheckResult {
	name := c.Name()
	scopes := make(map[event.HookEventName][]string)
	read := 0

	for _, loc := range c.locations {
		doc, exists, err := settings.ReadDocument(loc.Path)
		if err != nil || !exists {
			continue
		}

		kinds, err := settings.OwnedClaudeEvents(doc)
		if err != nil {
			continue
		}

		read++

		for _, kind := range kinds {
			scopes[kind] = append(scopes[kind], loc.Scope)
		}
	}

	if read == 0 {
		return doctor.Skip(name, "No readable settings files")
	}

	var details []string

	for _, kind := range event.HookEventNameValues() {
		if len(scopes[kind]) > 1 {
			details = append(details, fmt.Sprintf("%s: %s", kind, strings.Join(scopes[kind], ", ")))
		}
	}

	if len(details) > 0 {
		return doctor.FailWarning(name, fmt.Sprintf("%d event(s) notify more than once", len(details))).
			WithDetails(details...)
	}

	return doctor.Pass(name, "No event is registered twice")
}
