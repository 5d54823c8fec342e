// Package doctor runs health checks over the anot installation: preferences,
// hook registration in Claude and Codex, and the notification backend.
package doctor

//go:generate mockgen -source=types.go -destination=types_mock.go -package=doctor

import "context"

// Severity says how much a failed check matters.
type Severity string

// Severities, from blocking to informational.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Status is the outcome of a check.
type Status string

// Check outcomes.
const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusSkipped Status = "skipped"
)

// Category groups checks for filtering with --category and for display.
type Category string

const (
	// CategoryBinary checks that the anot executable resolves on PATH.
	CategoryBinary Category = "binary"
	// CategoryConfig checks the preferences file.
	CategoryConfig Category = "config"
	// CategoryClaude checks hook registration in Claude Code settings.
	CategoryClaude Category = "claude"
	// CategoryCodex checks the notify command in the Codex config.
	CategoryCodex Category = "codex"
	// CategoryDelivery checks the notification backend and icons.
	CategoryDelivery Category = "delivery"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryBinary,
	CategoryConfig,
	CategoryClaude,
	CategoryCodex,
	CategoryDelivery,
}

// Fix identifiers shared by checkers and fixers.
const (
	FixResetPreferences = "reset_preferences"
	FixInstallIcons     = "install_icons"
)

// CheckResult is what a checker reports. Category is filled in by the
// registry, not by checkers.
type CheckResult struct {
	Name     string
	Category Category
	Severity Severity
	Status   Status
	Message  string
	// Details are extra lines shown with --verbose.
	Details []string
	// FixID names the Fixer able to repair a failure, if any.
	FixID string
}

// HealthChecker performs a health check and returns a result
type HealthChecker interface {
	// Name returns the human-readable name of the check
	Name() string

	// Category returns the category this check belongs to
	Category() Category

	// Check performs the health check and returns a result
	Check(ctx context.Context) CheckResult
}

// Fixer can automatically fix issues identified by health checks
type Fixer interface {
	// ID returns the unique identifier for this fixer
	ID() string

	// Description returns a human-readable description of what this fixer does
	Description() string

	// CanFix determines if this fixer can fix the given check result
	CanFix(result CheckResult) bool

	// Fix attempts to fix the issue. If interactive is true, it may prompt the user.
	Fix(ctx context.Context, interactive bool) error
}

// Reporter formats and outputs check results
type Reporter interface {
	// Report outputs the results of health checks
	Report(results []CheckResult, verbose bool)
}

func newResult(name string, severity Severity, status Status, message string) CheckResult {
	return CheckResult{
		Name:     name,
		Severity: severity,
		Status:   status,
		Message:  message,
		Details:  []string{},
	}
}

// Pass reports a passing check.
func Pass(name, message string) CheckResult {
	return newResult(name, SeverityInfo, StatusPass, message)
}

// FailError reports a failure that breaks notifications.
func FailError(name, message string) CheckResult {
	return newResult(name, SeverityError, StatusFail, message)
}

// FailWarning reports a failure notifications survive, usually degraded.
func FailWarning(name, message string) CheckResult {
	return newResult(name, SeverityWarning, StatusFail, message)
}

// Skip reports a check that does not apply, such as a missing settings file.
func Skip(name, message string) CheckResult {
	return newResult(name, SeverityInfo, StatusSkipped, message)
}

// WithDetails returns r with details appended.
func (r CheckResult) WithDetails(details ...string) CheckResult {
	r.Details = append(r.Details, details...)

	return r
}

// WithFixID returns r pointing at the fixer with id.
func (r CheckResult) WithFixID(id string) CheckResult {
	r.FixID = id

	return r
}

func (r CheckResult) IsError() bool   { return r.Status == StatusFail && r.Severity == SeverityError }
func (r CheckResult) IsWarning() bool { return r.Status == StatusFail && r.Severity == SeverityWarning }
func (r CheckResult) IsPassed() bool  { return r.Status == StatusPass }
func (r CheckResult) IsSkipped() bool { return r.Status == StatusSkipped }

// HasFix reports whether a fixer is linked to r.
func (r CheckResult) HasFix() bool {
	return r.FixID != ""
}
