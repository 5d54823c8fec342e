// Package binary provides checkers for the anot binary itself.
package binary

import (
	"context"
	"os"
	osexec "os/exec"

	"github.com/smykla-skalski/anot/internal/doctor"
	"github.com/smykla-skalski/anot/internal/settings"
)

const checkName = "Binary available"

// ExistsChecker checks that anot can be found in PATH. Registered hooks use
// the absolute path of the binary that installed them, so a miss is only a
// warning.
type ExistsChecker struct {
	lookPath   func(string) (string, error)
	executable func() (string, error)
}

// NewExistsChecker creates a new binary exists checker
func NewExistsChecker() *ExistsChecker {
	return &ExistsChecker{
		lookPath:   osexec.LookPath,
		executable: os.Executable,
	}
}

// NewExistsCheckerWith creates a checker with injected lookups.
func NewExistsCheckerWith(
	lookPath func(string) (string, error),
	executable func() (string, error),
) *ExistsChecker {
	return &ExistsChecker{lookPath: lookPath, executable: executable}
}

// Name returns the name of the check
func (*ExistsChecker) Name() string {
	return checkName
}

// Category returns the category of the check
func (*ExistsChecker) Category() doctor.Category {
	return doctor.CategoryBinary
}

// Check performs the binary existence check
func (c *ExistsChecker) Check(_ context.Context) doctor.CheckResult {
	path, err := c.lookPath(settings.BinaryName)
	if err != nil {
		result := doctor.FailWarning(checkName, "anot not found in PATH")

		if exe, exeErr := c.executable(); exeErr == nil {
			result = result.WithDetails("Running from " + exe)
		}

		return result.WithDetails(
			"Hooks are registered with the absolute path of the binary that ran init",
		)
	}

	return doctor.Pass(checkName, "Found at "+path)
}
