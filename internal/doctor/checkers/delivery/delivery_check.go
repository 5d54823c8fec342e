// Package delivery provides checkers for the notification backend.
package delivery

import (
	"context"
	"fmt"

	"github.com/smykla-skalski/anot/internal/doctor"
	"github.com/smykla-skalski/anot/internal/exec"
	"github.com/smykla-skalski/anot/internal/icon"
	"github.com/smykla-skalski/anot/internal/notifier"
	"github.com/smykla-skalski/anot/internal/render"
	"github.com/smykla-skalski/anot/internal/xdg"
	"github.com/smykla-skalski/anot/pkg/agent"
)

const (
	backendCheckName = "Notification backend"
	iconsCheckName   = "Agent icons"
)

// BackendChecker checks that the platform's notification tool is installed
type BackendChecker struct {
	goos  string
	tools exec.ToolChecker
}

// NewBackendChecker creates a checker for goos.
func NewBackendChecker(goos string, tools exec.ToolChecker) *BackendChecker {
	return &BackendChecker{goos: goos, tools: tools}
}

// Name returns the name of the check
func (*BackendChecker) Name() string {
	return backendCheckName
}

// Category returns the category of the check
func (*BackendChecker) Category() doctor.Category {
	return doctor.CategoryDelivery
}

// Check performs the backend check
func (c *BackendChecker) Check(_ context.Context) doctor.CheckResult {
	switch render.PlatformKindFor(c.goos) {
	case render.PlatformSpoofCapable:
		return c.checkDarwin()
	case render.PlatformDaemonOnly:
		if c.tools.IsAvailable(notifier.NotifySend) {
			return doctor.Pass(backendCheckName, notifier.NotifySend)
		}

		return doctor.FailError(backendCheckName, notifier.NotifySend+" not found in PATH").
			WithDetails("Install libnotify (e.g. apt install libnotify-bin)")
	default:
		return doctor.FailError(backendCheckName, "Unsupported platform "+c.goos)
	}
}

func (c *BackendChecker) checkDarwin() doctor.CheckResult {
	if c.tools.IsAvailable(notifier.TerminalNotifier) {
		return doctor.Pass(backendCheckName, notifier.TerminalNotifier)
	}

	if c.tools.IsAvailable(notifier.Osascript) {
		return doctor.FailWarning(
			backendCheckName,
			fmt.Sprintf("%s not found, falling back to %s", notifier.TerminalNotifier, notifier.Osascript),
		).WithDetails(
			"Without terminal-notifier notifications carry no icon and cannot pretend to be the agent app",
			"Install with: brew install terminal-notifier",
		)
	}

	return doctor.FailError(backendCheckName, "Neither terminal-notifier nor osascript found in PATH")
}

// IconsChecker checks that the agent icons are materialized in the cache
type IconsChecker struct {
	store *icon.Store
}

// NewIconsChecker creates a checker for the icon cache.
func NewIconsChecker(store *icon.Store) *IconsChecker {
	return &IconsChecker{store: store}
}

// Name returns the name of the check
func (*IconsChecker) Name() string {
	return iconsCheckName
}

// Category returns the category of the check
func (*IconsChecker) Category() doctor.Category {
	return doctor.CategoryDelivery
}

// Check performs the icons check
func (c *IconsChecker) Check(_ context.Context) doctor.CheckResult {
	var missing []string

	for _, a := range agent.AgentValues() {
		if !c.store.Installed(a) {
			missing = append(missing, a.String())
		}
	}

	dir := xdg.CollapseHome(c.store.Dir())

	if len(missing) > 0 {
		return doctor.FailWarning(iconsCheckName, fmt.Sprintf("%d icon(s) missing or stale", len(missing))).
			WithDetails(fmt.Sprintf("Cache: %s", dir), fmt.Sprintf("Agents: %v", missing)).
			WithFixID(doctor.FixInstallIcons)
	}

	return doctor.Pass(iconsCheckName, dir)
}
