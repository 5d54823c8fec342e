package notifier

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/internal/exec"
	"github.com/smykla-skalski/anot/pkg/logger"
)

const (
	// TerminalNotifier is the preferred macOS backend.
	TerminalNotifier = "terminal-notifier"

	// Osascript is the macOS fallback backend.
	Osascript = "osascript"

	// TerminalBundleID is the sender used when anot does not borrow an
	// agent app's identity.
	TerminalBundleID = "com.apple.Terminal"

	// DefaultSound is the system sound every notification plays.
	DefaultSound = "default"
)

// DarwinDeliverer posts notifications through terminal-notifier, falling
// back to osascript when it is not installed. Only terminal-notifier can
// choose the sender identity and attach an image.
type DarwinDeliverer struct {
	runner exec.CommandRunner
	tools  exec.ToolChecker
	log    logger.Logger
}

// NewDarwinDeliverer creates a DarwinDeliverer.
func NewDarwinDeliverer(runner exec.CommandRunner, tools exec.ToolChecker, log logger.Logger) *DarwinDeliverer {
	return &DarwinDeliverer{runner: runner, tools: tools, log: log}
}

// Name returns the backend name.
func (*DarwinDeliverer) Name() string {
	return "macos"
}

// Deliver posts n.
func (d *DarwinDeliverer) Deliver(ctx context.Context, n *Notification) error {
	if d.tools.IsAvailable(TerminalNotifier) {
		return run(ctx, d.runner, TerminalNotifier, terminalNotifierArgs(n)...)
	}

	d.log.Debug("terminal-notifier not found, using osascript without identity or icon")

	return run(ctx, d.runner, Osascript, "-e", displayNotificationScript(n))
}

func terminalNotifierArgs(n *Notification) []string {
	args := []string{"-title", n.Title, "-message", n.Body, "-sound", DefaultSound}

	if n.SenderBundleID != "" {
		return append(args, "-sender", n.SenderBundleID)
	}

	args = append(args, "-sender", TerminalBundleID)

	if n.IconPath != "" {
		args = append(args, "-contentImage", n.IconPath)
	}

	return args
}

func displayNotificationScript(n *Notification) string {
	return "display notification " + appleScriptString(n.Body) +
		" with title " + appleScriptString(n.Title) +
		" sound name " + appleScriptString(DefaultSound)
}

func appleScriptString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)

	return `"` + r.Replace(s) + `"`
}

type osascriptBundles struct {
	runner exec.CommandRunner
	log    logger.Logger
}

// LookupBundleID asks LaunchServices for the app's bundle id.
func (b *osascriptBundles) LookupBundleID(ctx context.Context, appName string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	script := "id of application " + appleScriptString(appName)

	result, err := b.runner.Run(ctx, Osascript, "-e", script)
	if err != nil {
		b.log.Debug("bundle lookup failed", "app", appName, "error", err.Error())

		return "", false
	}

	id := strings.TrimSpace(result.Stdout)

	return id, id != ""
}

func run(ctx context.Context, runner exec.CommandRunner, name string, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	result, err := runner.Run(ctx, name, args...)
	if err != nil {
		detail := ""
		if result != nil {
			detail = strings.TrimSpace(result.Stderr)
		}

		if detail != "" {
			return errors.Wrapf(errors.Mark(err, ErrDelivery), "%s: %s", name, detail)
		}

		return errors.Wrap(errors.Mark(err, ErrDelivery), name)
	}

	return nil
}
