package notifier

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/internal/exec"
)

// NotifySend is the freedesktop backend.
const NotifySend = "notify-send"

// FreedesktopDeliverer posts notifications to the session's notification
// daemon through notify-send.
type FreedesktopDeliverer struct {
	runner exec.CommandRunner
	tools  exec.ToolChecker
}

// NewFreedesktopDeliverer creates a FreedesktopDeliverer.
func NewFreedesktopDeliverer(runner exec.CommandRunner, tools exec.ToolChecker) *FreedesktopDeliverer {
	return &FreedesktopDeliverer{runner: runner, tools: tools}
}

// Name returns the backend name.
func (*FreedesktopDeliverer) Name() string {
	return NotifySend
}

// Deliver posts n.
func (d *FreedesktopDeliverer) Deliver(ctx context.Context, n *Notification) error {
	if err := d.tools.RequireTool(NotifySend); err != nil {
		return errors.WithHint(
			errors.Mark(err, ErrDelivery),
			"install libnotify (notify-send) to receive notifications",
		)
	}

	return run(ctx, d.runner, NotifySend, notifySendArgs(n)...)
}

func notifySendArgs(n *Notification) []string {
	var args []string

	if n.AppName != "" {
		args = append(args, "--app-name", n.AppName)
	}

	if n.IconPath != "" {
		args = append(args, "--icon", n.IconPath)
	}

	return append(args, "--", n.Title, n.Body)
}
