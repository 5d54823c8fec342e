// Package notifier delivers desktop notifications through the platform's
// notification backend.
package notifier

//go:generate mockgen -source=notifier.go -destination=notifier_mock.go -package=notifier

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/internal/exec"
	"github.com/smykla-skalski/anot/pkg/logger"
)

// CommandTimeout bounds every backend invocation.
const CommandTimeout = 5 * time.Second

// ErrDelivery is returned when the backend could not show a notification.
var ErrDelivery = errors.New("notification delivery failed")

// Notification is what a backend displays.
type Notification struct {
	Title string
	Body  string

	// AppName is the application name shown by freedesktop servers.
	AppName string

	// IconPath is an image file shown with the notification. Optional.
	IconPath string

	// SenderBundleID makes the notification appear to come from another
	// macOS application. Empty means the host terminal.
	SenderBundleID string
}

// Deliverer shows notifications.
type Deliverer interface {
	// Deliver shows n once. Failures wrap ErrDelivery.
	Deliver(ctx context.Context, n *Notification) error

	// Name identifies the backend for logs and diagnostics.
	Name() string
}

// BundleResolver finds the bundle identifier of an installed macOS app.
type BundleResolver interface {
	// LookupBundleID returns the bundle id of appName and whether the app
	// is installed.
	LookupBundleID(ctx context.Context, appName string) (string, bool)
}

// New returns the Deliverer for goos.
func New(goos string, runner exec.CommandRunner, tools exec.ToolChecker, log logger.Logger) Deliverer {
	switch goos {
	case "darwin":
		return NewDarwinDeliverer(runner, tools, log)
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return NewFreedesktopDeliverer(runner, tools)
	default:
		return NewUnsupportedDeliverer(goos)
	}
}

// NewBundleResolver returns the BundleResolver for goos. Only macOS can
// resolve bundles; elsewhere every app reports as not installed.
func NewBundleResolver(goos string, runner exec.CommandRunner, log logger.Logger) BundleResolver {
	if goos == "darwin" {
		return &osascriptBundles{runner: runner, log: log}
	}

	return noBundles{}
}

// UnsupportedDeliverer fails every delivery.
type UnsupportedDeliverer struct {
	goos string
}

// NewUnsupportedDeliverer returns a deliverer for a platform with no backend.
func NewUnsupportedDeliverer(goos string) *UnsupportedDeliverer {
	return &UnsupportedDeliverer{goos: goos}
}

// Deliver always returns ErrDelivery.
func (d *UnsupportedDeliverer) Deliver(context.Context, *Notification) error {
	return errors.Wrapf(ErrDelivery, "unsupported platform %s", d.goos)
}

// Name returns "unsupported".
func (*UnsupportedDeliverer) Name() string {
	return "unsupported"
}

type noBundles struct{}

func (noBundles) LookupBundleID(context.Context, string) (string, bool) {
	return "", false
}
