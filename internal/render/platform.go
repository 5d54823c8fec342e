package render

import (
	"github.com/smykla-skalski/anot/internal/notifier"
	"github.com/smykla-skalski/anot/pkg/agent"
)

// PlatformKind classifies what the notification system allows.
type PlatformKind int

const (
	// PlatformUnsupported has no notification backend.
	PlatformUnsupported PlatformKind = iota

	// PlatformSpoofCapable lets anot choose the sender app (macOS).
	PlatformSpoofCapable

	// PlatformDaemonOnly talks to a notification daemon that shows the
	// caller's identity (Linux and BSD desktops).
	PlatformDaemonOnly
)

// String returns the platform kind name.
func (k PlatformKind) String() string {
	switch k {
	case PlatformSpoofCapable:
		return "spoof-capable"
	case PlatformDaemonOnly:
		return "daemon-only"
	default:
		return "unsupported"
	}
}

// PlatformKindFor classifies goos.
func PlatformKindFor(goos string) PlatformKind {
	switch goos {
	case "darwin":
		return PlatformSpoofCapable
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return PlatformDaemonOnly
	default:
		return PlatformUnsupported
	}
}

// Platform is the notification environment anot runs in.
type Platform struct {
	Kind PlatformKind

	// Bundles finds native agent apps. Consulted only on spoof-capable
	// platforms when pretend is on.
	Bundles notifier.BundleResolver
}

// ResolveIdentity decides the sender identity and icon. The native app
// identity is used only when the platform can spoof the sender, the user
// asked for it and the app is installed. Borrowing an app's identity also
// borrows its icon, so no image is attached in that case.
func ResolveIdentity(
	kind PlatformKind,
	pretend bool,
	installed bool,
	bundleID string,
	a agent.Agent,
) (IdentityMode, IconRef) {
	if kind == PlatformSpoofCapable && pretend && installed && bundleID != "" {
		return IdentityMode{Kind: IdentityNativeApp, BundleID: bundleID},
			IconRef{Kind: IconNone, Agent: a}
	}

	return IdentityMode{Kind: IdentityHostTerminal}, IconRef{Kind: IconBundled, Agent: a}
}
