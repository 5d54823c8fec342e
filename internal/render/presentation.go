// Package render turns agent events into notifications: what they say,
// which icon they carry and whose identity they are shown under.
package render

import (
	"github.com/smykla-skalski/anot/pkg/agent"
)

// IconKind says whether a notification carries an image.
type IconKind int

const (
	// IconNone shows no image; the sender app's own icon is used.
	IconNone IconKind = iota

	// IconBundled shows the agent icon shipped with anot.
	IconBundled
)

// IconRef references the icon of a notification.
type IconRef struct {
	Kind  IconKind
	Agent agent.Agent
}

// IdentityKind says who a notification appears to come from.
type IdentityKind int

const (
	// IdentityHostTerminal shows the notification as coming from the
	// terminal (or notification daemon) anot runs under.
	IdentityHostTerminal IdentityKind = iota

	// IdentityNativeApp shows the notification as coming from the agent's
	// desktop app.
	IdentityNativeApp
)

// IdentityMode is the resolved sender identity.
type IdentityMode struct {
	Kind IdentityKind

	// BundleID is the app to impersonate when Kind is IdentityNativeApp.
	BundleID string
}

// Presentation is a rendered notification, ready for delivery.
type Presentation struct {
	Agent agent.Agent

	// AppName is the agent label, used as the application name where the
	// backend supports one.
	AppName string

	Title    string
	Body     string
	Icon     IconRef
	Identity IdentityMode
}
