package render

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/internal/notifier"
	"github.com/smykla-skalski/anot/pkg/agent"
	"github.com/smykla-skalski/anot/pkg/config"
	"github.com/smykla-skalski/anot/pkg/event"
	"github.com/smykla-skalski/anot/pkg/logger"
)

// Render builds the presentation of ev. The only side effect is the bundle
// lookup, made on spoof-capable platforms when pretend is on.
func Render(
	ctx context.Context,
	ev *event.AgentEvent,
	prefs *config.Preferences,
	platform Platform,
) (*Presentation, error) {
	title, body, err := Content(ev)
	if err != nil {
		return nil, err
	}

	a := ev.Agent()
	info := agent.MustLookup(a)
	pretend := prefs.For(a).Pretend

	var (
		bundleID  string
		installed bool
	)

	if platform.Kind == PlatformSpoofCapable && pretend && platform.Bundles != nil {
		bundleID, installed = platform.Bundles.LookupBundleID(ctx, info.NativeApp)
	}

	identity, icon := ResolveIdentity(platform.Kind, pretend, installed, bundleID, a)

	return &Presentation{
		Agent:    a,
		AppName:  info.Label,
		Title:    title,
		Body:     body,
		Icon:     icon,
		Identity: identity,
	}, nil
}

// IconPaths materializes bundled icons.
type IconPaths interface {
	Path(a agent.Agent) (string, error)
}

// Notifier renders events and hands them to a Deliverer.
type Notifier struct {
	platform  Platform
	prefs     *config.Preferences
	deliverer notifier.Deliverer
	icons     IconPaths
	log       logger.Logger
}

// NewNotifier creates a Notifier.
func NewNotifier(
	platform Platform,
	prefs *config.Preferences,
	deliverer notifier.Deliverer,
	icons IconPaths,
	log logger.Logger,
) *Notifier {
	return &Notifier{
		platform:  platform,
		prefs:     prefs,
		deliverer: deliverer,
		icons:     icons,
		log:       log,
	}
}

// Notify renders ev and delivers it exactly once. Rendering errors are
// returned as is; delivery errors wrap notifier.ErrDelivery. The
// presentation is returned whenever rendering succeeded.
func (n *Notifier) Notify(ctx context.Context, ev *event.AgentEvent) (*Presentation, error) {
	p, err := Render(ctx, ev, n.prefs, n.platform)
	if err != nil {
		return nil, err
	}

	msg := &notifier.Notification{
		Title:   p.Title,
		Body:    p.Body,
		AppName: p.AppName,
	}

	if p.Identity.Kind == IdentityNativeApp {
		msg.SenderBundleID = p.Identity.BundleID
	}

	if p.Icon.Kind == IconBundled && n.icons != nil {
		path, err := n.icons.Path(p.Icon.Agent)
		if err != nil {
			n.log.Error("icon unavailable, sending without it", "agent", p.Agent.String(), "error", err.Error())
		} else {
			msg.IconPath = path
		}
	}

	n.log.Debug("delivering notification",
		"backend", n.deliverer.Name(),
		"kind", ev.Kind(),
		"identity", identityName(p.Identity),
		"title", p.Title,
	)

	if err := n.deliverer.Deliver(ctx, msg); err != nil {
		if !errors.Is(err, notifier.ErrDelivery) {
			err = errors.Mark(err, notifier.ErrDelivery)
		}

		return p, err
	}

	return p, nil
}

func identityName(id IdentityMode) string {
	if id.Kind == IdentityNativeApp {
		return "native:" + id.BundleID
	}

	return "terminal"
}
