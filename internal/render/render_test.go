package render_test

import (
	"context"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/smykla-skalski/anot/internal/notifier"
	"github.com/smykla-skalski/anot/internal/parser"
	"github.com/smykla-skalski/anot/internal/render"
	"github.com/smykla-skalski/anot/pkg/agent"
	"github.com/smykla-skalski/anot/pkg/config"
	"github.com/smykla-skalski/anot/pkg/event"
	"github.com/smykla-skalski/anot/pkg/logger"
)

const claudeBundle = "com.anthropic.claudefordesktop"

type fakeIcons struct {
	err   error
	calls int
}

func (f *fakeIcons) Path(a agent.Agent) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}

	return "/icons/" + a.String() + ".png", nil
}

var _ = Describe("ResolveIdentity", func() {
	kinds := []render.PlatformKind{
		render.PlatformSpoofCapable,
		render.PlatformDaemonOnly,
		render.PlatformUnsupported,
	}

	It("is total over every platform, pretend and installed combination", func() {
		for _, kind := range kinds {
			for _, pretend := range []bool{true, false} {
				for _, installed := range []bool{true, false} {
					identity, icon := render.ResolveIdentity(kind, pretend, installed, claudeBundle, agent.Claude)

					native := kind == render.PlatformSpoofCapable && pretend && installed
					if native {
						Expect(identity).To(Equal(render.IdentityMode{
							Kind:     render.IdentityNativeApp,
							BundleID: claudeBundle,
						}))
						Expect(icon.Kind).To(Equal(render.IconNone))
					} else {
						Expect(identity.Kind).To(Equal(render.IdentityHostTerminal), "%s %v %v", kind, pretend, installed)
						Expect(icon).To(Equal(render.IconRef{Kind: render.IconBundled, Agent: agent.Claude}))
					}
				}
			}
		}
	})

	It("classifies platforms", func() {
		Expect(render.PlatformKindFor("darwin")).To(Equal(render.PlatformSpoofCapable))
		Expect(render.PlatformKindFor("linux")).To(Equal(render.PlatformDaemonOnly))
		Expect(render.PlatformKindFor("openbsd")).To(Equal(render.PlatformDaemonOnly))
		Expect(render.PlatformKindFor("windows")).To(Equal(render.PlatformUnsupported))
	})
})

var _ = Describe("Notifier", func() {
	var (
		ctrl          *gomock.Controller
		mockDeliverer *notifier.MockDeliverer
		mockBundles   *notifier.MockBundleResolver
		icons         *fakeIcons
		prefs         *config.Preferences
		ctx           context.Context
		stop          *event.AgentEvent
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockDeliverer = notifier.NewMockDeliverer(ctrl)
		mockBundles = notifier.NewMockBundleResolver(ctrl)
		icons = &fakeIcons{}
		prefs = config.DefaultPreferences()
		ctx = context.Background()
		stop = event.FromHook(&event.HookEvent{EventName: event.HookEventStop, SessionID: "s1"})

		mockDeliverer.EXPECT().Name().Return("test").AnyTimes()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	newNotifier := func(kind render.PlatformKind) *render.Notifier {
		return render.NewNotifier(
			render.Platform{Kind: kind, Bundles: mockBundles},
			prefs,
			mockDeliverer,
			icons,
			logger.NewNoOpLogger(),
		)
	}

	It("borrows the native app identity when pretending on macOS", func() {
		mockBundles.EXPECT().LookupBundleID(gomock.Any(), "Claude").Return(claudeBundle, true)
		mockDeliverer.EXPECT().Deliver(gomock.Any(), &notifier.Notification{
			Title:          "Claude Code finished",
			Body:           "The agent has stopped responding.",
			AppName:        "Claude Code",
			SenderBundleID: claudeBundle,
		}).Return(nil).Times(1)

		p, err := newNotifier(render.PlatformSpoofCapable).Notify(ctx, stop)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Identity.Kind).To(Equal(render.IdentityNativeApp))
		Expect(icons.calls).To(BeZero())
	})

	It("falls back to the terminal when the app is missing", func() {
		mockBundles.EXPECT().LookupBundleID(gomock.Any(), "Claude").Return("", false)
		mockDeliverer.EXPECT().Deliver(gomock.Any(), &notifier.Notification{
			Title:    "Claude Code finished",
			Body:     "The agent has stopped responding.",
			AppName:  "Claude Code",
			IconPath: "/icons/claude.png",
		}).Return(nil)

		_, err := newNotifier(render.PlatformSpoofCapable).Notify(ctx, stop)
		Expect(err).NotTo(HaveOccurred())
	})

	It("does not look up bundles when pretend is off", func() {
		turn := event.FromNotify(&event.NotifyEvent{Type: event.NotifyAgentTurnComplete})
		mockDeliverer.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil)

		p, err := newNotifier(render.PlatformSpoofCapable).Notify(ctx, turn)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Identity.Kind).To(Equal(render.IdentityHostTerminal))
		Expect(p.Icon).To(Equal(render.IconRef{Kind: render.IconBundled, Agent: agent.Codex}))
	})

	It("does not look up bundles on daemon-only platforms", func() {
		mockDeliverer.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil)

		_, err := newNotifier(render.PlatformDaemonOnly).Notify(ctx, stop)
		Expect(err).NotTo(HaveOccurred())
	})

	It("delivers without an icon when it cannot be written", func() {
		icons.err = errors.New("read-only cache")
		mockDeliverer.EXPECT().Deliver(gomock.Any(), &notifier.Notification{
			Title:   "Claude Code finished",
			Body:    "The agent has stopped responding.",
			AppName: "Claude Code",
		}).Return(nil)

		_, err := newNotifier(render.PlatformDaemonOnly).Notify(ctx, stop)
		Expect(err).NotTo(HaveOccurred())
	})

	It("reports delivery failures once without retrying", func() {
		mockDeliverer.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(errors.New("dbus down")).Times(1)

		p, err := newNotifier(render.PlatformDaemonOnly).Notify(ctx, stop)
		Expect(errors.Is(err, notifier.ErrDelivery)).To(BeTrue())
		Expect(p).NotTo(BeNil())
	})

	It("never delivers unsupported events", func() {
		bogus := event.FromHook(&event.HookEvent{EventName: event.HookEventName(42), SessionID: "s"})

		_, err := newNotifier(render.PlatformDaemonOnly).Notify(ctx, bogus)
		Expect(errors.Is(err, parser.ErrUnsupportedEventKind)).To(BeTrue())
	})
})
