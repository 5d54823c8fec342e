package doctor_test

import (
	"bytes"
	"context"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/smykla-skalski/anot/internal/doctor"
	"github.com/smykla-skalski/anot/internal/prompt"
	"github.com/smykla-skalski/anot/pkg/logger"
)

var _ = Describe("Runner", func() {
	var (
		ctrl     *gomock.Controller
		registry *doctor.Registry
		reporter *doctor.MockReporter
		prompter *prompt.MockPrompter
		fixer    *doctor.MockFixer
		out      *bytes.Buffer
		fixed    bool
		runner   *doctor.Runner
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		registry = doctor.NewRegistry()
		reporter = doctor.NewMockReporter(ctrl)
		prompter = prompt.NewMockPrompter(ctrl)
		fixer = doctor.NewMockFixer(ctrl)
		out = &bytes.Buffer{}
		fixed = false

		fixer.EXPECT().ID().Return(doctor.FixResetPreferences).AnyTimes()
		fixer.EXPECT().Description().Return("Rewrite the preferences file").AnyTimes()

		registry.RegisterFixer(fixer)
		registry.RegisterChecker(&stubChecker{name: "bin", category: doctor.CategoryBinary})
		registry.RegisterChecker(&stubChecker{
			name:     "prefs",
			category: doctor.CategoryConfig,
			result: func() doctor.CheckResult {
				if fixed {
					return doctor.Pass("prefs", "ok")
				}

				return doctor.FailError("prefs", "bad version").WithFixID(doctor.FixResetPreferences)
			},
		})

		runner = doctor.NewRunner(registry, reporter, prompter, out, logger.NewNoOpLogger())
	})

	It("returns nil when every check passes", func() {
		fixed = true
		reporter.EXPECT().Report(gomock.Len(2), false)

		Expect(runner.Run(context.Background(), doctor.RunOptions{})).To(Succeed())
		Expect(out.String()).To(BeEmpty())
	})

	It("suggests fixes and fails without --fix", func() {
		reporter.EXPECT().Report(gomock.Len(2), true)

		err := runner.Run(context.Background(), doctor.RunOptions{Verbose: true})
		Expect(errors.Is(err, doctor.ErrChecksFailed)).To(BeTrue())
		Expect(out.String()).To(ContainSubstring("prefs: Rewrite the preferences file"))
		Expect(out.String()).To(ContainSubstring("anot doctor --fix"))
	})

	It("applies fixes and re-runs the fixed checks with --fix", func() {
		gomock.InOrder(
			reporter.EXPECT().Report(gomock.Len(2), false),
			fixer.EXPECT().Fix(gomock.Any(), false).DoAndReturn(func(context.Context, bool) error {
				fixed = true

				return nil
			}),
			reporter.EXPECT().Report(gomock.Len(1), false),
		)

		Expect(runner.Run(context.Background(), doctor.RunOptions{AutoFix: true})).To(Succeed())
	})

	It("asks before fixing in interactive mode", func() {
		reporter.EXPECT().Report(gomock.Any(), false)
		prompter.EXPECT().Confirm(`Apply fix for "prefs"?`, true).Return(false, nil)

		err := runner.Run(context.Background(), doctor.RunOptions{Interactive: true})
		Expect(errors.Is(err, doctor.ErrChecksFailed)).To(BeTrue())
	})

	It("fixes after confirmation in interactive mode", func() {
		gomock.InOrder(
			reporter.EXPECT().Report(gomock.Len(2), false),
			prompter.EXPECT().Confirm(`Apply fix for "prefs"?`, true).Return(true, nil),
			fixer.EXPECT().Fix(gomock.Any(), true).DoAndReturn(func(context.Context, bool) error {
				fixed = true

				return nil
			}),
			reporter.EXPECT().Report(gomock.Len(1), false),
		)

		Expect(runner.Run(context.Background(), doctor.RunOptions{Interactive: true})).To(Succeed())
	})

	It("propagates fixer errors", func() {
		reporter.EXPECT().Report(gomock.Any(), false)
		fixer.EXPECT().Fix(gomock.Any(), false).Return(errors.New("disk full"))

		err := runner.Run(context.Background(), doctor.RunOptions{AutoFix: true})
		Expect(err).To(MatchError(ContainSubstring("disk full")))
	})

	It("limits checks to the requested categories", func() {
		reporter.EXPECT().Report(gomock.Len(1), false)

		Expect(runner.Run(context.Background(), doctor.RunOptions{
			Categories: []doctor.Category{doctor.CategoryBinary},
		})).To(Succeed())
	})
})
