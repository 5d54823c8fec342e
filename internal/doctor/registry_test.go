package doctor_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/smykla-skalski/anot/internal/doctor"
)

var _ = Describe("Registry", func() {
	var registry *doctor.Registry

	BeforeEach(func() {
		registry = doctor.NewRegistry()
		registry.RegisterChecker(&stubChecker{name: "prefs", category: doctor.CategoryConfig})
		registry.RegisterChecker(&stubChecker{name: "bin", category: doctor.CategoryBinary})
		registry.RegisterChecker(&stubChecker{name: "hooks-user", category: doctor.CategoryClaude})
		registry.RegisterChecker(&stubChecker{name: "hooks-project", category: doctor.CategoryClaude})
	})

	Describe("Checkers", func() {
		It("returns all registered checkers grouped by first registration", func() {
			names := []string{}
			for _, c := range registry.Checkers() {
				names = append(names, c.Name())
			}

			Expect(names).To(Equal([]string{"prefs", "bin", "hooks-user", "hooks-project"}))
		})
	})

	Describe("CheckersForCategories", func() {
		It("returns checkers for specified categories", func() {
			checkers := registry.CheckersForCategories([]doctor.Category{doctor.CategoryClaude})
			Expect(checkers).To(HaveLen(2))

			for _, c := range checkers {
				Expect(c.Category()).To(Equal(doctor.CategoryClaude))
			}
		})

		It("returns all checkers when categories is empty", func() {
			Expect(registry.CheckersForCategories(nil)).To(HaveLen(4))
		})

		It("returns empty slice for unknown category", func() {
			Expect(registry.CheckersForCategories([]doctor.Category{"nonexistent"})).To(BeEmpty())
		})
	})

	Describe("RunAll", func() {
		It("keeps registration order and stamps categories", func() {
			results := registry.RunAll(context.Background())
			Expect(results).To(HaveLen(4))
			Expect(results[0].Name).To(Equal("prefs"))
			Expect(results[0].Category).To(Equal(doctor.CategoryConfig))
			Expect(results[3].Name).To(Equal("hooks-project"))
			Expect(results[3].Category).To(Equal(doctor.CategoryClaude))
		})
	})

	Describe("RunCategory", func() {
		It("runs only the category's checkers", func() {
			results := registry.RunCategory(context.Background(), doctor.CategoryBinary)
			Expect(results).To(HaveLen(1))
			Expect(results[0].Name).To(Equal("bin"))
		})
	})

	Describe("GetFixer", func() {
		It("finds fixers by ID", func() {
			fixer := doctor.NewMockFixer(gomock.NewController(GinkgoT()))
			fixer.EXPECT().ID().Return(doctor.FixInstallIcons).AnyTimes()
			registry.RegisterFixer(fixer)

			got, ok := registry.GetFixer(doctor.FixInstallIcons)
			Expect(ok).To(BeTrue())
			Expect(got).To(BeIdenticalTo(fixer))

			_, ok = registry.GetFixer(doctor.FixResetPreferences)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Categories", func() {
		It("lists categories in registration order", func() {
			Expect(registry.Categories()).To(Equal([]doctor.Category{
				doctor.CategoryConfig,
				doctor.CategoryBinary,
				doctor.CategoryClaude,
			}))
			Expect(registry.CheckerCount()).To(Equal(4))
		})
	})
})
