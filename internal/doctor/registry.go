package doctor

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Registry holds the checkers and fixers of one doctor run. It is filled
// before Run and not modified afterwards.
type Registry struct {
	checkers []HealthChecker
	fixers   map[string]Fixer
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{fixers: make(map[string]Fixer)}
}

// RegisterChecker adds a checker. Checkers of one category are reported in
// registration order, categories in order of first registration.
func (r *Registry) RegisterChecker(checker HealthChecker) {
	r.checkers = append(r.checkers, checker)
}

// RegisterFixer adds a fixer, replacing any fixer with the same ID.
func (r *Registry) RegisterFixer(fixer Fixer) {
	r.fixers[fixer.ID()] = fixer
}

// Categories lists the categories with checkers, in order of first
// registration.
func (r *Registry) Categories() []Category {
	var categories []Category

	for _, c := range r.checkers {
		if !slices.Contains(categories, c.Category()) {
			categories = append(categories, c.Category())
		}
	}

	return categories
}

// Checkers returns every checker, grouped by category.
func (r *Registry) Checkers() []HealthChecker {
	return r.CheckersForCategories(nil)
}

// CheckersForCategories returns the checkers of categories, grouped in the
// order given. Empty categories selects everything.
func (r *Registry) CheckersForCategories(categories []Category) []HealthChecker {
	if len(categories) == 0 {
		categories = r.Categories()
	}

	var out []HealthChecker

	for _, category := range categories {
		for _, c := range r.checkers {
			if c.Category() == category {
				out = append(out, c)
			}
		}
	}

	return out
}

// RunAll runs every checker concurrently. Results follow Checkers order.
func (r *Registry) RunAll(ctx context.Context) []CheckResult {
	return runCheckers(ctx, r.Checkers())
}

// RunCategory runs the checkers of one category.
func (r *Registry) RunCategory(ctx context.Context, category Category) []CheckResult {
	return runCheckers(ctx, r.CheckersForCategories([]Category{category}))
}

// GetFixer looks up a fixer by ID.
//
//nolint:ireturn // fixers are polymorphic
func (r *Registry) GetFixer(id string) (Fixer, bool) {
	fixer, ok := r.fixers[id]

	return fixer, ok
}

// CheckerCount returns the number of registered checkers.
func (r *Registry) CheckerCount() int {
	return len(r.checkers)
}

// runCheckers runs checkers concurrently. Checkers report failures as
// results, so the group never cancels early. Each result is stamped with its
// checker's category.
func runCheckers(ctx context.Context, checkers []HealthChecker) []CheckResult {
	results := make([]CheckResult, len(checkers))

	g, gctx := errgroup.WithContext(ctx)

	for i, checker := range checkers {
		g.Go(func() error {
			res := checker.Check(gctx)
			res.Category = checker.Category()
			results[i] = res

			return nil
		})
	}

	_ = g.Wait()

	return results
}
