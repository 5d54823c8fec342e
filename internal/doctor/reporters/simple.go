// Package reporters prints doctor results as a checklist or a table.
package reporters

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/smykla-skalski/anot/internal/doctor"
)

const header = "Checking anot health..."

var categoryNames = map[doctor.Category]string{
	doctor.CategoryBinary:   "Binary",
	doctor.CategoryConfig:   "Preferences",
	doctor.CategoryClaude:   "Claude Code",
	doctor.CategoryCodex:    "Codex",
	doctor.CategoryDelivery: "Delivery",
}

// SimpleReporter prints a plain checklist, for pipes and dumb terminals.
type SimpleReporter struct {
	out io.Writer
}

// NewSimpleReporter creates a SimpleReporter writing to out.
func NewSimpleReporter(out io.Writer) *SimpleReporter {
	return &SimpleReporter{out: out}
}

// Report prints each category with its results, then a summary line.
func (r *SimpleReporter) Report(results []doctor.CheckResult, verbose bool) {
	fmt.Fprintln(r.out, header)
	fmt.Fprintln(r.out)

	for _, g := range GroupResultsByCategory(results) {
		fmt.Fprintf(r.out, "%s:\n", getCategoryName(g.Category))

		for _, res := range g.Results {
			r.printResult(res, verbose)
		}

		fmt.Fprintln(r.out)
	}

	c := countResults(results)
	fmt.Fprintf(r.out, "Summary: %d error(s), %d warning(s), %d passed\n", c.errors, c.warnings, c.passed)
}

func (r *SimpleReporter) printResult(res doctor.CheckResult, verbose bool) {
	line := fmt.Sprintf("  %s %s", checklistIcon(res), res.Name)
	if res.Message != "" {
		line += " - " + res.Message
	}

	fmt.Fprintln(r.out, line)

	if verbose {
		for _, detail := range res.Details {
			fmt.Fprintf(r.out, "     %s\n", detail)
		}
	}

	if res.HasFix() && res.Status == doctor.StatusFail {
		fmt.Fprintln(r.out, "     → Run: anot doctor --fix")
	}
}

func checklistIcon(res doctor.CheckResult) string {
	switch {
	case res.IsPassed():
		return "✅"
	case res.IsSkipped():
		return "⊘"
	case res.IsError():
		return "❌"
	case res.IsWarning():
		return "⚠️"
	case res.Status == doctor.StatusFail:
		return "ℹ️"
	default:
		return "?"
	}
}

// CategoryGroup is the results of one category, in check order.
type CategoryGroup struct {
	Category doctor.Category
	Results  []doctor.CheckResult
}

// GroupResultsByCategory groups results in display order. Categories doctor
// does not know follow alphabetically.
func GroupResultsByCategory(results []doctor.CheckResult) []CategoryGroup {
	byCategory := make(map[doctor.Category][]doctor.CheckResult)

	var extra []doctor.Category

	for _, res := range results {
		if _, seen := byCategory[res.Category]; !seen && !slices.Contains(doctor.AllCategories, res.Category) {
			extra = append(extra, res.Category)
		}

		byCategory[res.Category] = append(byCategory[res.Category], res)
	}

	slices.Sort(extra)

	groups := make([]CategoryGroup, 0, len(byCategory))

	for _, cat := range append(slices.Clone(doctor.AllCategories), extra...) {
		if rs, ok := byCategory[cat]; ok {
			groups = append(groups, CategoryGroup{Category: cat, Results: rs})
		}
	}

	return groups
}

func getCategoryName(category doctor.Category) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}

	if category == "" {
		return "Other"
	}

	s := string(category)

	return strings.ToUpper(s[:1]) + s[1:]
}

type resultCounts struct {
	errors, warnings, passed, skipped int
}

func countResults(results []doctor.CheckResult) resultCounts {
	var c resultCounts

	for _, res := range results {
		switch {
		case res.IsPassed():
			c.passed++
		case res.IsSkipped():
			c.skipped++
		case res.IsError():
			c.errors++
		case res.IsWarning():
			c.warnings++
		}
	}

	return c
}
