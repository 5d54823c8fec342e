package doctor

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/internal/prompt"
	"github.com/smykla-skalski/anot/pkg/logger"
)

// ErrChecksFailed is returned when at least one check ends with an error.
var ErrChecksFailed = errors.New("health checks failed")

// RunOptions configures a doctor run.
type RunOptions struct {
	// Verbose shows result details.
	Verbose bool

	// AutoFix applies every available fix without asking (--fix).
	AutoFix bool

	// Interactive asks before each fix. AutoFix wins when both are set.
	Interactive bool

	// Categories limits the run; empty means every category.
	Categories []Category
}

type fixMode int

const (
	fixSuggest fixMode = iota
	fixAsk
	fixAuto
)

func (o RunOptions) fixMode() fixMode {
	switch {
	case o.AutoFix:
		return fixAuto
	case o.Interactive:
		return fixAsk
	default:
		return fixSuggest
	}
}

// Runner checks, reports, and repairs what it can.
type Runner struct {
	registry *Registry
	reporter Reporter
	prompter prompt.Prompter
	out      io.Writer
	log      logger.Logger
}

// NewRunner creates a Runner. prompter is only used in interactive mode.
func NewRunner(
	registry *Registry,
	reporter Reporter,
	prompter prompt.Prompter,
	out io.Writer,
	log logger.Logger,
) *Runner {
	return &Runner{
		registry: registry,
		reporter: reporter,
		prompter: prompter,
		out:      out,
		log:      log,
	}
}

// Run reports every check, then suggests or applies fixes. When a fix was
// applied the affected checks run again and their report replaces the
// original results. It returns ErrChecksFailed while errors remain.
func (r *Runner) Run(ctx context.Context, opts RunOptions) error {
	results := r.check(ctx, opts.Categories)

	r.log.Info("checks completed", "total", len(results))
	r.reporter.Report(results, opts.Verbose)

	fixable := fixableResults(results)
	if len(fixable) == 0 {
		return r.verdict(results)
	}

	mode := opts.fixMode()
	if mode == fixSuggest {
		r.suggest(fixable)

		return r.verdict(results)
	}

	applied, err := r.fix(ctx, fixable, mode)
	if err != nil {
		return errors.Wrap(err, "failed to apply fixes")
	}

	if len(applied) == 0 {
		return r.verdict(results)
	}

	// A fixed check usually passes without a FixID, so match by name.
	touched := make(map[string]bool)

	for _, res := range results {
		if res.Status == StatusFail && applied[res.FixID] {
			touched[res.Name] = true
		}
	}

	var rerun []CheckResult

	for _, res := range r.check(ctx, opts.Categories) {
		if touched[res.Name] {
			rerun = append(rerun, res)
		}
	}

	r.reporter.Report(rerun, opts.Verbose)

	return r.verdict(replaceByName(results, rerun))
}

func (r *Runner) check(ctx context.Context, categories []Category) []CheckResult {
	return runCheckers(ctx, r.registry.CheckersForCategories(categories))
}

// fix runs the fixer of each result and returns the fix ids applied.
func (r *Runner) fix(ctx context.Context, fixable []CheckResult, mode fixMode) (map[string]bool, error) {
	applied := make(map[string]bool)

	for _, res := range fixable {
		fixer, ok := r.registry.GetFixer(res.FixID)
		if !ok {
			r.log.Error("fixer not found", "fixID", res.FixID)

			continue
		}

		if mode == fixAsk {
			ok, err := r.prompter.Confirm(fmt.Sprintf("Apply fix for %q?", res.Name), true)
			if err != nil {
				return nil, errors.Wrap(err, "failed to get user confirmation")
			}

			if !ok {
				r.log.Info("fix skipped by user", "check", res.Name)

				continue
			}
		}

		r.log.Info("applying fix", "check", res.Name, "fixer", fixer.ID())

		if err := fixer.Fix(ctx, mode == fixAsk); err != nil {
			return nil, errors.Wrapf(err, "failed to fix %q", res.Name)
		}

		applied[res.FixID] = true
	}

	return applied, nil
}

func (r *Runner) suggest(fixable []CheckResult) {
	fmt.Fprintln(r.out, "\nSuggested fixes:")

	for _, res := range fixable {
		if fixer, ok := r.registry.GetFixer(res.FixID); ok {
			fmt.Fprintf(r.out, "  - %s: %s\n", res.Name, fixer.Description())
		}
	}

	fmt.Fprintln(r.out, "\nRun 'anot doctor --fix' to apply fixes automatically")
}

func (r *Runner) verdict(results []CheckResult) error {
	var errs, warnings int

	for _, res := range results {
		switch {
		case res.IsError():
			errs++
		case res.IsWarning():
			warnings++
		}
	}

	r.log.Info("doctor finished", "errors", errs, "warnings", warnings, "total", len(results))

	if errs == 0 {
		return nil
	}

	return errors.WithHint(
		errors.Wrapf(ErrChecksFailed, "%d error(s)", errs),
		"Run 'anot doctor --fix' to repair what can be repaired automatically",
	)
}

// fixableResults keeps one failed result per fix id.
func fixableResults(results []CheckResult) []CheckResult {
	var fixable []CheckResult

	seen := make(map[string]bool)

	for _, res := range results {
		if res.Status == StatusFail && res.HasFix() && !seen[res.FixID] {
			seen[res.FixID] = true
			fixable = append(fixable, res)
		}
	}

	return fixable
}

func replaceByName(results, updates []CheckResult) []CheckResult {
	byName := make(map[string]CheckResult, len(updates))
	for _, res := range updates {
		byName[res.Name] = res
	}

	out := make([]CheckResult, len(results))

	for i, res := range results {
		if updated, ok := byName[res.Name]; ok {
			res = updated
		}

		out[i] = res
	}

	return out
}
