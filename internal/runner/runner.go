// Package runner executes demonstration units in catalog order.
//
// The runner is strictly sequential: one unit at a time, on the calling
// goroutine, with no retry and no rollback. A unit that returns an error
// has its message printed as a diagnostic line and is recorded as failed;
// the run then carries on with the next unit. Failures are also collected
// in an errutil.ErrMap so the CLI can summarize them at the end.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/nickwells/errutil.mod/errutil"

	"github.com/shinji-kodama/langtour/internal/demo"
	"github.com/shinji-kodama/langtour/internal/model"
)

// Error map categories used to group unit failures.
const (
	ErrCatIO     = "IO failure"
	ErrCatDefect = "Unexpected failure"
)

// Runner executes a catalog of units against an Env.
type Runner struct {
	units  []demo.Unit
	env    *demo.Env
	logger *slog.Logger
	errs   *errutil.ErrMap
	now    func() time.Time

	// only, skip and categories filter the catalog. Empty means no filter.
	only       []string
	skip       []string
	categories []model.Category
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for per-unit debug records.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithUnits restricts the run to the named units.
func WithUnits(names ...string) Option {
	return func(r *Runner) { r.only = append(r.only, names...) }
}

// WithSkip excludes the named units from the run.
func WithSkip(names ...string) Option {
	return func(r *Runner) { r.skip = append(r.skip, names...) }
}

// WithCategories restricts the run to units in the given categories.
func WithCategories(cats ...model.Category) Option {
	return func(r *Runner) { r.categories = append(r.categories, cats...) }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// New creates a Runner for units. env.Out is where unit output goes; each
// unit gets its own copy of env so that per-unit capture does not leak
// between units.
func New(units []demo.Unit, env *demo.Env, opts ...Option) *Runner {
	r := &Runner{
		units:  units,
		env:    env,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		errs:   errutil.NewErrMap(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Errs returns the failures collected so far, grouped by category.
func (r *Runner) Errs() *errutil.ErrMap {
	return r.errs
}

// CheckNames returns a CLIError with ExitUnitNotFound if any name is not in
// units.
func CheckNames(units []demo.Unit, names []string) error {
	var unknown []string
	for _, n := range names {
		if _, ok := demo.Lookup(units, n); !ok {
			unknown = append(unknown, n)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	return model.NewCLIError(model.ExitUnitNotFound,
		fmt.Sprintf("unknown unit(s) %s (available: %s)",
			strings.Join(quoteAll(unknown), ", "),
			strings.Join(demo.Names(units), ", ")))
}

// Run executes every selected unit in order and returns the report.
//
// The context is checked between units; a cancelled context stops the run
// and returns the partial report together with the context error. Unit
// failures never make Run return an error.
func (r *Runner) Run(ctx context.Context) (*model.RunReport, error) {
	if err := CheckNames(r.units, r.only); err != nil {
		return nil, err
	}
	if err := CheckNames(r.units, r.skip); err != nil {
		return nil, err
	}

	report := &model.RunReport{
		StartedAt: r.now().UTC(),
		Results:   make([]model.UnitResult, 0, len(r.units)),
	}

	for _, u := range r.units {
		if err := ctx.Err(); err != nil {
			r.logger.Debug("run cancelled", "before", u.Name, "error", err)
			return report, err
		}

		if !r.selected(u) {
			report.Results = append(report.Results, model.UnitResult{
				Name:     u.Name,
				Category: u.Category,
				Status:   model.StatusSkipped,
				Output:   []string{},
			})
			continue
		}

		report.Results = append(report.Results, r.runOne(u))
	}

	r.logger.Debug("run finished",
		"ok", report.Count(model.StatusOK),
		"failed", report.Failed(),
		"skipped", report.Count(model.StatusSkipped))
	return report, nil
}

// runOne executes a single unit, capturing what it prints.
func (r *Runner) runOne(u demo.Unit) model.UnitResult {
	var captured bytes.Buffer
	env := *r.env
	env.Out = io.MultiWriter(r.env.Out, &captured)
	env.Logger = r.logger.With("unit", u.Name)

	env.Logger.Debug("unit start", "category", u.Category)
	start := r.now()
	err := u.Run(&env)
	elapsed := r.now().Sub(start)

	result := model.UnitResult{
		Name:     u.Name,
		Category: u.Category,
		Status:   model.StatusOK,
		Duration: elapsed,
	}

	if err != nil {
		// The diagnostic is part of the unit's printed output.
		fmt.Fprintln(env.Out, err.Error())
		result.Status = model.StatusFailed
		result.Error = err.Error()

		var ioErr *demo.IOFailure
		if errors.As(err, &ioErr) {
			r.errs.AddError(ErrCatIO, fmt.Errorf("%s: %s %s: %w", u.Name, ioErr.Op, ioErr.Path, ioErr.Err))
			env.Logger.Warn("unit io failure", "op", ioErr.Op, "path", ioErr.Path, "error", ioErr.Err)
		} else {
			r.errs.AddError(ErrCatDefect, fmt.Errorf("%s: %w", u.Name, err))
			env.Logger.Error("unit failed unexpectedly", "error", err)
		}
	}

	result.Output = demo.SplitLines(captured.String())
	env.Logger.Debug("unit done", "status", result.Status, "duration", elapsed)
	return result
}

// selected reports whether u passes the name and category filters.
func (r *Runner) selected(u demo.Unit) bool {
	if contains(r.skip, u.Name) {
		return false
	}
	if len(r.only) > 0 && !contains(r.only, u.Name) {
		return false
	}
	if len(r.categories) > 0 {
		for _, c := range r.categories {
			if u.Category == c {
				return true
			}
		}
		return false
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func quoteAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, fmt.Sprintf("%q", s))
	}
	return out
}
