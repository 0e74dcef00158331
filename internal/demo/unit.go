// Package demo contains the catalog of demonstration units.
//
// Each unit is an independent, self-contained snippet that illustrates one
// language behavior and prints its result through an Env. Units share no
// mutable state: the only thing visible across units is the package-level
// constant used by the scope demonstrations.
//
// Only units in the io category touch the outside world. They report
// failures by returning an *IOFailure, which the runner turns into a
// printed diagnostic before moving on to the next unit.
package demo

import (
	"fmt"
	"strings"

	"github.com/shinji-kodama/langtour/internal/model"
)

// Unit is one demonstration: static metadata plus the code that runs it.
type Unit struct {
	model.UnitInfo

	// Run executes the unit, printing to env.Out. A non-nil error means
	// the unit failed; only io units are expected to return one.
	Run func(env *Env) error

	// Check validates the printed lines of units whose output is not fully
	// deterministic. When nil, the output must equal Expected exactly.
	Check func(lines []string) error
}

// Verify checks the lines printed by u.
func (u Unit) Verify(lines []string) error {
	if u.Check != nil {
		return u.Check(lines)
	}
	return matchLines(u.Expected, lines)
}

// matchLines reports the first difference between the expected and actual
// output.
func matchLines(want, got []string) error {
	if len(want) != len(got) {
		return fmt.Errorf("expected %d line(s), got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if want[i] != got[i] {
			return fmt.Errorf("line %d: expected %q, got %q", i+1, want[i], got[i])
		}
	}
	return nil
}

// IOFailure is the one error kind a unit is allowed to produce: a file or
// environment operation that failed. It is reported, never fatal.
type IOFailure struct {
	// Op is the operation that failed, e.g. "open" or "write".
	Op string

	// Path is the file involved, if any.
	Path string

	// Err is the underlying error.
	Err error
}

// Error returns the underlying error message, which is what gets printed
// as the diagnostic.
func (e *IOFailure) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *IOFailure) Unwrap() error {
	return e.Err
}

func ioFailure(op, path string, err error) *IOFailure {
	return &IOFailure{Op: op, Path: path, Err: err}
}

// SplitLines turns captured output into lines without their terminators.
// A trailing newline does not produce an extra empty line.
func SplitLines(out string) []string {
	if out == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}
