// Package model defines the domain types for the langtour CLI.
//
// Every demonstration unit is described by a UnitInfo value built once when
// the catalog is constructed. Running a unit produces a UnitResult; a whole
// run produces a RunReport. None of these values outlive the process.
package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Category groups demonstration units by the language behavior they show.
type Category string

const (
	// CategoryControl covers conditionals, loops and case expressions.
	CategoryControl Category = "control"

	// CategoryTruthiness covers which values count as true or false and
	// the case-equality relation.
	CategoryTruthiness Category = "truthiness"

	// CategoryFunctions covers variadic parameters and block passing.
	CategoryFunctions Category = "functions"

	// CategoryIO covers the transient file and environment lookups.
	// Units in this category are the only ones allowed to fail.
	CategoryIO Category = "io"

	// CategoryStrings covers quoting and method-name introspection.
	CategoryStrings Category = "strings"

	// CategoryCollections covers arrays, stacks, queues and ranges.
	CategoryCollections Category = "collections"

	// CategoryHashes covers hash literals and default-value idioms.
	CategoryHashes Category = "hashes"

	// CategoryScope covers local, constant and block scoping.
	CategoryScope Category = "scope"

	// CategoryAccess covers private methods.
	CategoryAccess Category = "access"
)

// Categories lists every category in catalog order.
var Categories = []Category{
	CategoryControl,
	CategoryTruthiness,
	CategoryFunctions,
	CategoryIO,
	CategoryStrings,
	CategoryCollections,
	CategoryHashes,
	CategoryScope,
	CategoryAccess,
}

// String returns the string representation of Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks whether the Category value is one of the predefined
// categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a string to a Category.
// Returns an error if the string does not match any valid category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		names := make([]string, 0, len(Categories))
		for _, known := range Categories {
			names = append(names, known.String())
		}
		return "", fmt.Errorf("invalid category: %q (valid: %s)", s, strings.Join(names, ", "))
	}
	return c, nil
}

// Status is the outcome of a single unit within a run.
type Status string

const (
	// StatusOK indicates the unit ran to completion.
	StatusOK Status = "ok"

	// StatusFailed indicates the unit returned an error. The error was
	// reported as a diagnostic and the run continued with the next unit.
	StatusFailed Status = "failed"

	// StatusSkipped indicates the unit was filtered out of the run.
	StatusSkipped Status = "skipped"
)

// String returns the string representation of Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks whether the Status value is one of the predefined states.
func (s Status) IsValid() bool {
	switch s {
	case StatusOK, StatusFailed, StatusSkipped:
		return true
	default:
		return false
	}
}

// UnitInfo describes a demonstration unit. It is static metadata; the
// behavior lives in the demo package.
type UnitInfo struct {
	// Name is the unique identifier of the unit (e.g., "while-modifier").
	Name string `json:"name" yaml:"name"`

	// Category is the group this unit belongs to.
	Category Category `json:"category" yaml:"category"`

	// Summary is a one-line description shown by the list command.
	Summary string `json:"summary" yaml:"summary"`

	// Expected holds the output lines a deterministic unit prints.
	// For sampled units it holds a placeholder description instead.
	Expected []string `json:"expected" yaml:"expected"`

	// Sampled marks units whose output depends on random sampling. Only
	// the length and membership of their output is stable between runs.
	Sampled bool `json:"sampled" yaml:"sampled"`
}

// nameRegex validates unit names: lowercase alphanumeric words joined by
// single hyphens.
var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateName checks if the given name is a valid unit name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("unit name must not be empty")
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("invalid unit name %q: must be lowercase alphanumeric words separated by hyphens", name)
	}
	return nil
}

// Validate checks that the UnitInfo is well formed.
func (u *UnitInfo) Validate() error {
	if err := ValidateName(u.Name); err != nil {
		return err
	}
	if !u.Category.IsValid() {
		return fmt.Errorf("unit %q: invalid category %q", u.Name, u.Category)
	}
	if u.Summary == "" {
		return fmt.Errorf("unit %q: summary must not be empty", u.Name)
	}
	return nil
}

// UnitResult records what happened when a unit was executed.
type UnitResult struct {
	// Name and Category are copied from the unit's UnitInfo.
	Name     string   `json:"name"`
	Category Category `json:"category"`

	// Status is the outcome of the unit.
	Status Status `json:"status"`

	// Output holds the lines the unit printed, without trailing newlines.
	Output []string `json:"output"`

	// Error is the diagnostic message for failed units.
	Error string `json:"error,omitempty"`

	// Duration is how long the unit took to run.
	Duration time.Duration `json:"duration"`
}

// RunReport is the result of one runner invocation.
type RunReport struct {
	// StartedAt is when the run began.
	StartedAt time.Time `json:"startedAt"`

	// Results holds one entry per unit in catalog order, including
	// skipped units.
	Results []UnitResult `json:"results"`
}

// Count returns the number of results with the given status.
func (r *RunReport) Count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Failed returns the number of units that reported a failure.
func (r *RunReport) Failed() int {
	return r.Count(StatusFailed)
}

// Result returns the result for the named unit, or nil if the unit is not
// part of the report.
func (r *RunReport) Result(name string) *UnitResult {
	for i := range r.Results {
		if r.Results[i].Name == name {
			return &r.Results[i]
		}
	}
	return nil
}

// ExitCode defines standard CLI exit codes. These codes allow scripts to
// programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully. A run in
	// which an io unit reported a failure still completes normally.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigInvalid indicates the configuration file could not be read
	// or failed validation.
	ExitConfigInvalid ExitCode = 2

	// ExitUnitNotFound indicates a requested unit name does not exist.
	ExitUnitNotFound ExitCode = 3

	// ExitVerifyFailed indicates that verify found output that does not
	// match the expected output.
	ExitVerifyFailed ExitCode = 4

	// ExitUserCancelled indicates the user cancelled an interactive prompt.
	ExitUserCancelled ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
