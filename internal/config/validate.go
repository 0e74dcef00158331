package config

import (
	"fmt"
	"strings"

	"github.com/shinji-kodama/langtour/internal/demo"
	"github.com/shinji-kodama/langtour/internal/model"
)

// ValidationError represents a specific problem with one config field.
type ValidationError struct {
	// Field is the config key that failed validation (e.g., "skip").
	Field string

	// Message describes what's wrong with the field value.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// Validate checks the config against the unit catalog and returns every
// problem found (empty list = valid configuration).
//
// Checks performed:
//   - units and skip only name units that exist
//   - no unit is both selected and skipped
//   - categories are known
//   - transient_file is a plain file name, not a path
//   - env_var is a plausible variable name
func (c *Config) Validate(units []demo.Unit) []ValidationError {
	var errs []ValidationError

	known := make(map[string]bool, len(units))
	for _, u := range units {
		known[u.Name] = true
	}

	for _, name := range c.Units {
		if !known[name] {
			errs = append(errs, ValidationError{
				Field:   "units",
				Message: fmt.Sprintf("unknown unit %q", name),
			})
		}
	}

	selected := make(map[string]bool, len(c.Units))
	for _, name := range c.Units {
		selected[name] = true
	}
	for _, name := range c.Skip {
		if !known[name] {
			errs = append(errs, ValidationError{
				Field:   "skip",
				Message: fmt.Sprintf("unknown unit %q", name),
			})
		}
		if selected[name] {
			errs = append(errs, ValidationError{
				Field:   "skip",
				Message: fmt.Sprintf("unit %q is both selected and skipped", name),
			})
		}
	}

	for _, cat := range c.Categories {
		if _, err := model.ParseCategory(cat); err != nil {
			errs = append(errs, ValidationError{
				Field:   "categories",
				Message: err.Error(),
			})
		}
	}

	switch {
	case c.TransientFile == "":
		errs = append(errs, ValidationError{
			Field:   "transient_file",
			Message: "must not be empty",
		})
	case strings.ContainsAny(c.TransientFile, `/\`) || c.TransientFile == "." || c.TransientFile == "..":
		errs = append(errs, ValidationError{
			Field:   "transient_file",
			Message: fmt.Sprintf("%q must be a file name, not a path", c.TransientFile),
		})
	}

	if c.EnvVar == "" || strings.ContainsAny(c.EnvVar, "= \t\n") {
		errs = append(errs, ValidationError{
			Field:   "env_var",
			Message: fmt.Sprintf("%q is not a valid environment variable name", c.EnvVar),
		})
	}

	return errs
}

// ValidationSummary joins validation errors into one message.
func ValidationSummary(errs []ValidationError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}
