package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCategory_String verifies that Category values produce the expected
// string representations for CLI output and JSON serialization.
func TestCategory_String(t *testing.T) {
	tests := []struct {
		category Category
		expected string
	}{
		{CategoryControl, "control"},
		{CategoryTruthiness, "truthiness"},
		{CategoryIO, "io"},
		{CategoryAccess, "access"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.category.String())
		})
	}
}

// TestCategory_IsValid checks that only defined categories pass validation.
func TestCategory_IsValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.IsValid(), "category %q should be valid", c)
	}
	assert.False(t, Category("network").IsValid())
	assert.False(t, Category("").IsValid())
}

// TestParseCategory verifies string-to-category conversion,
// including case normalization and error cases.
func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
		hasError bool
	}{
		{"control", CategoryControl, false},
		{"Scope", CategoryScope, false},    // case insensitive
		{" hashes ", CategoryHashes, false}, // surrounding space
		{"IO", CategoryIO, false},
		{"invalid", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseCategory(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "valid:")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestStatus_IsValid checks that only defined status values pass validation.
func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusOK.IsValid())
	assert.True(t, StatusFailed.IsValid())
	assert.True(t, StatusSkipped.IsValid())
	assert.False(t, Status("pending").IsValid())
	assert.Equal(t, "failed", StatusFailed.String())
}

// TestValidateName checks unit name validation rules.
func TestValidateName(t *testing.T) {
	tests := []struct {
		name     string
		hasError bool
	}{
		{"range-each", false},
		{"a", false},
		{"case-as-if", false},
		{"unit2", false},
		{"", true},
		{"-unless", true},
		{"unless-", true},
		{"file--read", true},
		{"File-Read", true},
		{"file_read", true},
		{"file read", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestUnitInfo_Validate checks the whole-struct validation.
func TestUnitInfo_Validate(t *testing.T) {
	valid := UnitInfo{Name: "unless", Category: CategoryControl, Summary: "negated if"}
	assert.NoError(t, valid.Validate())

	badCategory := valid
	badCategory.Category = "loops"
	assert.Error(t, badCategory.Validate())

	noSummary := valid
	noSummary.Summary = ""
	assert.Error(t, noSummary.Validate())

	badName := valid
	badName.Name = "Unless"
	assert.Error(t, badName.Validate())
}

// TestRunReport_Counts verifies the status counting helpers and lookup.
func TestRunReport_Counts(t *testing.T) {
	report := &RunReport{
		StartedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Results: []UnitResult{
			{Name: "unless", Status: StatusOK},
			{Name: "file-read", Status: StatusFailed, Error: "permission denied"},
			{Name: "env-user", Status: StatusSkipped},
			{Name: "file-write", Status: StatusFailed},
		},
	}

	assert.Equal(t, 1, report.Count(StatusOK))
	assert.Equal(t, 2, report.Failed())
	assert.Equal(t, 1, report.Count(StatusSkipped))

	res := report.Result("file-read")
	require.NotNil(t, res)
	assert.Equal(t, "permission denied", res.Error)
	assert.Nil(t, report.Result("missing"))
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitUnitNotFound, "unit \"nope\" not found")
		assert.Equal(t, ExitUnitNotFound, err.Code)
		assert.Equal(t, "unit \"nope\" not found", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("yaml: line 3: did not find expected key")
		err := WrapCLIError(ExitConfigInvalid, "failed to parse config", inner)
		assert.Equal(t, ExitConfigInvalid, err.Code)
		assert.Contains(t, err.Error(), "did not find expected key")
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("boom")
		err := WrapCLIError(ExitGeneralError, "failed", inner)
		assert.True(t, errors.Is(err, inner))

		var cliErr *CLIError
		assert.True(t, errors.As(error(err), &cliErr))
	})
}
