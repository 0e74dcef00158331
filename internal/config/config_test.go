package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/langtour/internal/demo"
	"github.com/shinji-kodama/langtour/internal/model"
)

// writeFile creates name inside dir with the given content and returns its
// path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// --- Load tests ---

// TestLoad_YAML verifies every field is read from a YAML config.
func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".langtour.yaml", `
units: [range-each, truthiness]
skip:
  - env-user
categories: [control]
transient_file: demo.txt
env_var: LOGNAME
seed: 42
keep_file: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"range-each", "truthiness"}, cfg.Units)
	assert.Equal(t, []string{"env-user"}, cfg.Skip)
	assert.Equal(t, []string{"control"}, cfg.Categories)
	assert.Equal(t, "demo.txt", cfg.TransientFile)
	assert.Equal(t, "LOGNAME", cfg.EnvVar)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.KeepFile)
	assert.Equal(t, path, cfg.Path)
}

// TestLoad_JSONC verifies that comments and trailing commas are accepted.
func TestLoad_JSONC(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".langtour.jsonc", `{
  // only the scope demonstrations
  "categories": ["scope", "access"],
  /* deterministic sampling */
  "seed": 7,
}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"scope", "access"}, cfg.Categories)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, demo.DefaultTransientFile, cfg.TransientFile, "unset fields keep their defaults")
	assert.Equal(t, demo.DefaultEnvVar, cfg.EnvVar)
}

// TestLoad_EmptyValuesFallBack verifies explicit empty strings are
// replaced by defaults.
func TestLoad_EmptyValuesFallBack(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cfg.yml", "transient_file: \"\"\nenv_var: \"\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, demo.DefaultTransientFile, cfg.TransientFile)
	assert.Equal(t, demo.DefaultEnvVar, cfg.EnvVar)
}

// TestLoad_Errors verifies that read and parse failures carry
// ExitConfigInvalid.
func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"bad yaml", writeFile(t, dir, "bad.yaml", "units: [unclosed\n")},
		{"bad json", writeFile(t, dir, "bad.json", `{"seed": "not a number"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr))
			assert.Equal(t, model.ExitConfigInvalid, cliErr.Code)
		})
	}
}

// --- Find / Resolve tests ---

// TestFind_PriorityOrder verifies YAML wins over JSON when both exist.
func TestFind_PriorityOrder(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "", Find(dir), "no config is not an error")

	jsonPath := writeFile(t, dir, ".langtour.json", `{}`)
	assert.Equal(t, jsonPath, Find(dir))

	yamlPath := writeFile(t, dir, ".langtour.yaml", "seed: 1\n")
	assert.Equal(t, yamlPath, Find(dir))
}

// TestFind_IgnoresDirectories verifies a directory with a config name is
// skipped.
func TestFind_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".langtour.yaml"), 0o755))
	assert.Equal(t, "", Find(dir))
}

// TestResolve covers explicit, discovered and default configs.
func TestResolve(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Resolve("", dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	writeFile(t, dir, ".langtour.yml", "seed: 3\n")
	cfg, err = Resolve("", dir)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cfg.Seed)

	explicit := writeFile(t, t.TempDir(), "other.yaml", "seed: 9\n")
	cfg, err = Resolve(explicit, dir)
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Seed)

	_, err = Resolve(filepath.Join(dir, "missing.yaml"), dir)
	assert.Error(t, err, "an explicit path must exist")
}

// --- Validate tests ---

// TestValidate checks each validation rule in isolation.
func TestValidate(t *testing.T) {
	units := demo.Catalog()

	tests := []struct {
		name   string
		mutate func(c *Config)
		fields []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "known units and categories",
			mutate: func(c *Config) { c.Units = []string{"unless"}; c.Categories = []string{"Control"} },
		},
		{
			name:   "unknown unit",
			mutate: func(c *Config) { c.Units = []string{"goto"} },
			fields: []string{"units"},
		},
		{
			name:   "unknown skipped unit",
			mutate: func(c *Config) { c.Skip = []string{"goto"} },
			fields: []string{"skip"},
		},
		{
			name:   "selected and skipped",
			mutate: func(c *Config) { c.Units = []string{"unless"}; c.Skip = []string{"unless"} },
			fields: []string{"skip"},
		},
		{
			name:   "unknown category",
			mutate: func(c *Config) { c.Categories = []string{"network"} },
			fields: []string{"categories"},
		},
		{
			name:   "empty transient file",
			mutate: func(c *Config) { c.TransientFile = "" },
			fields: []string{"transient_file"},
		},
		{
			name:   "transient file with a path",
			mutate: func(c *Config) { c.TransientFile = "../text.txt" },
			fields: []string{"transient_file"},
		},
		{
			name:   "bad env var",
			mutate: func(c *Config) { c.EnvVar = "A=B" },
			fields: []string{"env_var"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate(units)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

// TestValidationError_Message checks formatting helpers.
func TestValidationError_Message(t *testing.T) {
	e := &ValidationError{Field: "skip", Message: `unknown unit "goto"`}
	assert.Equal(t, `config validation error: skip: unknown unit "goto"`, e.Error())

	summary := ValidationSummary([]ValidationError{
		{Field: "units", Message: "a"},
		{Field: "skip", Message: "b"},
	})
	assert.Equal(t, "units: a; skip: b", summary)
}

// TestParsedCategories drops unknown names and normalizes case.
func TestParsedCategories(t *testing.T) {
	cfg := &Config{Categories: []string{"IO", "bogus", "scope"}}
	assert.Equal(t, []model.Category{model.CategoryIO, model.CategoryScope}, cfg.ParsedCategories())
}
