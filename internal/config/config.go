// Package config handles the optional langtour configuration file.
//
// The file may be written in YAML (.langtour.yaml / .langtour.yml) or in
// JSON with comments (.langtour.json / .langtour.jsonc). YAML is parsed
// with gopkg.in/yaml.v3; JSON files are passed through
// github.com/tidwall/jsonc to strip comments and trailing commas before
// parsing with encoding/json.
//
// Key responsibilities:
//   - Locate the config file in the working directory
//   - Load and parse it into a Config, filling in defaults
//   - Validate field values and report every problem at once
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/langtour/internal/demo"
	"github.com/shinji-kodama/langtour/internal/model"
)

// FileNames lists the config file names searched for, in priority order.
var FileNames = []string{
	".langtour.yaml",
	".langtour.yml",
	".langtour.jsonc",
	".langtour.json",
}

// Config holds the runner settings. Every field is optional.
type Config struct {
	// Units restricts a run to these unit names. Empty means all units.
	Units []string `yaml:"units" json:"units"`

	// Skip excludes these unit names from a run.
	Skip []string `yaml:"skip" json:"skip"`

	// Categories restricts a run to units in these categories.
	Categories []string `yaml:"categories" json:"categories"`

	// TransientFile is the base name of the file used by the io units.
	TransientFile string `yaml:"transient_file" json:"transient_file"`

	// EnvVar is the variable shown by the env-user unit.
	EnvVar string `yaml:"env_var" json:"env_var"`

	// Seed seeds the random source used by sampling units. Zero means
	// seed from the clock.
	Seed int64 `yaml:"seed" json:"seed"`

	// KeepFile leaves the transient file on disk after file-write.
	KeepFile bool `yaml:"keep_file" json:"keep_file"`

	// Path is where the config was loaded from. Empty for defaults.
	Path string `yaml:"-" json:"-"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		TransientFile: demo.DefaultTransientFile,
		EnvVar:        demo.DefaultEnvVar,
	}
}

// Load reads the config file at path. The format is chosen by extension:
// .yaml/.yml are YAML, anything else is treated as JSON with comments.
//
// Returns a CLIError with ExitConfigInvalid if the file cannot be read or
// parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, model.WrapCLIError(model.ExitConfigInvalid,
				fmt.Sprintf("failed to parse config file %s", path), err)
		}
	default:
		// Strip // and /* */ comments and trailing commas before parsing.
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, model.WrapCLIError(model.ExitConfigInvalid,
				fmt.Sprintf("failed to parse config file %s", path), err)
		}
	}

	// An explicit empty value in the file falls back to the default.
	if cfg.TransientFile == "" {
		cfg.TransientFile = demo.DefaultTransientFile
	}
	if cfg.EnvVar == "" {
		cfg.EnvVar = demo.DefaultEnvVar
	}
	cfg.Path = path
	return cfg, nil
}

// Find searches dir for a config file and returns the path of the first
// one found, or "" when there is none. A missing config is not an error.
func Find(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// Resolve returns the config for a command: the explicit path when given,
// otherwise the first config file found in dir, otherwise the defaults.
func Resolve(explicitPath, dir string) (*Config, error) {
	path := explicitPath
	if path == "" {
		path = Find(dir)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// ParsedCategories converts Categories to model values. Validate reports
// unknown names, so invalid entries are dropped here.
func (c *Config) ParsedCategories() []model.Category {
	var out []model.Category
	for _, s := range c.Categories {
		if cat, err := model.ParseCategory(s); err == nil {
			out = append(out, cat)
		}
	}
	return out
}
