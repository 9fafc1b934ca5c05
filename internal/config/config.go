// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Template  string `json:"template,omitempty" validate:"omitempty,file"`   // Path to LaTeX template override
	OutputDir string `json:"output_dir,omitempty" validate:"omitempty,dir"`  // Directory for generated artifacts
	ReportDir string `json:"report_dir,omitempty" validate:"omitempty,dir"`  // Directory for saved JSON reports

	// Build
	Engine  string `json:"engine,omitempty" validate:"omitempty,oneof=latex chrome"` // PDF engine
	KeepAux bool   `json:"keep_aux,omitempty"` // Keep .aux/.log files after a LaTeX build
	// TwoPasses controls whether xelatex runs twice so cross-references
	// resolve. A pointer so "unset" can fall back to the default of true.
	TwoPasses *bool `json:"two_passes,omitempty"`

	// Analysis
	MaxPages      int `json:"max_pages,omitempty" validate:"omitempty,min=1"`       // Page limit enforced after a build
	ScoreWarnAt   int `json:"score_warn_at,omitempty" validate:"omitempty,min=0,max=100"` // Exit nonzero below this score
	MaxLineBreaks int `json:"max_line_breaks,omitempty" validate:"omitempty,min=1"` // Threshold for the excessive line break issue

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed debug information
	SaveText bool `json:"save_text,omitempty"` // Include extracted text in saved reports
}

var validate = newValidator()

// newValidator builds a validator that reports fields by their JSON names,
// so error messages match what users actually wrote in the config file.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read, parsed, or validated.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: field %q failed %q validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.ReportDir == "" {
		result.ReportDir = defaults.ReportDir
	}
	if result.Engine == "" {
		result.Engine = defaults.Engine
	}

	// Int fields: use default if zero
	if result.MaxPages == 0 {
		result.MaxPages = defaults.MaxPages
	}
	if result.ScoreWarnAt == 0 {
		result.ScoreWarnAt = defaults.ScoreWarnAt
	}
	if result.MaxLineBreaks == 0 {
		result.MaxLineBreaks = defaults.MaxLineBreaks
	}

	if result.TwoPasses == nil {
		result.TwoPasses = defaults.TwoPasses
	}

	// Plain bool fields: cannot distinguish unset from false, so we don't
	// merge them (CLI flags should always win for bools)

	return result
}
