// Package config loads and validates pipeline configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HibernalGlow/marku/internal/fileutil"
	"github.com/HibernalGlow/marku/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrUnknownStep     = errors.New("unknown pipeline step")
	ErrEmptyPipeline   = errors.New("pipeline has no steps")
)

// StepNames lists the pipeline steps a config file may reference.
var StepNames = []string{
	"consecutive-header",
	"content-dedup",
	"content-replace",
	"image-path-replacer",
	"single-orderlist-remover",
	"html2mdtable",
	"t2list",
	"title-normalize",
}

// Config holds a full pipeline configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Output   OutputConfig   `yaml:"output"`
}

// PipelineConfig defines the ordered list of transformation steps.
type PipelineConfig struct {
	Steps []StepConfig `yaml:"steps"`
}

// StepConfig defines one transformation step and its options.
// Only the fields relevant to the named step are consulted; others
// are ignored. Enabled defaults to true when omitted.
type StepConfig struct {
	Name    string `yaml:"name"`
	Enabled *bool  `yaml:"enabled"`

	// consecutive-header
	MaxLevel int `yaml:"maxLevel"`
	MinRun   int `yaml:"minRun"`

	// content-dedup
	Images bool `yaml:"images"`

	// content-replace
	Punctuation bool            `yaml:"punctuation"`
	Patterns    []PatternConfig `yaml:"patterns"`

	// image-path-replacer
	OldPrefix string `yaml:"oldPrefix"`
	NewPrefix string `yaml:"newPrefix"`

	// t2list
	Bold *bool `yaml:"bold"`

	// title-normalize
	Levels []int `yaml:"levels"`
}

// PatternConfig is one pattern/replacement pair for the content-replace
// step.
type PatternConfig struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// OutputConfig defines output rendering options.
type OutputConfig struct {
	Format string `yaml:"format"` // "markdown" or "html" (default: "markdown")
	Wrap   int    `yaml:"wrap"`   // Column to wrap paragraphs at (0 = no wrapping)
}

// IsEnabled reports whether the step should run. Steps are enabled
// unless explicitly disabled.
func (s *StepConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// Validate checks step names and output options.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if len(c.Pipeline.Steps) == 0 {
		return ErrEmptyPipeline
	}
	for i, step := range c.Pipeline.Steps {
		if step.Name == "" {
			return fmt.Errorf("pipeline.steps[%d]: name is required", i)
		}
		if !isKnownStep(step.Name) {
			return fmt.Errorf("%w: %q (known steps: %s)",
				ErrUnknownStep, step.Name, strings.Join(StepNames, ", "))
		}
		for _, level := range step.Levels {
			if level < 1 || level > 6 {
				return fmt.Errorf("pipeline.steps[%d].levels: must be between 1 and 6, got %d", i, level)
			}
		}
		for j, p := range step.Patterns {
			if p.Pattern == "" {
				return fmt.Errorf("pipeline.steps[%d].patterns[%d]: pattern is required", i, j)
			}
		}
	}
	if c.Output.Format != "" {
		switch c.Output.Format {
		case "markdown", "html":
			// valid
		default:
			return fmt.Errorf("output.format: invalid value %q (must be markdown or html)", c.Output.Format)
		}
	}
	if c.Output.Wrap < 0 {
		return fmt.Errorf("output.wrap: must be non-negative, got %d", c.Output.Wrap)
	}
	return nil
}

func isKnownStep(name string) bool {
	for _, known := range StepNames {
		if name == known {
			return true
		}
	}
	return false
}

// DefaultConfig returns a pipeline running every structural cleanup step
// with default options, rendering Markdown.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Steps: []StepConfig{
				{Name: "html2mdtable"},
				{Name: "consecutive-header"},
				{Name: "single-orderlist-remover"},
				{Name: "content-dedup"},
			},
		},
		Output: OutputConfig{Format: "markdown"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath looks like a file path, it is read directly. Otherwise
// it is treated as a config name and searched in standard locations.
// Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/marku/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "marku", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
