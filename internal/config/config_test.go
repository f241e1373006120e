package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if len(cfg.Pipeline.Steps) == 0 {
		t.Fatal("default pipeline has no steps")
	}
	for _, step := range cfg.Pipeline.Steps {
		if !step.IsEnabled() {
			t.Errorf("default step %q is disabled", step.Name)
		}
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "markdown")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "empty pipeline",
			cfg:     Config{},
			wantErr: ErrEmptyPipeline,
		},
		{
			name: "unknown step name",
			cfg: Config{Pipeline: PipelineConfig{Steps: []StepConfig{
				{Name: "no-such-step"},
			}}},
			wantErr: ErrUnknownStep,
		},
		{
			name: "valid single step",
			cfg: Config{Pipeline: PipelineConfig{Steps: []StepConfig{
				{Name: "content-dedup"},
			}}},
		},
		{
			name: "all known steps",
			cfg: func() Config {
				var steps []StepConfig
				for _, name := range StepNames {
					steps = append(steps, StepConfig{Name: name})
				}
				return Config{Pipeline: PipelineConfig{Steps: steps}}
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	step := func(s StepConfig) Config {
		return Config{Pipeline: PipelineConfig{Steps: []StepConfig{s}}}
	}

	cfg := step(StepConfig{Name: ""})
	if err := cfg.Validate(); err == nil {
		t.Error("empty step name accepted")
	}

	cfg = step(StepConfig{Name: "title-normalize", Levels: []int{7}})
	if err := cfg.Validate(); err == nil {
		t.Error("out-of-range level accepted")
	}

	cfg = step(StepConfig{Name: "content-replace", Patterns: []PatternConfig{{Replacement: "x"}}})
	if err := cfg.Validate(); err == nil {
		t.Error("empty replacement pattern accepted")
	}

	cfg = step(StepConfig{Name: "content-dedup"})
	cfg.Output.Format = "pdf"
	if err := cfg.Validate(); err == nil {
		t.Error("invalid output format accepted")
	}

	cfg = step(StepConfig{Name: "content-dedup"})
	cfg.Output.Wrap = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative wrap accepted")
	}
}

func TestStepIsEnabled(t *testing.T) {
	var s StepConfig
	if !s.IsEnabled() {
		t.Error("step with no enabled field should run")
	}

	on, off := true, false
	s.Enabled = &on
	if !s.IsEnabled() {
		t.Error("explicitly enabled step should run")
	}
	s.Enabled = &off
	if s.IsEnabled() {
		t.Error("explicitly disabled step should not run")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.yaml")
	content := `pipeline:
  steps:
    - name: html2mdtable
    - name: consecutive-header
      maxLevel: 3
      minRun: 2
    - name: content-dedup
      enabled: false
      images: true
output:
  format: markdown
  wrap: 80
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if len(cfg.Pipeline.Steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(cfg.Pipeline.Steps))
	}
	if cfg.Pipeline.Steps[1].MaxLevel != 3 {
		t.Errorf("steps[1].MaxLevel = %d, want 3", cfg.Pipeline.Steps[1].MaxLevel)
	}
	if cfg.Pipeline.Steps[2].IsEnabled() {
		t.Error("steps[2] should be disabled")
	}
	if !cfg.Pipeline.Steps[2].Images {
		t.Error("steps[2].Images = false, want true")
	}
	if cfg.Output.Wrap != 80 {
		t.Errorf("Output.Wrap = %d, want 80", cfg.Output.Wrap)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty name", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("pipelines:\n  steps: []\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown step rejected", func(t *testing.T) {
		path := filepath.Join(dir, "step.yaml")
		content := "pipeline:\n  steps:\n    - name: bogus\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrUnknownStep) {
			t.Errorf("error = %v, want ErrUnknownStep", err)
		}
	})
}

func TestResolveConfigPathSearchesCwd(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "clean.yml"), []byte("pipeline:\n  steps:\n    - name: content-dedup\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := LoadConfig("clean")
	if err != nil {
		t.Fatalf("LoadConfig(name) error = %v", err)
	}
	if len(cfg.Pipeline.Steps) != 1 {
		t.Errorf("got %d steps, want 1", len(cfg.Pipeline.Steps))
	}
}
