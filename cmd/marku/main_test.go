package main

import (
	"errors"
	"testing"

	"github.com/HibernalGlow/marku/internal/config"
)

func TestBuildPassesDefaultConfig(t *testing.T) {
	t.Parallel()

	passes, err := buildPasses(config.DefaultConfig())
	if err != nil {
		t.Fatalf("buildPasses() error = %v", err)
	}

	want := []string{"html2mdtable", "consecutive-header", "single-orderlist-remover", "content-dedup"}
	if len(passes) != len(want) {
		t.Fatalf("got %d passes, want %d", len(passes), len(want))
	}
	for i, name := range want {
		if got := passes[i].Name(); got != name {
			t.Errorf("passes[%d].Name() = %q, want %q", i, got, name)
		}
	}
}

func TestBuildPassesEveryStep(t *testing.T) {
	t.Parallel()

	var steps []config.StepConfig
	for _, name := range config.StepNames {
		step := config.StepConfig{Name: name}
		if name == "image-path-replacer" {
			step.OldPrefix = "old/"
			step.NewPrefix = "new/"
		}
		steps = append(steps, step)
	}

	passes, err := buildPasses(&config.Config{Pipeline: config.PipelineConfig{Steps: steps}})
	if err != nil {
		t.Fatalf("buildPasses() error = %v", err)
	}
	if len(passes) != len(config.StepNames) {
		t.Errorf("got %d passes, want %d", len(passes), len(config.StepNames))
	}
	for i, name := range config.StepNames {
		if got := passes[i].Name(); got != name {
			t.Errorf("passes[%d].Name() = %q, want %q", i, got, name)
		}
	}
}

func TestBuildPassesSkipsDisabled(t *testing.T) {
	t.Parallel()

	off := false
	cfg := &config.Config{Pipeline: config.PipelineConfig{Steps: []config.StepConfig{
		{Name: "content-dedup", Enabled: &off},
		{Name: "single-orderlist-remover"},
	}}}

	passes, err := buildPasses(cfg)
	if err != nil {
		t.Fatalf("buildPasses() error = %v", err)
	}
	if len(passes) != 1 {
		t.Fatalf("got %d passes, want 1", len(passes))
	}
	if passes[0].Name() != "single-orderlist-remover" {
		t.Errorf("passes[0].Name() = %q", passes[0].Name())
	}
}

func TestBuildPassesInvalidOptions(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Pipeline: config.PipelineConfig{Steps: []config.StepConfig{
		{Name: "image-path-replacer"}, // missing oldPrefix
	}}}

	if _, err := buildPasses(cfg); err == nil {
		t.Error("buildPasses() accepted image step with no prefix")
	}
}

func TestBuildPassesUnknownStep(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Pipeline: config.PipelineConfig{Steps: []config.StepConfig{
		{Name: "bogus"},
	}}}

	_, err := buildPasses(cfg)
	if !errors.Is(err, config.ErrUnknownStep) {
		t.Errorf("error = %v, want ErrUnknownStep", err)
	}
}

func TestLoadConfigDefaultsWhenUnset(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") error = %v", err)
	}
	if len(cfg.Pipeline.Steps) == 0 {
		t.Error("default config has no steps")
	}
}
