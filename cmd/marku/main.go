// Command marku runs a configurable pipeline of document cleanup steps.
// The pipeline is described by a YAML config file; without one, a
// default cleanup pipeline runs.
package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	marku "github.com/HibernalGlow/marku"
	"github.com/HibernalGlow/marku/internal/cli"
	"github.com/HibernalGlow/marku/internal/config"
)

func main() {
	var configName string

	app := &cli.App{
		Name:    "marku",
		Summary: "Run a configurable pipeline of Markdown cleanup steps.",
		Flags: func(fs *flag.FlagSet) {
			fs.StringVarP(&configName, "config", "c", "", "config file name or path")
		},
		FlagUsage: func(w io.Writer) {
			fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
		},
		Build: func(inv *cli.Invocation) ([]marku.Pass, error) {
			cfg, err := loadConfig(configName)
			if err != nil {
				return nil, err
			}

			// Flags win over config for output options.
			if cfg.Output.Format != "" && !inv.FlagSet.Changed("format") {
				inv.Format = cfg.Output.Format
			}
			if cfg.Output.Wrap != 0 && !inv.FlagSet.Changed("wrap") {
				inv.Wrap = cfg.Output.Wrap
			}

			return buildPasses(cfg)
		},
	}

	os.Exit(cli.Main(app))
}

func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(nameOrPath)
}

// buildPasses maps enabled config steps onto pipeline passes, in order.
func buildPasses(cfg *config.Config) ([]marku.Pass, error) {
	built := make([]marku.Pass, 0, len(cfg.Pipeline.Steps))
	for i, step := range cfg.Pipeline.Steps {
		if !step.IsEnabled() {
			continue
		}
		p, err := buildPass(step)
		if err != nil {
			return nil, fmt.Errorf("pipeline.steps[%d] (%s): %w", i, step.Name, err)
		}
		built = append(built, p)
	}
	return built, nil
}

func buildPass(step config.StepConfig) (marku.Pass, error) {
	switch step.Name {
	case "consecutive-header":
		return marku.NewConsecutiveHeaders(marku.HeaderOptions{
			MaxLevel: step.MaxLevel,
			MinRun:   step.MinRun,
		})
	case "content-dedup":
		return marku.NewDedup(marku.DedupOptions{Images: step.Images}), nil
	case "content-replace":
		rules := make([]marku.ReplaceRule, 0, len(step.Patterns))
		for _, p := range step.Patterns {
			rules = append(rules, marku.ReplaceRule{Pattern: p.Pattern, Replacement: p.Replacement})
		}
		return marku.NewContentReplace(marku.ReplaceOptions{
			Punctuation: step.Punctuation,
			Rules:       rules,
		})
	case "image-path-replacer":
		return marku.NewImagePath(marku.ImagePathOptions{
			OldPrefix: step.OldPrefix,
			NewPrefix: step.NewPrefix,
		})
	case "single-orderlist-remover":
		return marku.NewSingleItemLists(), nil
	case "html2mdtable":
		return marku.NewHTMLTables(), nil
	case "t2list":
		bold := step.Bold == nil || *step.Bold
		return marku.NewTextToList(marku.TextListOptions{Bold: bold}), nil
	case "title-normalize":
		return marku.NewTitleNormalize(marku.TitleOptions{Levels: step.Levels})
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownStep, step.Name)
	}
}
