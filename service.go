package marku

import (
	"context"
	"fmt"

	"github.com/HibernalGlow/marku/internal/mdtree"
)

// Service runs the parse, transform, render pipeline over one document.
// A Service is cheap to construct and holds no external resources; each
// Run owns its document tree end to end.
type Service struct {
	passes        []Pass
	htmlConverter htmlConverter
}

// New creates a Service that applies the given passes in order.
func New(passes ...Pass) *Service {
	return &Service{
		passes:        passes,
		htmlConverter: newGoldmarkConverter(),
	}
}

// Run parses the input, applies every pass once, and renders the result.
// The context is used for cancellation between stages.
func (s *Service) Run(ctx context.Context, input Input) (Result, error) {
	if err := input.validate(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	content := normalizeLineEndings(input.Markdown)
	doc := mdtree.Parse([]byte(content))

	for _, p := range s.passes {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := p.Apply(doc); err != nil {
			return Result{}, fmt.Errorf("applying %s: %w", p.Name(), err)
		}
	}

	output := mdtree.RenderWithOptions(doc, mdtree.RenderOptions{Wrap: input.Wrap})

	if input.Format == FormatHTML {
		htmlOut, err := s.htmlConverter.ToHTML(ctx, output)
		if err != nil {
			return Result{}, fmt.Errorf("converting to HTML: %w", err)
		}
		output = htmlOut
	}

	return Result{
		Output:  output,
		Changed: output != input.Markdown,
	}, nil
}
