package marku

import (
	"fmt"
	"regexp"

	"github.com/HibernalGlow/marku/internal/mdtree"
	"github.com/HibernalGlow/marku/internal/passes"
)

// Pass is one deterministic tree-to-tree rewrite in the pipeline.
type Pass interface {
	Name() string
	Apply(doc *mdtree.Document) error
}

// pass adapts a function to the Pass interface.
type pass struct {
	name string
	fn   func(*mdtree.Document) error
}

func (p pass) Name() string { return p.name }
func (p pass) Apply(doc *mdtree.Document) error { return p.fn(doc) }

// NewConsecutiveHeaders returns the consecutive-header normalization pass.
func NewConsecutiveHeaders(opts HeaderOptions) (Pass, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return pass{
		name: "consecutive-header",
		fn: func(doc *mdtree.Document) error {
			return passes.ConsecutiveHeaders(doc, passes.HeaderOptions{
				MaxLevel: opts.MaxLevel,
				MinRun:   opts.MinRun,
			})
		},
	}, nil
}

// NewDedup returns the content deduplication pass.
func NewDedup(opts DedupOptions) Pass {
	return pass{
		name: "content-dedup",
		fn: func(doc *mdtree.Document) error {
			return passes.Dedup(doc, passes.DedupOptions{Images: opts.Images})
		},
	}
}

// NewImagePath returns the image-path replacement pass.
func NewImagePath(opts ImagePathOptions) (Pass, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return pass{
		name: "image-path-replacer",
		fn: func(doc *mdtree.Document) error {
			return passes.ReplaceImagePaths(doc, passes.ImagePathOptions{
				OldPrefix: opts.OldPrefix,
				NewPrefix: opts.NewPrefix,
			})
		},
	}, nil
}

// NewSingleItemLists returns the single-item ordered list removal pass.
func NewSingleItemLists() Pass {
	return pass{
		name: "single-orderlist-remover",
		fn:   passes.RemoveSingleItemLists,
	}
}

// NewHTMLTables returns the HTML table conversion pass.
func NewHTMLTables() Pass {
	return pass{
		name: "html2mdtable",
		fn:   passes.ConvertHTMLTables,
	}
}

// NewContentReplace returns the content replacement pass. Every rule
// pattern is compiled up front; a malformed one fails with
// ErrInvalidPattern.
func NewContentReplace(opts ReplaceOptions) (Pass, error) {
	rules := make([]passes.ReplaceRule, 0, len(opts.Rules))
	for _, r := range opts.Rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, r.Pattern, err)
		}
		rules = append(rules, passes.ReplaceRule{Pattern: re, Replacement: r.Replacement})
	}
	return pass{
		name: "content-replace",
		fn: func(doc *mdtree.Document) error {
			return passes.ReplaceContent(doc, passes.ReplaceOptions{
				Punctuation: opts.Punctuation,
				Rules:       rules,
			})
		},
	}, nil
}

// NewTextToList returns the text-to-list conversion pass.
func NewTextToList(opts TextListOptions) Pass {
	return pass{
		name: "t2list",
		fn: func(doc *mdtree.Document) error {
			return passes.HeadingsToList(doc, passes.TextListOptions{Bold: opts.Bold})
		},
	}
}

// NewTitleNormalize returns the numbered-title normalization pass.
func NewTitleNormalize(opts TitleOptions) (Pass, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return pass{
		name: "title-normalize",
		fn: func(doc *mdtree.Document) error {
			return passes.NormalizeTitles(doc, passes.TitleOptions{Levels: opts.Levels})
		},
	}, nil
}
