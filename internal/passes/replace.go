package passes

import (
	"regexp"
	"strings"

	"github.com/HibernalGlow/marku/internal/mdtree"
)

// ReplaceRule is one compiled pattern/replacement pair. Replacement
// supports $1-style group references.
type ReplaceRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// ReplaceOptions configures ReplaceContent.
type ReplaceOptions struct {
	// Punctuation normalizes full-width CJK punctuation to its ASCII form.
	Punctuation bool
	// Rules are user-supplied rewrites, applied in order after the
	// punctuation normalization.
	Rules []ReplaceRule
}

// punctReplacer maps full-width punctuation to ASCII. Comma, semicolon
// and colon gain a trailing space since their full-width forms carry
// their own spacing.
var punctReplacer = strings.NewReplacer(
	"（", "(",
	"）", ")",
	"「", "[",
	"」", "]",
	"【", "[",
	"】", "]",
	"．", ".",
	"。", ".",
	"，", ", ",
	"；", "; ",
	"：", ": ",
	"！", "!",
	"？", "?",
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
)

// ReplaceContent rewrites the document's literal text: full-width
// punctuation becomes ASCII when Punctuation is set, then every rule
// runs in order. Code blocks and code spans keep their text verbatim;
// touching code would change what it executes, not how it reads.
func ReplaceContent(doc *mdtree.Document, opts ReplaceOptions) error {
	if !opts.Punctuation && len(opts.Rules) == 0 {
		return nil
	}
	rewrite := func(s string) string {
		if opts.Punctuation {
			s = punctReplacer.Replace(s)
		}
		for _, r := range opts.Rules {
			s = r.Pattern.ReplaceAllString(s, r.Replacement)
		}
		return s
	}
	mdtree.WalkInlines(doc.Blocks, func(in mdtree.Inline) {
		switch in := in.(type) {
		case *mdtree.Text:
			in.Text = rewrite(in.Text)
		case *mdtree.Image:
			in.Alt = rewrite(in.Alt)
		}
	})
	return nil
}
