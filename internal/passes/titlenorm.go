package passes

import (
	"fmt"
	"regexp"

	"github.com/HibernalGlow/marku/internal/cnnum"
	"github.com/HibernalGlow/marku/internal/mdtree"
)

// TitleOptions configures NormalizeTitles. Levels selects which of the six
// numbered-title rules run; empty means all of them.
type TitleOptions struct {
	Levels []int
}

// titleRule maps a numbered-title pattern to a heading level. The pattern's
// first group captures the numeral; rewrite renders the normalized prefix.
type titleRule struct {
	level   int
	pattern *regexp.Regexp
	rewrite func(numeral string) (string, error)
}

var titleRules = []titleRule{
	{
		level:   1,
		pattern: regexp.MustCompile(`^第([〇零一二两三四五六七八九十百千万亿]+)章\s*`),
		rewrite: func(n string) (string, error) {
			std, err := cnnum.Normalize(n)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("第%s章 ", std), nil
		},
	},
	{
		level:   2,
		pattern: regexp.MustCompile(`^第([〇零一二两三四五六七八九十百千万亿]+)节\s*`),
		rewrite: func(n string) (string, error) {
			std, err := cnnum.Normalize(n)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("第%s节 ", std), nil
		},
	},
	{
		level:   3,
		pattern: regexp.MustCompile(`^([〇零一二两三四五六七八九十百千万亿]+)、\s*`),
		rewrite: func(n string) (string, error) {
			std, err := cnnum.Normalize(n)
			if err != nil {
				return "", err
			}
			return std + "、", nil
		},
	},
	{
		level:   4,
		pattern: regexp.MustCompile(`^[(（]([〇零一二两三四五六七八九十百千万亿]+)[)）]\s*`),
		rewrite: func(n string) (string, error) {
			std, err := cnnum.Normalize(n)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("(%s) ", std), nil
		},
	},
	{
		// The two-part rule must run before the single-number rule, which
		// would otherwise split "1.2." in the middle.
		level:   6,
		pattern: regexp.MustCompile(`^(\d+\.\d+)\.\s*`),
		rewrite: func(n string) (string, error) { return n + ". ", nil },
	},
	{
		level:   5,
		pattern: regexp.MustCompile(`^(\d+)\.\s*`),
		rewrite: func(n string) (string, error) { return n + ". ", nil },
	},
}

// NormalizeTitles promotes paragraph lines that open with a numbered title
// (第X章, 第X节, X、, (X), N., N.N.) to headings, normalizing the Chinese
// numeral to its standard form. Lines whose numeral does not parse are
// left alone.
func NormalizeTitles(doc *mdtree.Document, opts TitleOptions) error {
	enabled := enabledLevels(opts.Levels)
	out := make([]mdtree.Block, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		p, ok := b.(*mdtree.Paragraph)
		if !ok {
			out = append(out, b)
			continue
		}
		out = append(out, promoteTitleLines(p, enabled)...)
	}
	doc.Blocks = out
	return nil
}

func enabledLevels(levels []int) map[int]bool {
	enabled := make(map[int]bool)
	if len(levels) == 0 {
		for lv := 1; lv <= 6; lv++ {
			enabled[lv] = true
		}
		return enabled
	}
	for _, lv := range levels {
		if lv >= 1 && lv <= 6 {
			enabled[lv] = true
		}
	}
	return enabled
}

// promoteTitleLines splits a paragraph at line breaks and converts matching
// lines to headings; runs of unmatched lines are regrouped into paragraphs.
func promoteTitleLines(p *mdtree.Paragraph, enabled map[int]bool) []mdtree.Block {
	lines := splitLines(p.Content)

	var out []mdtree.Block
	var pending []mdtree.Inline
	flush := func() {
		if len(pending) > 0 {
			out = append(out, &mdtree.Paragraph{Content: pending})
			pending = nil
		}
	}

	for _, line := range lines {
		if h := matchTitleLine(line, enabled); h != nil {
			flush()
			out = append(out, h)
			continue
		}
		if len(pending) > 0 {
			pending = append(pending, &mdtree.LineBreak{})
		}
		pending = append(pending, line...)
	}
	flush()

	if len(out) == 0 {
		return []mdtree.Block{p}
	}
	return out
}

// splitLines breaks an inline run into lines at LineBreak boundaries.
func splitLines(ins []mdtree.Inline) [][]mdtree.Inline {
	var lines [][]mdtree.Inline
	var cur []mdtree.Inline
	for _, in := range ins {
		if _, ok := in.(*mdtree.LineBreak); ok {
			lines = append(lines, cur)
			cur = nil
			continue
		}
		cur = append(cur, in)
	}
	lines = append(lines, cur)
	return lines
}

// matchTitleLine converts one paragraph line to a heading if its leading
// text matches an enabled rule. Returns nil when no rule applies.
func matchTitleLine(line []mdtree.Inline, enabled map[int]bool) *mdtree.Heading {
	if len(line) == 0 {
		return nil
	}
	first, ok := line[0].(*mdtree.Text)
	if !ok {
		return nil
	}
	for _, rule := range titleRules {
		if !enabled[rule.level] {
			continue
		}
		m := rule.pattern.FindStringSubmatch(first.Text)
		if m == nil {
			continue
		}
		prefix, err := rule.rewrite(m[1])
		if err != nil {
			return nil
		}
		rest := first.Text[len(m[0]):]
		content := []mdtree.Inline{&mdtree.Text{Text: prefix + rest}}
		content = append(content, line[1:]...)
		return &mdtree.Heading{Level: rule.level, Content: content}
	}
	return nil
}
