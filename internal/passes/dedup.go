package passes

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/HibernalGlow/marku/internal/mdtree"
)

// DedupOptions configures Dedup.
type DedupOptions struct {
	// Images additionally removes repeated images by destination,
	// wherever they appear in the document.
	Images bool
}

// Dedup removes top-level blocks whose normalized-text fingerprint matches
// an earlier block's. The first occurrence survives in place; the relative
// order of survivors is preserved. Blocks with an empty fingerprint
// (thematic breaks, blank content) never match anything.
func Dedup(doc *mdtree.Document, opts DedupOptions) error {
	seen := make(map[string]bool)
	out := make([]mdtree.Block, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		fp := fingerprint(b)
		if fp != "" {
			if seen[fp] {
				continue
			}
			seen[fp] = true
		}
		out = append(out, b)
	}
	doc.Blocks = out

	if opts.Images {
		dedupImages(doc)
	}
	return nil
}

// fingerprint builds a whitespace- and punctuation-insensitive identity for
// a block. The kind tag keeps a heading from matching a paragraph with the
// same words.
func fingerprint(b mdtree.Block) string {
	var kind string
	switch b := b.(type) {
	case *mdtree.Heading:
		kind = fmt.Sprintf("h%d", b.Level)
	case *mdtree.Paragraph:
		kind = "p"
	case *mdtree.CodeBlock:
		kind = "code"
	case *mdtree.HTMLBlock:
		kind = "html"
	case *mdtree.Blockquote:
		kind = "quote"
	case *mdtree.List:
		kind = "list"
	case *mdtree.Table:
		kind = "table"
	default:
		return ""
	}
	text := normalizeText(mdtree.TextOf(b))
	if text == "" {
		return ""
	}
	return kind + "|" + text
}

func normalizeText(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsPunct(r) {
			return -1
		}
		return r
	}, s)
}

func dedupImages(doc *mdtree.Document) {
	seen := make(map[string]bool)
	mdtree.WalkBlocks(doc.Blocks, func(b mdtree.Block) {
		switch b := b.(type) {
		case *mdtree.Heading:
			b.Content = filterImages(b.Content, seen)
		case *mdtree.Paragraph:
			b.Content = filterImages(b.Content, seen)
		case *mdtree.Table:
			for _, cell := range b.Header {
				cell.Content = filterImages(cell.Content, seen)
			}
			for _, row := range b.Rows {
				for _, cell := range row {
					cell.Content = filterImages(cell.Content, seen)
				}
			}
		}
	})
}

func filterImages(ins []mdtree.Inline, seen map[string]bool) []mdtree.Inline {
	out := make([]mdtree.Inline, 0, len(ins))
	for _, in := range ins {
		switch in := in.(type) {
		case *mdtree.Image:
			if in.Dest != "" {
				if seen[in.Dest] {
					continue
				}
				seen[in.Dest] = true
			}
		case *mdtree.Emphasis:
			in.Content = filterImages(in.Content, seen)
		case *mdtree.Strikethrough:
			in.Content = filterImages(in.Content, seen)
		case *mdtree.Link:
			in.Content = filterImages(in.Content, seen)
		}
		out = append(out, in)
	}
	return out
}
