package passes_test

import (
	"github.com/HibernalGlow/marku/internal/mdtree"
)

// parse and render shorten the common test cycle: build a tree from
// Markdown, apply a pass, compare the re-rendered text.
func parse(src string) *mdtree.Document {
	return mdtree.Parse([]byte(src))
}

func render(doc *mdtree.Document) string {
	return mdtree.Render(doc)
}
