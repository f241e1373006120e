package passes

import "github.com/HibernalGlow/marku/internal/mdtree"

// HeaderOptions configures ConsecutiveHeaders.
type HeaderOptions struct {
	// MaxLevel is the deepest heading level the pass touches (0 = all).
	MaxLevel int
	// MinRun is the minimum run length that triggers a collapse (default 2).
	MinRun int
}

// ConsecutiveHeaders collapses runs of adjacent headings that share the same
// level with no intervening content: the first heading of the run is kept,
// the rest are dropped, and everything that followed now reads as nested
// under the kept heading.
func ConsecutiveHeaders(doc *mdtree.Document, opts HeaderOptions) error {
	maxLevel := opts.MaxLevel
	if maxLevel <= 0 || maxLevel > 6 {
		maxLevel = 6
	}
	minRun := opts.MinRun
	if minRun < 2 {
		minRun = 2
	}
	doc.Blocks = collapseHeaderRuns(doc.Blocks, maxLevel, minRun)
	return nil
}

func collapseHeaderRuns(blocks []mdtree.Block, maxLevel, minRun int) []mdtree.Block {
	out := make([]mdtree.Block, 0, len(blocks))
	for i := 0; i < len(blocks); {
		h, ok := blocks[i].(*mdtree.Heading)
		if !ok || h.Level > maxLevel {
			if q, isQuote := blocks[i].(*mdtree.Blockquote); isQuote {
				q.Blocks = collapseHeaderRuns(q.Blocks, maxLevel, minRun)
			}
			out = append(out, blocks[i])
			i++
			continue
		}

		// Extend the run of same-level headings.
		j := i + 1
		for j < len(blocks) {
			next, isHeading := blocks[j].(*mdtree.Heading)
			if !isHeading || next.Level != h.Level {
				break
			}
			j++
		}

		if j-i >= minRun {
			out = append(out, h) // first occurrence wins
		} else {
			out = append(out, blocks[i:j]...)
		}
		i = j
	}
	return out
}
