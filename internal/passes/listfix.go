package passes

import "github.com/HibernalGlow/marku/internal/mdtree"

// RemoveSingleItemLists replaces every ordered list that has exactly one
// item with the item's own blocks, preserving surrounding block order.
// Bullet lists and multi-item lists are untouched.
func RemoveSingleItemLists(doc *mdtree.Document) error {
	doc.Blocks = unwrapSingleItemLists(doc.Blocks)
	return nil
}

func unwrapSingleItemLists(blocks []mdtree.Block) []mdtree.Block {
	out := make([]mdtree.Block, 0, len(blocks))
	for _, b := range blocks {
		switch b := b.(type) {
		case *mdtree.List:
			for _, item := range b.Items {
				item.Blocks = unwrapSingleItemLists(item.Blocks)
			}
			if b.Ordered && len(b.Items) == 1 {
				out = append(out, b.Items[0].Blocks...)
				continue
			}
		case *mdtree.Blockquote:
			b.Blocks = unwrapSingleItemLists(b.Blocks)
		}
		out = append(out, b)
	}
	return out
}
