package passes

import "github.com/HibernalGlow/marku/internal/mdtree"

// TextListOptions configures HeadingsToList.
type TextListOptions struct {
	// Bold wraps each converted heading title in strong emphasis unless
	// the title is already fully bold.
	Bold bool
}

// HeadingsToList converts the document's heading outline into a nested
// ordered list: each heading becomes a list item, deeper headings nest
// under the item of their nearest shallower heading, and non-heading
// blocks become children of the current item. Content before the first
// heading stays where it is.
func HeadingsToList(doc *mdtree.Document, opts TextListOptions) error {
	type frame struct {
		level int
		list  *mdtree.List
	}

	var out []mdtree.Block
	var stack []frame

	appendContent := func(b mdtree.Block) {
		if len(stack) == 0 {
			out = append(out, b)
			return
		}
		list := stack[len(stack)-1].list
		item := list.Items[len(list.Items)-1]
		item.Blocks = append(item.Blocks, b)
	}

	for _, b := range doc.Blocks {
		h, ok := b.(*mdtree.Heading)
		if !ok {
			appendContent(b)
			continue
		}

		for len(stack) > 0 && stack[len(stack)-1].level > h.Level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 || stack[len(stack)-1].level < h.Level {
			list := &mdtree.List{Ordered: true, Start: 1, Marker: '.'}
			if len(stack) == 0 {
				out = append(out, list)
			} else {
				parent := stack[len(stack)-1].list
				item := parent.Items[len(parent.Items)-1]
				item.Blocks = append(item.Blocks, list)
			}
			stack = append(stack, frame{level: h.Level, list: list})
		}

		title := h.Content
		if opts.Bold && !isStrong(title) {
			title = []mdtree.Inline{&mdtree.Emphasis{Level: 2, Content: title}}
		}
		list := stack[len(stack)-1].list
		list.Items = append(list.Items, &mdtree.ListItem{
			Blocks: []mdtree.Block{&mdtree.Paragraph{Content: title}},
		})
	}

	doc.Blocks = out
	return nil
}

// isStrong reports whether the inline run is a single strong emphasis.
func isStrong(ins []mdtree.Inline) bool {
	if len(ins) != 1 {
		return false
	}
	em, ok := ins[0].(*mdtree.Emphasis)
	return ok && em.Level >= 2
}
