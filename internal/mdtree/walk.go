package mdtree

import "strings"

// WalkBlocks calls fn for every block beneath blocks in reading order,
// descending into blockquotes and list items.
func WalkBlocks(blocks []Block, fn func(Block)) {
	for _, b := range blocks {
		fn(b)
		switch b := b.(type) {
		case *Blockquote:
			WalkBlocks(b.Blocks, fn)
		case *List:
			for _, item := range b.Items {
				WalkBlocks(item.Blocks, fn)
			}
		}
	}
}

// WalkInlines calls fn for every inline beneath blocks, including inlines
// nested in emphasis, links, table cells and list items.
func WalkInlines(blocks []Block, fn func(Inline)) {
	WalkBlocks(blocks, func(b Block) {
		switch b := b.(type) {
		case *Heading:
			walkInlines(b.Content, fn)
		case *Paragraph:
			walkInlines(b.Content, fn)
		case *Table:
			for _, cell := range b.Header {
				walkInlines(cell.Content, fn)
			}
			for _, row := range b.Rows {
				for _, cell := range row {
					walkInlines(cell.Content, fn)
				}
			}
		}
	})
}

func walkInlines(ins []Inline, fn func(Inline)) {
	for _, in := range ins {
		fn(in)
		switch in := in.(type) {
		case *Emphasis:
			walkInlines(in.Content, fn)
		case *Strikethrough:
			walkInlines(in.Content, fn)
		case *Link:
			walkInlines(in.Content, fn)
		}
	}
}

// VisitImages calls fn for every image beneath blocks.
func VisitImages(blocks []Block, fn func(*Image)) {
	WalkInlines(blocks, func(in Inline) {
		if img, ok := in.(*Image); ok {
			fn(img)
		}
	})
}

// PlainText flattens inline content to its literal text.
func PlainText(ins []Inline) string {
	var b strings.Builder
	for _, in := range ins {
		switch in := in.(type) {
		case *Text:
			b.WriteString(in.Text)
		case *LineBreak:
			b.WriteString("\n")
		case *CodeSpan:
			b.WriteString(in.Text)
		case *Emphasis:
			b.WriteString(PlainText(in.Content))
		case *Strikethrough:
			b.WriteString(PlainText(in.Content))
		case *Link:
			b.WriteString(PlainText(in.Content))
		case *Image:
			b.WriteString(in.Alt)
		case *AutoLink:
			b.WriteString(in.Label)
		case *RawHTML:
			b.WriteString(in.Text)
		}
	}
	return b.String()
}

// TextOf flattens a block (and everything nested in it) to literal text.
func TextOf(b Block) string {
	switch b := b.(type) {
	case *Heading:
		return PlainText(b.Content)
	case *Paragraph:
		return PlainText(b.Content)
	case *CodeBlock:
		return b.Literal
	case *HTMLBlock:
		return b.Literal
	case *Blockquote:
		return textOfBlocks(b.Blocks)
	case *List:
		var parts []string
		for _, item := range b.Items {
			parts = append(parts, textOfBlocks(item.Blocks))
		}
		return strings.Join(parts, "\n")
	case *Table:
		var parts []string
		collect := func(cells []*TableCell) {
			for _, cell := range cells {
				parts = append(parts, PlainText(cell.Content))
			}
		}
		collect(b.Header)
		for _, row := range b.Rows {
			collect(row)
		}
		return strings.Join(parts, "\n")
	default:
		return ""
	}
}

func textOfBlocks(blocks []Block) string {
	var parts []string
	for _, b := range blocks {
		parts = append(parts, TextOf(b))
	}
	return strings.Join(parts, "\n")
}
