package mdtree

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Parse builds a Document from Markdown source. Goldmark (with the GFM
// extensions) does the heavy lifting; this adapter converts its AST into
// the closed node set of this package.
func Parse(src []byte) *Document {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	root := md.Parser().Parse(text.NewReader(src))

	doc := &Document{}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if b := convertBlock(n, src); b != nil {
			doc.Blocks = append(doc.Blocks, b)
		}
	}
	return doc
}

func convertBlock(n ast.Node, src []byte) Block {
	switch n := n.(type) {
	case *ast.Heading:
		return &Heading{Level: n.Level, Content: convertInlines(n, src)}
	case *ast.Paragraph:
		return &Paragraph{Content: convertInlines(n, src)}
	case *ast.TextBlock:
		// Tight list items wrap their content in TextBlock rather than
		// Paragraph; the distinction is irrelevant after this point.
		return &Paragraph{Content: convertInlines(n, src)}
	case *ast.Blockquote:
		return &Blockquote{Blocks: convertChildren(n, src)}
	case *ast.List:
		return convertList(n, src)
	case *ast.FencedCodeBlock:
		return &CodeBlock{
			Info:    string(n.Language(src)),
			Literal: linesValue(n, src),
			Fenced:  true,
		}
	case *ast.CodeBlock:
		return &CodeBlock{Literal: linesValue(n, src)}
	case *ast.HTMLBlock:
		var b strings.Builder
		b.WriteString(linesValue(n, src))
		if n.HasClosure() {
			b.Write(n.ClosureLine.Value(src))
		}
		return &HTMLBlock{Literal: b.String()}
	case *ast.ThematicBreak:
		return &ThematicBreak{}
	case *east.Table:
		return convertTable(n, src)
	default:
		// Unknown block kind (should not happen with the GFM parser);
		// preserve its raw lines as a paragraph so no content is lost.
		if raw := linesValue(n, src); raw != "" {
			return &Paragraph{Content: []Inline{&Text{Text: strings.TrimRight(raw, "\n")}}}
		}
		return nil
	}
}

func convertChildren(n ast.Node, src []byte) []Block {
	var blocks []Block
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if b := convertBlock(c, src); b != nil {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func convertList(n *ast.List, src []byte) *List {
	list := &List{
		Ordered: n.IsOrdered(),
		Start:   n.Start,
		Marker:  n.Marker,
		Tight:   n.IsTight,
	}
	if list.Ordered && list.Start == 0 {
		list.Start = 1
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		item := &ListItem{}
		if li, ok := c.(*ast.ListItem); ok {
			item.Blocks = convertChildren(li, src)
		}
		list.Items = append(list.Items, item)
	}
	return list
}

func convertTable(n *east.Table, src []byte) *Table {
	table := &Table{}
	for _, a := range n.Alignments {
		table.Alignments = append(table.Alignments, convertAlignment(a))
	}
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []*TableCell
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, &TableCell{Content: convertInlines(cell, src)})
		}
		if _, ok := row.(*east.TableHeader); ok {
			table.Header = cells
			continue
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}

func convertAlignment(a east.Alignment) Alignment {
	switch a {
	case east.AlignLeft:
		return AlignLeft
	case east.AlignCenter:
		return AlignCenter
	case east.AlignRight:
		return AlignRight
	default:
		return AlignNone
	}
}

func convertInlines(parent ast.Node, src []byte) []Inline {
	var out []Inline
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, convertInline(n, src)...)
	}
	return out
}

func convertInline(n ast.Node, src []byte) []Inline {
	switch n := n.(type) {
	case *ast.Text:
		out := []Inline{&Text{Text: unescapeText(string(n.Segment.Value(src)))}}
		if n.HardLineBreak() {
			out = append(out, &LineBreak{Hard: true})
		} else if n.SoftLineBreak() {
			out = append(out, &LineBreak{})
		}
		return out
	case *ast.String:
		return []Inline{&Text{Text: string(n.Value)}}
	case *ast.CodeSpan:
		return []Inline{&CodeSpan{Text: nodeText(n, src)}}
	case *ast.Emphasis:
		return []Inline{&Emphasis{Level: n.Level, Content: convertInlines(n, src)}}
	case *east.Strikethrough:
		return []Inline{&Strikethrough{Content: convertInlines(n, src)}}
	case *ast.Link:
		return []Inline{&Link{
			Content: convertInlines(n, src),
			Dest:    string(n.Destination),
			Title:   string(n.Title),
		}}
	case *ast.Image:
		return []Inline{&Image{
			Alt:   unescapeText(nodeText(n, src)),
			Dest:  string(n.Destination),
			Title: string(n.Title),
		}}
	case *ast.AutoLink:
		return []Inline{&AutoLink{Label: string(n.Label(src))}}
	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(src))
		}
		return []Inline{&RawHTML{Text: b.String()}}
	case *east.TaskCheckBox:
		return []Inline{&TaskCheck{Checked: n.IsChecked}}
	default:
		if t := nodeText(n, src); t != "" {
			return []Inline{&Text{Text: t}}
		}
		return nil
	}
}

// linesValue concatenates the raw source lines of a block node.
func linesValue(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(src))
	}
	return b.String()
}

// unescapeText resolves backslash escapes of ASCII punctuation. Goldmark
// leaves the backslash in Text segments and unescapes while rendering, so
// the same has to happen here before the text re-enters the tree.
func unescapeText(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && util.IsPunct(s[i+1]) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// nodeText flattens the literal text beneath an inline node.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(src))
		case *ast.String:
			b.Write(c.Value)
		default:
			b.WriteString(nodeText(c, src))
		}
	}
	return b.String()
}
