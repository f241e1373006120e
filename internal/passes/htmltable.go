package passes

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/HibernalGlow/marku/internal/mdtree"
)

// ConvertHTMLTables rewrites raw HTML table blocks into pipe table nodes.
// A table containing merged cells (rowspan or colspan) fails with
// ErrUnsupportedStructure: the pipe syntax has no merge representation,
// and dropping the merge silently would corrupt the table.
func ConvertHTMLTables(doc *mdtree.Document) error {
	blocks, err := convertTableBlocks(doc.Blocks)
	if err != nil {
		return err
	}
	doc.Blocks = blocks
	return nil
}

func convertTableBlocks(blocks []mdtree.Block) ([]mdtree.Block, error) {
	out := make([]mdtree.Block, 0, len(blocks))
	for _, b := range blocks {
		switch b := b.(type) {
		case *mdtree.HTMLBlock:
			if !strings.Contains(strings.ToLower(b.Literal), "<table") {
				break
			}
			tables, err := parseHTMLTables(b.Literal)
			if err != nil {
				return nil, err
			}
			if len(tables) > 0 {
				out = append(out, tables...)
				continue
			}
		case *mdtree.Blockquote:
			inner, err := convertTableBlocks(b.Blocks)
			if err != nil {
				return nil, err
			}
			b.Blocks = inner
		case *mdtree.List:
			for _, item := range b.Items {
				inner, err := convertTableBlocks(item.Blocks)
				if err != nil {
					return nil, err
				}
				item.Blocks = inner
			}
		}
		out = append(out, b)
	}
	return out, nil
}

// parseHTMLTables extracts every <table> in the fragment as a Table block.
func parseHTMLTables(fragment string) ([]mdtree.Block, error) {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML block: %w", err)
	}

	var tables []mdtree.Block
	var walk func(*html.Node) error
	walk = func(n *html.Node) error {
		if n.Type == html.ElementNode && n.Data == "table" {
			table, err := convertTableElement(n)
			if err != nil {
				return err
			}
			if table != nil {
				tables = append(tables, table)
			}
			return nil // convertRow rejects any table nested in a cell
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return tables, nil
}

func convertTableElement(table *html.Node) (*mdtree.Table, error) {
	var rows [][]*mdtree.TableCell

	var collect func(*html.Node) error
	collect = func(n *html.Node) error {
		if n.Type == html.ElementNode && n.Data == "tr" {
			cells, err := convertRow(n)
			if err != nil {
				return err
			}
			rows = append(rows, cells)
			return nil
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := collect(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := collect(table); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	out := &mdtree.Table{
		Alignments: make([]mdtree.Alignment, cols),
		Header:     rows[0],
		Rows:       rows[1:],
	}
	return out, nil
}

func convertRow(tr *html.Node) ([]*mdtree.TableCell, error) {
	var cells []*mdtree.TableCell
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		if span := spanAttr(c); span != "" {
			return nil, fmt.Errorf("%w: table cell uses %s", ErrUnsupportedStructure, span)
		}
		if hasNestedTable(c) {
			return nil, fmt.Errorf("%w: table cell contains a nested table", ErrUnsupportedStructure)
		}
		text := collapseSpace(cellText(c))
		cells = append(cells, &mdtree.TableCell{
			Content: []mdtree.Inline{&mdtree.Text{Text: text}},
		})
	}
	return cells, nil
}

// hasNestedTable reports whether a <table> appears anywhere below the cell.
// A nested table has no pipe representation, so flattening it into cell
// text would lose its structure.
func hasNestedTable(cell *html.Node) bool {
	for c := cell.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "table" {
			return true
		}
		if hasNestedTable(c) {
			return true
		}
	}
	return false
}

// spanAttr reports a rowspan/colspan attribute that merges cells, or "".
func spanAttr(cell *html.Node) string {
	for _, attr := range cell.Attr {
		if attr.Key != "rowspan" && attr.Key != "colspan" {
			continue
		}
		v := strings.TrimSpace(attr.Val)
		if v != "" && v != "1" {
			return fmt.Sprintf("%s=%q", attr.Key, attr.Val)
		}
	}
	return ""
}

// cellText flattens the text content of a cell, one line per <br>.
func cellText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && n.Data == "br" {
			b.WriteString(" ")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
