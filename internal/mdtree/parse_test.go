package mdtree

import (
	"testing"
)

func TestParseBlockKinds(t *testing.T) {
	t.Parallel()

	src := "# Title\n\n" +
		"A paragraph.\n\n" +
		"> quoted\n\n" +
		"- one\n- two\n\n" +
		"```go\nfmt.Println()\n```\n\n" +
		"---\n"

	doc := Parse([]byte(src))

	if len(doc.Blocks) != 6 {
		t.Fatalf("got %d blocks, want 6", len(doc.Blocks))
	}

	h, ok := doc.Blocks[0].(*Heading)
	if !ok || h.Level != 1 {
		t.Errorf("block 0 = %T level %v, want level-1 heading", doc.Blocks[0], h)
	}
	if _, ok := doc.Blocks[1].(*Paragraph); !ok {
		t.Errorf("block 1 = %T, want paragraph", doc.Blocks[1])
	}
	if _, ok := doc.Blocks[2].(*Blockquote); !ok {
		t.Errorf("block 2 = %T, want blockquote", doc.Blocks[2])
	}
	list, ok := doc.Blocks[3].(*List)
	if !ok {
		t.Fatalf("block 3 = %T, want list", doc.Blocks[3])
	}
	if list.Ordered {
		t.Error("list.Ordered = true, want false")
	}
	if len(list.Items) != 2 {
		t.Errorf("got %d list items, want 2", len(list.Items))
	}
	code, ok := doc.Blocks[4].(*CodeBlock)
	if !ok {
		t.Fatalf("block 4 = %T, want code block", doc.Blocks[4])
	}
	if code.Info != "go" {
		t.Errorf("code.Info = %q, want %q", code.Info, "go")
	}
	if code.Literal != "fmt.Println()\n" {
		t.Errorf("code.Literal = %q", code.Literal)
	}
	if _, ok := doc.Blocks[5].(*ThematicBreak); !ok {
		t.Errorf("block 5 = %T, want thematic break", doc.Blocks[5])
	}
}

func TestParseInlines(t *testing.T) {
	t.Parallel()

	src := "plain **bold** *em* `code` ~~gone~~ [link](https://example.com) ![alt](img.png)\n"
	doc := Parse([]byte(src))

	p, ok := doc.Blocks[0].(*Paragraph)
	if !ok {
		t.Fatalf("block 0 = %T, want paragraph", doc.Blocks[0])
	}

	var (
		sawBold, sawEm, sawCode, sawStrike bool
		sawLink, sawImage                  bool
	)
	var visit func(ins []Inline)
	visit = func(ins []Inline) {
		for _, in := range ins {
			switch in := in.(type) {
			case *Emphasis:
				if in.Level >= 2 {
					sawBold = true
				} else {
					sawEm = true
				}
				visit(in.Content)
			case *CodeSpan:
				sawCode = true
			case *Strikethrough:
				sawStrike = true
			case *Link:
				sawLink = true
				if in.Dest != "https://example.com" {
					t.Errorf("link.Dest = %q", in.Dest)
				}
			case *Image:
				sawImage = true
				if in.Dest != "img.png" || in.Alt != "alt" {
					t.Errorf("image = %q %q", in.Alt, in.Dest)
				}
			}
		}
	}
	visit(p.Content)

	for name, saw := range map[string]bool{
		"bold": sawBold, "em": sawEm, "code": sawCode,
		"strikethrough": sawStrike, "link": sawLink, "image": sawImage,
	} {
		if !saw {
			t.Errorf("%s inline not found", name)
		}
	}
}

func TestParseInlineRawHTML(t *testing.T) {
	t.Parallel()

	doc := Parse([]byte("before <span class=\"x\">inside</span> after\n"))
	p, ok := doc.Blocks[0].(*Paragraph)
	if !ok {
		t.Fatalf("block 0 = %T, want paragraph", doc.Blocks[0])
	}

	var tags []string
	for _, in := range p.Content {
		if raw, isRaw := in.(*RawHTML); isRaw {
			tags = append(tags, raw.Text)
		}
	}
	if len(tags) != 2 || tags[0] != `<span class="x">` || tags[1] != "</span>" {
		t.Errorf("raw inline tags = %q", tags)
	}
}

func TestParseTable(t *testing.T) {
	t.Parallel()

	src := "| Name | Count |\n| :--- | ---: |\n| a | 1 |\n| b | 2 |\n"
	doc := Parse([]byte(src))

	table, ok := doc.Blocks[0].(*Table)
	if !ok {
		t.Fatalf("block 0 = %T, want table", doc.Blocks[0])
	}
	if len(table.Header) != 2 {
		t.Fatalf("got %d header cells, want 2", len(table.Header))
	}
	if got := PlainText(table.Header[0].Content); got != "Name" {
		t.Errorf("header[0] = %q, want %q", got, "Name")
	}
	if len(table.Rows) != 2 {
		t.Errorf("got %d rows, want 2", len(table.Rows))
	}
	if table.Alignments[0] != AlignLeft || table.Alignments[1] != AlignRight {
		t.Errorf("alignments = %v", table.Alignments)
	}
}

func TestParseHTMLBlock(t *testing.T) {
	t.Parallel()

	src := "before\n\n<table><tr><td>x</td></tr></table>\n\nafter\n"
	doc := Parse([]byte(src))

	if len(doc.Blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(doc.Blocks))
	}
	hb, ok := doc.Blocks[1].(*HTMLBlock)
	if !ok {
		t.Fatalf("block 1 = %T, want HTML block", doc.Blocks[1])
	}
	if hb.Literal == "" {
		t.Error("HTML block literal is empty")
	}
}

func TestParseOrderedListStart(t *testing.T) {
	t.Parallel()

	doc := Parse([]byte("3. three\n4. four\n"))
	list, ok := doc.Blocks[0].(*List)
	if !ok {
		t.Fatalf("block 0 = %T, want list", doc.Blocks[0])
	}
	if !list.Ordered {
		t.Error("list.Ordered = false, want true")
	}
	if list.Start != 3 {
		t.Errorf("list.Start = %d, want 3", list.Start)
	}
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	doc := Parse([]byte(""))
	if len(doc.Blocks) != 0 {
		t.Errorf("got %d blocks, want 0", len(doc.Blocks))
	}
}
