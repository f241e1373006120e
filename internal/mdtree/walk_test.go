package mdtree

import (
	"testing"
)

func TestVisitImages(t *testing.T) {
	t.Parallel()

	src := "![a](1.png)\n\n" +
		"> quoted ![b](2.png)\n\n" +
		"- item with [![c](3.png)](https://example.com)\n\n" +
		"| ![d](4.png) |\n| --- |\n| ![e](5.png) |\n"

	var dests []string
	VisitImages(Parse([]byte(src)).Blocks, func(img *Image) {
		dests = append(dests, img.Dest)
	})

	want := []string{"1.png", "2.png", "3.png", "4.png", "5.png"}
	if len(dests) != len(want) {
		t.Fatalf("visited %d images %v, want %d", len(dests), dests, len(want))
	}
	for i := range want {
		if dests[i] != want[i] {
			t.Errorf("dests[%d] = %q, want %q", i, dests[i], want[i])
		}
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	doc := Parse([]byte("**bold** and `code` and [link text](https://example.com)\n"))
	p := doc.Blocks[0].(*Paragraph)

	want := "bold and code and link text"
	if got := PlainText(p.Content); got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}

func TestTextOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "heading", input: "# Title here\n", want: "Title here"},
		{name: "code block", input: "```\nx = 1\n```\n", want: "x = 1\n"},
		{name: "blockquote", input: "> inner text\n", want: "inner text"},
		{name: "list", input: "- one\n- two\n", want: "one\ntwo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := Parse([]byte(tt.input))
			if got := TextOf(doc.Blocks[0]); got != tt.want {
				t.Errorf("TextOf() = %q, want %q", got, tt.want)
			}
		})
	}
}
