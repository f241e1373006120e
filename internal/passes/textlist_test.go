package passes_test

import (
	"testing"

	"github.com/HibernalGlow/marku/internal/passes"
)

func TestHeadingsToList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		opts  passes.TextListOptions
		want  string
	}{
		{
			name:  "flat outline becomes one ordered list",
			input: "# One\n\n# Two\n\n# Three\n",
			want:  "1. One\n\n2. Two\n\n3. Three\n",
		},
		{
			name:  "deeper heading nests under the previous item",
			input: "# One\n\n## Sub\n\n# Two\n",
			want:  "1. One\n\n   1. Sub\n\n2. Two\n",
		},
		{
			name:  "body content attaches to the current item",
			input: "# One\n\ncontent\n\n# Two\n",
			want:  "1. One\n\n   content\n\n2. Two\n",
		},
		{
			name:  "bold wraps titles",
			input: "# One\n",
			opts:  passes.TextListOptions{Bold: true},
			want:  "1. **One**\n",
		},
		{
			name:  "already bold title is not double wrapped",
			input: "# **One**\n",
			opts:  passes.TextListOptions{Bold: true},
			want:  "1. **One**\n",
		},
		{
			name:  "content before the first heading stays put",
			input: "intro\n\n# One\n",
			want:  "intro\n\n1. One\n",
		},
		{
			name:  "numbering continues after returning to a level",
			input: "# One\n\n## A\n\n# Two\n\n## B\n",
			want:  "1. One\n\n   1. A\n\n2. Two\n\n   1. B\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := parse(tt.input)
			if err := passes.HeadingsToList(doc, tt.opts); err != nil {
				t.Fatalf("HeadingsToList() error = %v", err)
			}
			if got := render(doc); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeadingsToListIdempotent(t *testing.T) {
	t.Parallel()

	doc := parse("# One\n\n## Sub\n\ncontent\n\n# Two\n")
	if err := passes.HeadingsToList(doc, passes.TextListOptions{Bold: true}); err != nil {
		t.Fatal(err)
	}
	first := render(doc)

	// No headings remain, so a second application is a no-op.
	doc = parse(first)
	if err := passes.HeadingsToList(doc, passes.TextListOptions{Bold: true}); err != nil {
		t.Fatal(err)
	}
	if second := render(doc); second != first {
		t.Errorf("second application changed output:\nfirst  = %q\nsecond = %q", first, second)
	}
}
