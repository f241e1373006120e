package passes_test

import (
	"testing"

	"github.com/HibernalGlow/marku/internal/passes"
)

func TestRemoveSingleItemLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single ordered item unwraps",
			input: "1. only item\n",
			want:  "only item\n",
		},
		{
			name:  "two ordered items stay",
			input: "1. a\n2. b\n",
			want:  "1. a\n2. b\n",
		},
		{
			name:  "single bullet item stays",
			input: "- only item\n",
			want:  "- only item\n",
		},
		{
			name:  "surrounding blocks keep their order",
			input: "before\n\n1. wrapped\n\nafter\n",
			want:  "before\n\nwrapped\n\nafter\n",
		},
		{
			name:  "nested single-item list unwraps too",
			input: "- outer\n  1. inner\n",
			want:  "- outer\n  inner\n",
		},
		{
			name:  "item with several blocks splices them all",
			input: "1. first para\n\n   second para\n",
			want:  "first para\n\nsecond para\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := parse(tt.input)
			if err := passes.RemoveSingleItemLists(doc); err != nil {
				t.Fatalf("RemoveSingleItemLists() error = %v", err)
			}
			if got := render(doc); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRemoveSingleItemListsIdempotent(t *testing.T) {
	t.Parallel()

	doc := parse("1. outer\n\ntext\n\n2. another\n")
	if err := passes.RemoveSingleItemLists(doc); err != nil {
		t.Fatal(err)
	}
	first := render(doc)

	doc = parse(first)
	if err := passes.RemoveSingleItemLists(doc); err != nil {
		t.Fatal(err)
	}
	if second := render(doc); second != first {
		t.Errorf("second application changed output:\nfirst  = %q\nsecond = %q", first, second)
	}
}
