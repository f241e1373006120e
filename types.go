package marku

import "fmt"

// Output format constants.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Input contains the parameters for one pipeline run.
type Input struct {
	Markdown string // Markdown content
	Format   string // "markdown" (default) or "html"
	Wrap     int    // soft-wrap column for paragraphs, 0 = off
}

// Result holds the rendered output of a pipeline run.
type Result struct {
	Output  string
	Changed bool // output differs from the input text
}

// validate checks format and wrap settings.
func (in Input) validate() error {
	switch in.Format {
	case "", FormatMarkdown, FormatHTML:
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidFormat, in.Format, FormatMarkdown, FormatHTML)
	}
	if in.Wrap < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWrap, in.Wrap)
	}
	return nil
}

// HeaderOptions configures the consecutive-header pass.
type HeaderOptions struct {
	MaxLevel int // deepest heading level to touch (0 = all)
	MinRun   int // minimum run length to collapse (0 = default 2)
}

// Validate checks that header options are in range.
func (o HeaderOptions) Validate() error {
	if o.MaxLevel < 0 || o.MaxLevel > 6 {
		return fmt.Errorf("%w: max level %d (must be between 0 and 6)", ErrInvalidLevel, o.MaxLevel)
	}
	if o.MinRun < 0 {
		return fmt.Errorf("%w: min run %d", ErrInvalidMinRun, o.MinRun)
	}
	return nil
}

// DedupOptions configures the content-dedup pass.
type DedupOptions struct {
	Images bool // also drop repeated images by destination
}

// ImagePathOptions configures the image-path pass.
type ImagePathOptions struct {
	OldPrefix string
	NewPrefix string
}

// Validate checks that a source prefix is present.
func (o ImagePathOptions) Validate() error {
	if o.OldPrefix == "" {
		return ErrEmptyPrefix
	}
	return nil
}

// ReplaceRule is one pattern/replacement pair for the content-replace
// pass. Pattern is a regular expression; Replacement may use $1-style
// group references.
type ReplaceRule struct {
	Pattern     string
	Replacement string
}

// ReplaceOptions configures the content-replace pass.
type ReplaceOptions struct {
	Punctuation bool // normalize full-width punctuation to ASCII
	Rules       []ReplaceRule
}

// TextListOptions configures the text-to-list pass.
type TextListOptions struct {
	Bold bool // wrap converted titles in strong emphasis
}

// TitleOptions configures the title-normalize pass.
type TitleOptions struct {
	Levels []int // numbered-title rules to run (empty = all)
}

// Validate checks that requested levels are in range.
func (o TitleOptions) Validate() error {
	for _, lv := range o.Levels {
		if lv < 1 || lv > 6 {
			return fmt.Errorf("%w: %d (must be between 1 and 6)", ErrInvalidLevel, lv)
		}
	}
	return nil
}
