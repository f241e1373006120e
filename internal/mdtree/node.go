package mdtree

// Document is an ordered sequence of block-level nodes. A Document is owned
// by exactly one pipeline invocation: built by Parse, mutated by transform
// passes, consumed by Render.
type Document struct {
	Blocks []Block
}

// Block is a block-level node. The set of implementations is closed:
// Heading, Paragraph, CodeBlock, HTMLBlock, Blockquote, List, Table,
// ThematicBreak. Transform code switches exhaustively over these kinds.
type Block interface {
	blockNode()
}

// Inline is an inline-level node. The set of implementations is closed:
// Text, LineBreak, CodeSpan, Emphasis, Strikethrough, Link, Image,
// AutoLink, RawHTML, TaskCheck.
type Inline interface {
	inlineNode()
}

// Heading is an ATX heading with level 1-6.
type Heading struct {
	Level   int
	Content []Inline
}

// Paragraph is a run of inline content.
type Paragraph struct {
	Content []Inline
}

// CodeBlock holds literal code. Fenced records whether the source used a
// fence; rendering always emits a fence regardless.
type CodeBlock struct {
	Info    string // language hint after the opening fence
	Literal string // raw content, newline-terminated lines
	Fenced  bool
}

// HTMLBlock holds a raw HTML block verbatim.
type HTMLBlock struct {
	Literal string
}

// Blockquote nests a sequence of blocks.
type Blockquote struct {
	Blocks []Block
}

// List is an ordered or bullet list.
type List struct {
	Ordered bool
	Start   int  // first ordinal of an ordered list
	Marker  byte // '-', '*', '+' for bullets; '.' or ')' for ordered
	Tight   bool
	Items   []*ListItem
}

// ListItem holds the blocks of one list item.
type ListItem struct {
	Blocks []Block
}

// Alignment is a table column alignment.
type Alignment int

// Table column alignments.
const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// TableCell holds the inline content of one table cell.
type TableCell struct {
	Content []Inline
}

// Table is a pipe table: one header row, per-column alignments, and body rows.
type Table struct {
	Alignments []Alignment
	Header     []*TableCell
	Rows       [][]*TableCell
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct{}

func (*Heading) blockNode()       {}
func (*Paragraph) blockNode()     {}
func (*CodeBlock) blockNode()     {}
func (*HTMLBlock) blockNode()     {}
func (*Blockquote) blockNode()    {}
func (*List) blockNode()          {}
func (*Table) blockNode()         {}
func (*ThematicBreak) blockNode() {}

// Text is a literal text run.
type Text struct {
	Text string
}

// LineBreak separates lines within a block. Hard breaks render as a
// trailing double space; soft breaks as a bare newline.
type LineBreak struct {
	Hard bool
}

// CodeSpan is inline code.
type CodeSpan struct {
	Text string
}

// Emphasis is *emphasis* (level 1) or **strong** (level 2).
type Emphasis struct {
	Level   int
	Content []Inline
}

// Strikethrough is GFM ~~strikethrough~~.
type Strikethrough struct {
	Content []Inline
}

// Link is an inline link with destination and optional title.
type Link struct {
	Content []Inline
	Dest    string
	Title   string
}

// Image is an inline image. Alt is the flattened alt text.
type Image struct {
	Alt   string
	Dest  string
	Title string
}

// AutoLink is an <autolink>.
type AutoLink struct {
	Label string
}

// RawHTML is inline raw HTML.
type RawHTML struct {
	Text string
}

// TaskCheck is a GFM task list checkbox at the start of a list item.
type TaskCheck struct {
	Checked bool
}

func (*Text) inlineNode()          {}
func (*LineBreak) inlineNode()     {}
func (*CodeSpan) inlineNode()      {}
func (*Emphasis) inlineNode()      {}
func (*Strikethrough) inlineNode() {}
func (*Link) inlineNode()          {}
func (*Image) inlineNode()         {}
func (*AutoLink) inlineNode()      {}
func (*RawHTML) inlineNode()       {}
func (*TaskCheck) inlineNode()     {}
