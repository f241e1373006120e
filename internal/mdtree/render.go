package mdtree

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// RenderOptions controls Markdown output.
type RenderOptions struct {
	// Wrap soft-wraps paragraph text at the given column. Zero disables
	// wrapping. Only paragraphs are wrapped; code blocks, tables and
	// headings are never touched.
	Wrap int
}

// Render serializes a Document to canonical Markdown with default options.
func Render(doc *Document) string {
	return RenderWithOptions(doc, RenderOptions{})
}

// RenderWithOptions serializes a Document to canonical Markdown. The output
// is stable: parsing it and rendering again yields the same text.
func RenderWithOptions(doc *Document, opts RenderOptions) string {
	parts := renderBlocks(doc.Blocks, opts)
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func renderBlocks(blocks []Block, opts RenderOptions) []string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		// A block can render empty, e.g. a paragraph whose images were
		// all removed. Dropping it avoids stray blank gaps.
		if s := renderBlock(b, opts); s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}

func renderBlock(b Block, opts RenderOptions) string {
	switch b := b.(type) {
	case *Heading:
		text := strings.ReplaceAll(renderInlines(b.Content), "\n", " ")
		return strings.Repeat("#", b.Level) + " " + text
	case *Paragraph:
		text := renderInlines(b.Content)
		if opts.Wrap > 0 {
			text = wordwrap.String(text, opts.Wrap)
		}
		return escapeBlockStarts(text)
	case *CodeBlock:
		fence := "```"
		for strings.Contains(b.Literal, fence) {
			fence += "`"
		}
		literal := strings.TrimRight(b.Literal, "\n")
		if literal == "" {
			return fence + b.Info + "\n" + fence
		}
		return fence + b.Info + "\n" + literal + "\n" + fence
	case *HTMLBlock:
		return strings.TrimRight(b.Literal, "\n")
	case *Blockquote:
		inner := strings.Join(renderBlocks(b.Blocks, opts), "\n\n")
		return prefixLines(inner, "> ", ">")
	case *List:
		return renderList(b, opts)
	case *Table:
		return renderTable(b)
	case *ThematicBreak:
		return "---"
	default:
		return ""
	}
}

func renderList(list *List, opts RenderOptions) string {
	// A tight list admits no blank line anywhere, including between the
	// blocks of one item: a blank line before a nested sublist would turn
	// the whole list loose on reparse.
	sep := "\n\n"
	if list.Tight {
		sep = "\n"
	}
	items := make([]string, 0, len(list.Items))
	for i, item := range list.Items {
		marker := listMarker(list, i)
		indent := strings.Repeat(" ", len(marker)+1)
		inner := strings.Join(renderBlocks(item.Blocks, opts), sep)
		if inner == "" {
			items = append(items, marker)
			continue
		}
		lines := strings.Split(inner, "\n")
		for j, line := range lines {
			switch {
			case j == 0:
				lines[j] = marker + " " + line
			case line == "":
				// blank lines stay blank, no trailing indent
			default:
				lines[j] = indent + line
			}
		}
		items = append(items, strings.Join(lines, "\n"))
	}
	return strings.Join(items, sep)
}

// prefixLines prepends prefix to every line, using emptyPrefix for blank
// lines so no trailing spaces appear.
func prefixLines(s, prefix, emptyPrefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = emptyPrefix
		} else {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

func listMarker(list *List, index int) string {
	if list.Ordered {
		punct := list.Marker
		if punct != '.' && punct != ')' {
			punct = '.'
		}
		return fmt.Sprintf("%d%c", list.Start+index, punct)
	}
	marker := list.Marker
	if marker != '-' && marker != '*' && marker != '+' {
		marker = '-'
	}
	return string(marker)
}

func renderTable(t *Table) string {
	cols := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return ""
	}

	var b strings.Builder
	writeRow := func(cells []*TableCell) {
		b.WriteString("|")
		for i := 0; i < cols; i++ {
			text := ""
			if i < len(cells) && cells[i] != nil {
				text = renderCell(cells[i])
			}
			b.WriteString(" " + text + " |")
		}
	}

	writeRow(t.Header)
	b.WriteString("\n|")
	for i := 0; i < cols; i++ {
		align := AlignNone
		if i < len(t.Alignments) {
			align = t.Alignments[i]
		}
		b.WriteString(" " + delimiterFor(align) + " |")
	}
	for _, row := range t.Rows {
		b.WriteString("\n")
		writeRow(row)
	}
	return b.String()
}

func delimiterFor(a Alignment) string {
	switch a {
	case AlignLeft:
		return ":---"
	case AlignCenter:
		return ":---:"
	case AlignRight:
		return "---:"
	default:
		return "---"
	}
}

// renderCell flattens cell content to a single line with pipes escaped.
func renderCell(c *TableCell) string {
	text := renderInlines(c.Content)
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.ReplaceAll(text, "|", "\\|")
}

func renderInlines(ins []Inline) string {
	var b strings.Builder
	for _, in := range ins {
		renderInline(&b, in)
	}
	return b.String()
}

func renderInline(b *strings.Builder, in Inline) {
	switch in := in.(type) {
	case *Text:
		b.WriteString(escapeText(in.Text))
	case *LineBreak:
		if in.Hard {
			b.WriteString("  \n")
		} else {
			b.WriteString("\n")
		}
	case *CodeSpan:
		delim := "`"
		for strings.Contains(in.Text, delim) {
			delim += "`"
		}
		if delim == "`" {
			b.WriteString("`" + in.Text + "`")
		} else {
			b.WriteString(delim + " " + in.Text + " " + delim)
		}
	case *Emphasis:
		marker := "*"
		if in.Level >= 2 {
			marker = "**"
		}
		b.WriteString(marker + renderInlines(in.Content) + marker)
	case *Strikethrough:
		b.WriteString("~~" + renderInlines(in.Content) + "~~")
	case *Link:
		b.WriteString("[" + renderInlines(in.Content) + "](" + linkTarget(in.Dest, in.Title) + ")")
	case *Image:
		b.WriteString("![" + escapeText(in.Alt) + "](" + linkTarget(in.Dest, in.Title) + ")")
	case *AutoLink:
		// Bare form: the GFM linkify extension re-links it on reparse,
		// while the <...> form would not survive for schemeless labels.
		b.WriteString(in.Label)
	case *RawHTML:
		b.WriteString(in.Text)
	case *TaskCheck:
		if in.Checked {
			b.WriteString("[x] ")
		} else {
			b.WriteString("[ ] ")
		}
	}
}

func linkTarget(dest, title string) string {
	if title == "" {
		return dest
	}
	return dest + ` "` + strings.ReplaceAll(title, `"`, `\"`) + `"`
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
)

// escapeText escapes characters that would otherwise be re-parsed as
// inline syntax.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// Line-start patterns that would turn a paragraph line into a different
// block kind on reparse.
var (
	atxStart       = regexp.MustCompile(`^#{1,6}(\s|$)`)
	bulletStart    = regexp.MustCompile(`^[-+](\s|$)`)
	orderedStart   = regexp.MustCompile(`^(\d{1,9})([.)])(\s)`)
	setextOrBreak  = regexp.MustCompile(`^(-{2,}|={1,})\s*$`)
	fenceStart     = regexp.MustCompile("^(```|~~~)")
	quoteStart     = regexp.MustCompile(`^>`)
	indentedSpaces = regexp.MustCompile(`^    `)
)

// escapeBlockStarts prevents paragraph lines from being re-parsed as
// headings, lists, blockquotes, fences or thematic breaks.
func escapeBlockStarts(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = escapeLineStart(line)
	}
	return strings.Join(lines, "\n")
}

func escapeLineStart(line string) string {
	switch {
	case line == "":
		return line
	case atxStart.MatchString(line),
		bulletStart.MatchString(line),
		setextOrBreak.MatchString(line),
		fenceStart.MatchString(line),
		quoteStart.MatchString(line):
		return `\` + line
	case orderedStart.MatchString(line):
		return orderedStart.ReplaceAllString(line, `$1\$2$3`)
	case indentedSpaces.MatchString(line):
		return strings.TrimLeft(line, " ")
	default:
		return line
	}
}
