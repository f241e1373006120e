package cli

import (
	"fmt"
	"io"
)

// printAppUsage prints the usage message for a binary.
func printAppUsage(w io.Writer, app *App) {
	fmt.Fprintf(w, "Usage: %s [flags] [file]\n", app.Name)
	fmt.Fprintln(w)
	fmt.Fprintln(w, app.Summary)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file    Markdown file (optional, reads stdin when piped)")
	fmt.Fprintln(w)
	if app.FlagUsage != nil {
		fmt.Fprintln(w, "Flags:")
		app.FlagUsage(w)
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>   Write output to file instead of stdout")
	fmt.Fprintln(w, "  -i, --in-place        Rewrite the input file in place")
	fmt.Fprintln(w, "      --clipboard       Also copy output to the system clipboard")
	fmt.Fprintln(w, "      --format <s>      Output format: markdown, html")
	fmt.Fprintln(w, "      --wrap <n>        Wrap paragraphs at column (0 = no wrapping)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show detailed progress")
}
