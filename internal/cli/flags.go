package cli

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by every binary.
type commonFlags struct {
	fs *flag.FlagSet

	output    string
	clipboard bool
	format    string
	wrap      int
	quiet     bool
	verbose   bool
	inPlace   bool
}

// parseCommonFlags parses shared and app-specific flags, returning
// positional args.
func parseCommonFlags(app *App, args []string, errOut io.Writer) (*commonFlags, []string, error) {
	fs := flag.NewFlagSet(app.Name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	f := &commonFlags{fs: fs}

	fs.StringVarP(&f.output, "output", "o", "", "write output to file instead of stdout")
	fs.BoolVarP(&f.inPlace, "in-place", "i", false, "rewrite the input file in place")
	fs.BoolVar(&f.clipboard, "clipboard", false, "also copy output to the system clipboard")
	fs.StringVar(&f.format, "format", "markdown", "output format: markdown, html")
	fs.IntVar(&f.wrap, "wrap", 0, "wrap paragraphs at column (0 = no wrapping)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")

	if app.Flags != nil {
		app.Flags(fs)
	}

	fs.Usage = func() { printAppUsage(errOut, app) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
