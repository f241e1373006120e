// Command consecutive-header collapses runs of adjacent headings,
// keeping the first heading of each run.
package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	marku "github.com/HibernalGlow/marku"
	"github.com/HibernalGlow/marku/internal/cli"
)

func main() {
	var (
		maxLevel int
		minRun   int
	)

	app := &cli.App{
		Name:    "consecutive-header",
		Summary: "Collapse runs of consecutive headings into the first heading of each run.",
		Flags: func(fs *flag.FlagSet) {
			fs.IntVar(&maxLevel, "max-level", 0, "deepest heading level to touch (0 = all)")
			fs.IntVar(&minRun, "min-run", 2, "minimum run length to collapse")
		},
		FlagUsage: func(w io.Writer) {
			fmt.Fprintln(w, "      --max-level <n>   Deepest heading level to touch (0 = all)")
			fmt.Fprintln(w, "      --min-run <n>     Minimum run length to collapse (default: 2)")
		},
		Build: func(inv *cli.Invocation) ([]marku.Pass, error) {
			p, err := marku.NewConsecutiveHeaders(marku.HeaderOptions{
				MaxLevel: maxLevel,
				MinRun:   minRun,
			})
			if err != nil {
				return nil, err
			}
			return []marku.Pass{p}, nil
		},
	}

	os.Exit(cli.Main(app))
}
