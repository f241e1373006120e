// Command title-normalize converts numbered title lines inside
// paragraphs into headings, normalizing Chinese numerals on the way.
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
	var levels []int

	app := &cli.App{
		Name:    "title-normalize",
		Summary: "Convert numbered title lines inside paragraphs into headings.",
		Flags: func(fs *flag.FlagSet) {
			fs.IntSliceVar(&levels, "levels", nil, "title rules to run, by heading level (empty = all)")
		},
		FlagUsage: func(w io.Writer) {
			fmt.Fprintln(w, "      --levels <n,...>  Title rules to run, by heading level (empty = all)")
		},
		Build: func(inv *cli.Invocation) ([]marku.Pass, error) {
			p, err := marku.NewTitleNormalize(marku.TitleOptions{Levels: levels})
			if err != nil {
				return nil, err
			}
			return []marku.Pass{p}, nil
		},
	}

	os.Exit(cli.Main(app))
}
