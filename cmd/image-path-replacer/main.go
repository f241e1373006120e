// Command image-path-replacer rewrites image destinations that start
// with a given prefix.
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
		oldPrefix string
		newPrefix string
	)

	app := &cli.App{
		Name:    "image-path-replacer",
		Summary: "Rewrite image destinations that start with a given prefix.",
		Flags: func(fs *flag.FlagSet) {
			fs.StringVar(&oldPrefix, "old-prefix", "", "prefix to replace (required)")
			fs.StringVar(&newPrefix, "new-prefix", "", "replacement prefix (empty = strip)")
		},
		FlagUsage: func(w io.Writer) {
			fmt.Fprintln(w, "      --old-prefix <s>  Prefix to replace (required)")
			fmt.Fprintln(w, "      --new-prefix <s>  Replacement prefix (empty = strip)")
		},
		Build: func(inv *cli.Invocation) ([]marku.Pass, error) {
			p, err := marku.NewImagePath(marku.ImagePathOptions{
				OldPrefix: oldPrefix,
				NewPrefix: newPrefix,
			})
			if err != nil {
				return nil, err
			}
			return []marku.Pass{p}, nil
		},
	}

	os.Exit(cli.Main(app))
}
