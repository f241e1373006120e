// Command t2list converts a heading outline into nested ordered lists.
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
	var noBold bool

	app := &cli.App{
		Name:    "t2list",
		Summary: "Convert a heading outline into nested ordered lists.",
		Flags: func(fs *flag.FlagSet) {
			fs.BoolVar(&noBold, "no-bold", false, "do not wrap converted titles in strong emphasis")
		},
		FlagUsage: func(w io.Writer) {
			fmt.Fprintln(w, "      --no-bold         Do not wrap converted titles in strong emphasis")
		},
		Build: func(inv *cli.Invocation) ([]marku.Pass, error) {
			return []marku.Pass{marku.NewTextToList(marku.TextListOptions{Bold: !noBold})}, nil
		},
	}

	os.Exit(cli.Main(app))
}
