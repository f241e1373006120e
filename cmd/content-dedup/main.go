// Command content-dedup removes duplicated blocks from a document,
// keeping the first occurrence of each.
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
	var images bool

	app := &cli.App{
		Name:    "content-dedup",
		Summary: "Remove duplicated blocks, keeping the first occurrence of each.",
		Flags: func(fs *flag.FlagSet) {
			fs.BoolVar(&images, "images", false, "also drop repeated images by destination")
		},
		FlagUsage: func(w io.Writer) {
			fmt.Fprintln(w, "      --images          Also drop repeated images by destination")
		},
		Build: func(inv *cli.Invocation) ([]marku.Pass, error) {
			return []marku.Pass{marku.NewDedup(marku.DedupOptions{Images: images})}, nil
		},
	}

	os.Exit(cli.Main(app))
}
