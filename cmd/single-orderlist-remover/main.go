// Command single-orderlist-remover unwraps ordered lists that contain
// exactly one item, splicing the item content into the surrounding flow.
package main

import (
	"os"

	marku "github.com/HibernalGlow/marku"
	"github.com/HibernalGlow/marku/internal/cli"
)

func main() {
	app := &cli.App{
		Name:    "single-orderlist-remover",
		Summary: "Unwrap ordered lists that contain exactly one item.",
		Build: func(inv *cli.Invocation) ([]marku.Pass, error) {
			return []marku.Pass{marku.NewSingleItemLists()}, nil
		},
	}

	os.Exit(cli.Main(app))
}
