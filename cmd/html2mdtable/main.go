// Command html2mdtable converts raw HTML tables embedded in a document
// into pipe-style Markdown tables. Tables using rowspan or colspan are
// rejected rather than silently flattened.
package main

import (
	"os"

	marku "github.com/HibernalGlow/marku"
	"github.com/HibernalGlow/marku/internal/cli"
)

func main() {
	app := &cli.App{
		Name:    "html2mdtable",
		Summary: "Convert embedded HTML tables into pipe-style Markdown tables.",
		Build: func(inv *cli.Invocation) ([]marku.Pass, error) {
			return []marku.Pass{marku.NewHTMLTables()}, nil
		},
	}

	os.Exit(cli.Main(app))
}
