// Package marku rewrites Markdown documents through a single-pass
// transform pipeline: parse, walk the tree, re-serialize.
//
// # Quick Start
//
// Build a service from one or more passes and run it over a document:
//
//	p, err := marku.NewConsecutiveHeaders(marku.HeaderOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc := marku.New(p)
//
//	res, err := svc.Run(ctx, marku.Input{Markdown: "# A\n# B\n\ntext\n"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res.Output)
//
// # Pipeline
//
// Each run follows the same stages:
//
//  1. Line ending normalization
//  2. Markdown parsing via Goldmark (GFM) into a closed node tree
//  3. Transform passes, applied once each in order
//  4. Canonical Markdown rendering, or HTML via Goldmark
//
// The tree is owned by one run: built by the parser adapter, mutated by
// the passes, consumed by the renderer. Passes never fail on well-formed
// trees, with one exception: converting an HTML table that uses merged
// cells returns ErrUnsupportedStructure, since pipe tables cannot
// represent the merge.
//
// # Passes
//
// One pass exists per command-line tool:
//
//	NewConsecutiveHeaders  collapse runs of same-level headings
//	NewContentReplace      normalize punctuation, apply rewrite rules
//	NewDedup               remove blocks with repeated content
//	NewImagePath           rewrite image paths by exact prefix
//	NewSingleItemLists     unwrap one-item ordered lists
//	NewHTMLTables          convert HTML tables to pipe tables
//	NewTextToList          turn the heading outline into a nested list
//	NewTitleNormalize      promote Chinese-numbered lines to headings
//
// Every pass is idempotent: applying it twice yields the same document
// as applying it once.
package marku
