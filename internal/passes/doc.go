// Package passes implements the tree-to-tree transform passes behind the
// marku command-line tools.
//
// Every pass is a deterministic rewrite of an mdtree.Document:
//   - ConsecutiveHeaders collapses runs of same-level headings
//   - Dedup removes blocks with repeated content fingerprints
//   - ReplaceContent normalizes punctuation and applies rewrite rules
//   - ReplaceImagePaths rewrites image destinations by exact prefix
//   - RemoveSingleItemLists unwraps ordered lists with a single item
//   - ConvertHTMLTables turns raw HTML tables into pipe tables
//   - HeadingsToList converts the heading outline into a nested list
//   - NormalizeTitles promotes Chinese-numbered lines to headings
//
// Passes are total over well-formed trees: a document the pass does not
// apply to comes back unchanged. The one declared failure mode is
// ErrUnsupportedStructure, returned when input uses a Markdown feature the
// target form cannot represent (merged table cells).
package passes
