package passes

import (
	"strings"

	"github.com/HibernalGlow/marku/internal/mdtree"
)

// ImagePathOptions configures ReplaceImagePaths.
type ImagePathOptions struct {
	OldPrefix string
	NewPrefix string
}

// ReplaceImagePaths rewrites the destination of every image whose path
// starts with OldPrefix, swapping it for NewPrefix. Matching is exact
// prefix, not a pattern, so partial path components never match by
// accident. Non-matching images are untouched.
func ReplaceImagePaths(doc *mdtree.Document, opts ImagePathOptions) error {
	if opts.OldPrefix == "" {
		return ErrEmptyPrefix
	}
	mdtree.VisitImages(doc.Blocks, func(img *mdtree.Image) {
		if strings.HasPrefix(img.Dest, opts.OldPrefix) {
			img.Dest = opts.NewPrefix + img.Dest[len(opts.OldPrefix):]
		}
	})
	return nil
}
