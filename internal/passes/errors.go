package passes

import "errors"

// Sentinel errors shared by the transform passes.
var (
	// ErrUnsupportedStructure indicates the input uses a Markdown feature
	// with no faithful representation in the target form.
	ErrUnsupportedStructure = errors.New("unsupported structure")

	// ErrEmptyPrefix indicates an image path rewrite with no source prefix.
	ErrEmptyPrefix = errors.New("old prefix cannot be empty")
)
