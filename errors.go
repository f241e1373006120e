package marku

import (
	"errors"

	"github.com/HibernalGlow/marku/internal/passes"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrInvalidFormat  = errors.New("invalid output format")
	ErrInvalidWrap    = errors.New("invalid wrap column")
	ErrInvalidLevel   = errors.New("invalid heading level")
	ErrInvalidMinRun  = errors.New("invalid run length")
	ErrInvalidPattern = errors.New("invalid replacement pattern")

	// Re-exported pass sentinels so callers can dispatch with errors.Is
	// without reaching into internal packages.
	ErrUnsupportedStructure = passes.ErrUnsupportedStructure
	ErrEmptyPrefix          = passes.ErrEmptyPrefix
)
