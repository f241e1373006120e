package cli

import (
	"errors"

	marku "github.com/HibernalGlow/marku"
	"github.com/HibernalGlow/marku/internal/config"
)

// Exit codes for marku binaries.
// Follows Unix conventions: 0=success, 1=general/IO, 2=usage.
const (
	ExitSuccess = 0 // Document transformed and written
	ExitGeneral = 1 // I/O or unexpected error
	ExitUsage   = 2 // Invalid flags, config, or unsupported input
)

// errUsage marks flag and argument mistakes for exit-code mapping.
var errUsage = errors.New("usage error")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage, config, validation, and unsupported-structure errors (exit 2)
	if errors.Is(err, errUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrUnknownStep) ||
		errors.Is(err, config.ErrEmptyPipeline) ||
		errors.Is(err, marku.ErrUnsupportedStructure) ||
		errors.Is(err, marku.ErrEmptyPrefix) ||
		errors.Is(err, marku.ErrInvalidFormat) ||
		errors.Is(err, marku.ErrInvalidWrap) ||
		errors.Is(err, marku.ErrInvalidLevel) ||
		errors.Is(err, marku.ErrInvalidMinRun) ||
		errors.Is(err, marku.ErrInvalidPattern) ||
		errors.Is(err, ErrFrontMatter) {
		return ExitUsage
	}

	return ExitGeneral
}
