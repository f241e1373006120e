package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/HibernalGlow/marku/internal/fileutil"
)

// stdinLabel names piped input in verbose output and error messages.
const stdinLabel = "stdin"

// readInput reads markdown from the positional file argument or stdin.
// Reading stdin from an interactive terminal is rejected so the binary
// never blocks waiting for input nobody is typing.
func readInput(positional []string, deps *Dependencies) (source, content string, err error) {
	if len(positional) == 1 {
		path := positional[0]
		data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return path, string(data), nil
	}

	if deps.StdinTTY() {
		return "", "", ErrNoInput
	}

	data, err := io.ReadAll(deps.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return stdinLabel, string(data), nil
}

// writeOutput delivers the transformed document to the chosen sinks.
// The clipboard sink is best-effort: a failure warns but never fails
// the run, since the primary sink already received the output.
func writeOutput(output, source string, f *commonFlags, deps *Dependencies) error {
	dest := f.output
	if f.inPlace {
		if source == stdinLabel || source == "" {
			return fmt.Errorf("%w: --in-place requires a file argument", errUsage)
		}
		if dest != "" {
			return fmt.Errorf("%w: --in-place and --output are mutually exclusive", errUsage)
		}
		dest = source
	}

	if dest != "" {
		if err := fileutil.WriteFileAtomic(dest, []byte(output), 0o644); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if !f.quiet && deps.Stderr != nil && f.verbose {
			fmt.Fprintf(deps.Stderr, "Wrote %s\n", dest)
		}
	} else {
		if _, err := io.WriteString(deps.Stdout, output); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	if f.clipboard {
		if err := deps.Clipboard(output); err != nil && !f.quiet {
			fmt.Fprintf(deps.Stderr, "warning: clipboard copy failed: %v\n", err)
		}
	}
	return nil
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func writeClipboard(text string) error {
	return clipboard.WriteAll(text)
}
