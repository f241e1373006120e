// Package cli implements the shared command-line runner behind every
// marku binary. Each binary declares an App with its own flags and pass
// builder; the runner handles input, output, signals, and exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	marku "github.com/HibernalGlow/marku"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input: provide a file argument or pipe markdown on stdin")
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
	ErrTooManyArgs = errors.New("too many arguments")
)

// App describes one marku binary.
type App struct {
	Name    string
	Summary string

	// Flags registers app-specific flags. May be nil.
	Flags func(fs *flag.FlagSet)

	// Build constructs the pass chain after flags are parsed. It may
	// adjust inv.Format and inv.Wrap when the corresponding flags were
	// not set explicitly.
	Build func(inv *Invocation) ([]marku.Pass, error)

	// FlagUsage prints app-specific flag documentation. May be nil.
	FlagUsage func(w io.Writer)
}

// Invocation carries parsed common options into App.Build.
type Invocation struct {
	FlagSet *flag.FlagSet
	Format  string
	Wrap    int
}

// Dependencies holds injectable dependencies for testability.
type Dependencies struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	StdinTTY  func() bool
	Clipboard func(text string) error
}

// DefaultDeps returns production dependencies.
func DefaultDeps() *Dependencies {
	return &Dependencies{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		StdinTTY:  stdinIsTerminal,
		Clipboard: writeClipboard,
	}
}

// Main is the entry point shared by every binary. It configures the
// runtime, runs the app, and returns the process exit code.
func Main(app *App) int {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, app, os.Args[1:], DefaultDeps())
}

// Run executes the app against args and returns the exit code.
func Run(ctx context.Context, app *App, args []string, deps *Dependencies) int {
	if err := run(ctx, app, args, deps); err != nil {
		if errors.Is(err, errHelpShown) {
			return ExitSuccess
		}
		fmt.Fprintf(deps.Stderr, "%s: %v\n", app.Name, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// errHelpShown signals that -h/--help was handled; not an error.
var errHelpShown = errors.New("help shown")

func run(ctx context.Context, app *App, args []string, deps *Dependencies) error {
	f, positional, err := parseCommonFlags(app, args, deps.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printAppUsage(deps.Stdout, app)
			return errHelpShown
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: %s", ErrTooManyArgs, strings.Join(positional[1:], " "))
	}

	inv := &Invocation{FlagSet: f.fs, Format: f.format, Wrap: f.wrap}
	passes, err := app.Build(inv)
	if err != nil {
		return err
	}

	source, content, err := readInput(positional, deps)
	if err != nil {
		return err
	}
	if f.verbose {
		fmt.Fprintf(deps.Stderr, "Read %d bytes from %s\n", len(content), source)
	}

	// Front matter passes through untouched; only the body is transformed.
	prefix, body, err := splitFrontMatter(content)
	if err != nil {
		return err
	}
	if inv.Format != marku.FormatMarkdown {
		prefix = ""
	}

	svc := marku.New(passes...)
	start := time.Now()
	result, err := svc.Run(ctx, marku.Input{
		Markdown: body,
		Format:   inv.Format,
		Wrap:     inv.Wrap,
	})
	if err != nil {
		return err
	}
	if f.verbose {
		fmt.Fprintf(deps.Stderr, "Applied %d passes in %v\n", len(passes), time.Since(start).Round(time.Millisecond))
	}

	output := prefix + result.Output
	if err := writeOutput(output, source, f, deps); err != nil {
		return err
	}
	if f.verbose && !result.Changed {
		fmt.Fprintln(deps.Stderr, "No changes")
	}
	return nil
}
