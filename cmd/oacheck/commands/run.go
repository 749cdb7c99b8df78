// Package commands implements the oacheck run: load the document, analyze
// it, render the report, and classify the result as an Outcome.
package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/erraggy/oacheck/analyzer"
	"github.com/erraggy/oacheck/internal/cliutil"
	"github.com/erraggy/oacheck/loader"
	"github.com/erraggy/oacheck/oaserrors"
	"github.com/erraggy/oacheck/reporter"
)

// DefaultPath is the document oacheck reads from the working directory.
const DefaultPath = "openapi.yaml"

// Config holds the settings for one run.
type Config struct {
	// Path is the document to check (default: DefaultPath)
	Path string
	// Logger receives debug events from loading and analysis
	Logger loader.Logger
	// Color enables coloured report markers
	Color bool
	// Version is printed under the report banner when non-empty
	Version string
}

func (c Config) path() string {
	if c.Path == "" {
		return DefaultPath
	}
	return c.Path
}

func (c Config) log() loader.Logger {
	if c.Logger == nil {
		return loader.NopLogger{}
	}
	return c.Logger
}

// Run checks the configured document. It never panics: a panic anywhere
// below it is returned as an UnexpectedFailure carrying the stack.
func Run(cfg Config) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = UnexpectedFailure{
				Message: fmt.Sprint(r),
				Trace:   string(debug.Stack()),
			}
		}
	}()

	log := cfg.log().With("path", cfg.path())

	l := loader.New()
	l.Logger = log
	doc, err := l.Load(cfg.path())
	if err != nil {
		return classify(err)
	}

	a := analyzer.New()
	a.Logger = log
	res, err := a.Analyze(doc.Root)
	if err != nil {
		return classify(err)
	}

	var buf bytes.Buffer
	r := reporter.New(reporter.WithColor(cfg.Color), reporter.WithVersion(cfg.Version))
	if err := r.Render(&buf, res); err != nil {
		return classify(err)
	}

	return Success{Report: buf.String(), HasErrors: !res.Valid()}
}

// classify sorts an error into the parse or unexpected tier.
func classify(err error) Outcome {
	var pe *oaserrors.ParseError
	if errors.As(err, &pe) {
		msg := pe.Error()
		if pe.Cause != nil {
			msg = pe.Cause.Error()
		}
		return ParseFailure{Message: msg}
	}
	return UnexpectedFailure{Message: err.Error(), Trace: errorChain(err)}
}

// errorChain lists err and each error it wraps, outermost first.
func errorChain(err error) string {
	var sb strings.Builder
	for depth := 0; err != nil; depth++ {
		fmt.Fprintf(&sb, "%s%T: %v\n", strings.Repeat("  ", depth), err, err)
		err = errors.Unwrap(err)
	}
	return sb.String()
}

// Print writes an outcome the way the binary shows it: the report or the
// error line on stdout, the trace of an unexpected failure on stderr.
func Print(stdout, stderr io.Writer, o Outcome) {
	switch o := o.(type) {
	case Success:
		cliutil.Writef(stdout, "%s", o.Report)
	case ParseFailure:
		cliutil.Writef(stdout, "✗ YAML parsing error: %s\n", o.Message)
	case UnexpectedFailure:
		cliutil.Writef(stdout, "✗ Error: %s\n", o.Message)
		if o.Trace != "" {
			cliutil.Writef(stderr, "%s", o.Trace)
			if !strings.HasSuffix(o.Trace, "\n") {
				cliutil.Writef(stderr, "\n")
			}
		}
	}
}
