// Package cliutil provides output helpers shared by the report renderer and
// the oacheck binary.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Printer writes formatted lines and remembers the first write error.
// Once a write fails, later writes are skipped.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Rule writes a line of width '=' characters.
func (p *Printer) Rule(width int) {
	p.Printf("%s\n", strings.Repeat("=", width))
}

// Banner writes title framed by two rules.
func (p *Printer) Banner(width int, title string) {
	p.Rule(width)
	p.Printf("%s\n", title)
	p.Rule(width)
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}
