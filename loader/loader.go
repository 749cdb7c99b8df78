// Package loader reads a single OpenAPI document into a document.Node tree.
//
// The loader accepts YAML or JSON (JSON is read as YAML). The input must
// hold exactly one document. Malformed input, including a stream with a
// second document, yields a *oaserrors.ParseError; a read failure yields
// the wrapped os error so callers can tell the two apart:
//
//	res, err := loader.Load("openapi.yaml")
//	switch {
//	case errors.Is(err, oaserrors.ErrParse):
//	    // not well-formed YAML
//	case err != nil:
//	    // could not read the file
//	}
//
// The root of a loaded document may be any kind. Consumers read a
// non-mapping root as an empty mapping via document.Node.Lookup.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oacheck/document"
	"github.com/erraggy/oacheck/oaserrors"
)

// Result is a loaded document plus metadata about its source.
type Result struct {
	// Root is the document tree. It is never nil; an empty input yields a null node.
	Root *document.Node
	// SourcePath is the file path, or "<bytes>"/"<reader>" for in-memory input
	SourcePath string
	// SourceSize is the input size in bytes
	SourceSize int64
}

// Loader reads OpenAPI documents.
type Loader struct {
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Loader with default settings
func New() *Loader {
	return &Loader{}
}

// Load reads and decodes the file at path, a convenience for
// LoadWithOptions(WithFilePath(path)).
func Load(path string) (*Result, error) {
	return New().Load(path)
}

// log returns the configured logger, or a no-op logger if none is set.
func (l *Loader) log() Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return NopLogger{}
}

// Load reads and decodes the file at path.
func (l *Loader) Load(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: failed to read file: %w", err)
	}
	l.log().Debug("read document", "path", path, "bytes", len(data))
	return l.decode(data, path)
}

// LoadReader reads r to completion and decodes it.
func (l *Loader) LoadReader(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: failed to read data: %w", err)
	}
	return l.decode(data, "<reader>")
}

// LoadBytes decodes data.
func (l *Loader) LoadBytes(data []byte) (*Result, error) {
	return l.decode(data, "<bytes>")
}

// ErrMultipleDocuments is the parse error cause when the input holds more
// than one YAML document.
var ErrMultipleDocuments = errors.New("expected a single document in the stream, but found another document")

func (l *Loader) decode(data []byte, source string) (*Result, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var node yaml.Node
	err := dec.Decode(&node)
	switch {
	case errors.Is(err, io.EOF):
		// Empty stream: node stays zero and builds as a null root.
	case err != nil:
		l.log().Debug("yaml decode failed", "source", source, "error", err)
		return nil, newParseError(source, err)
	default:
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			if err == nil {
				err = fmt.Errorf("yaml: line %d: %w", extra.Line, ErrMultipleDocuments)
			}
			l.log().Debug("yaml decode failed", "source", source, "error", err)
			return nil, newParseError(source, err)
		}
	}

	root, err := document.FromYAML(&node)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: source, Cause: err}
	}

	l.log().Debug("document loaded", "source", source, "root", root.Kind().String())

	return &Result{
		Root:       root,
		SourcePath: source,
		SourceSize: int64(len(data)),
	}, nil
}

var (
	lineRe   = regexp.MustCompile(`line (\d+)`)
	columnRe = regexp.MustCompile(`column (\d+)`)
)

// newParseError wraps a YAML decode error, pulling the position out of the
// message when the decoder reported one.
func newParseError(source string, cause error) *oaserrors.ParseError {
	pe := &oaserrors.ParseError{Path: source, Cause: cause}
	msg := cause.Error()
	if m := lineRe.FindStringSubmatch(msg); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
	}
	if m := columnRe.FindStringSubmatch(msg); m != nil {
		pe.Column, _ = strconv.Atoi(m[1])
	}
	return pe
}
