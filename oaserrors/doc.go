// Package oaserrors provides structured error types for oacheck.
//
// Import path: github.com/erraggy/oacheck/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a malformed document apart from a document whose
// shape the analyzer cannot walk.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON syntax failures while loading the document
//   - [ShapeError]: a node has the wrong kind for where it appears (e.g. an operation that is not a mapping)
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrShape]: Matches any [ShapeError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	res, err := loader.Load("openapi.yaml")
//	if errors.Is(err, oaserrors.ErrParse) {
//	    // The file is not well-formed YAML
//	}
//
//	var shapeErr *oaserrors.ShapeError
//	if errors.As(err, &shapeErr) {
//	    fmt.Printf("%s: expected %s, got %s\n", shapeErr.Path, shapeErr.Expected, shapeErr.Actual)
//	}
package oaserrors
