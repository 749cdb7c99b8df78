package loader

import (
	"fmt"
	"io"

	"github.com/erraggy/oacheck/internal/options"
	"github.com/erraggy/oacheck/oaserrors"
)

// Option is a function that configures a load operation
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation
type loadConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger Logger

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// LoadWithOptions loads a document using functional options.
//
// Example:
//
//	result, err := loader.LoadWithOptions(
//	    loader.WithFilePath("openapi.yaml"),
//	    loader.WithLogger(logger),
//	)
func LoadWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: invalid options: %w", err)
	}

	l := &Loader{Logger: cfg.logger}

	var result *Result
	switch {
	case cfg.filePath != nil:
		result, err = l.Load(*cfg.filePath)
	case cfg.reader != nil:
		result, err = l.LoadReader(cfg.reader)
	default:
		result, err = l.LoadBytes(cfg.bytes)
	}
	if err != nil {
		return nil, err
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "WithBytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets the structured logger for load diagnostics.
// Default: NopLogger
func WithLogger(l Logger) Option {
	return func(cfg *loadConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithSourceName overrides the SourcePath reported in the Result.
// Useful when loading from a reader or bytes.
func WithSourceName(name string) Option {
	return func(cfg *loadConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
