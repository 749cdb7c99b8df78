package analyzer

import "github.com/erraggy/oacheck/loader"

// Option is a function that configures an analysis
type Option func(*Analyzer) error

// applyOptions applies option functions on top of New's defaults
func applyOptions(opts ...Option) (*Analyzer, error) {
	a := New()
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// WithIncludeWarnings enables or disables warning findings.
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(a *Analyzer) error {
		a.IncludeWarnings = enabled
		return nil
	}
}

// WithLogger sets the structured logger for rule diagnostics.
// Default: NopLogger
func WithLogger(l loader.Logger) Option {
	return func(a *Analyzer) error {
		a.Logger = l
		return nil
	}
}
