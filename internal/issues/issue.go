// Package issues provides the finding type produced by analyzer rules.
package issues

import (
	"fmt"

	"github.com/erraggy/oacheck/internal/severity"
)

// Issue represents a single finding produced by one rule evaluation.
type Issue struct {
	// Rule identifies the rule that produced the issue (e.g., "info")
	Rule string
	// Path is the dotted path to the problematic field (e.g., "info.title")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
}

// String returns a formatted string representation of the issue.
// Uses "✗" for errors and "⚠" for warnings.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	default:
		symbol = "?"
	}
	if i.Path == "" {
		return fmt.Sprintf("%s %s", symbol, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
}

// IsError reports whether the issue affects document validity.
func (i Issue) IsError() bool {
	return i.Severity == severity.SeverityError
}

// Messages returns the Message of every issue, in order.
func Messages(list []Issue) []string {
	out := make([]string, len(list))
	for n, i := range list {
		out[n] = i.Message
	}
	return out
}
