// Package severity provides severity level constants for findings reported
// by the analyzer.
//
// The levels are ordered from most to least severe:
//   - SeverityError: a rule violation that makes the document invalid
//   - SeverityWarning: a best-practice gap that does not affect validity
package severity

// Severity indicates the severity level of a finding.
type Severity int

const (
	// SeverityError indicates a rule violation that makes the document invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a best-practice gap that should be addressed
	// but does not make the document invalid.
	SeverityWarning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
