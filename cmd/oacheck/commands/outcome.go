package commands

// Outcome is the result of one run: a Success, a ParseFailure or an
// UnexpectedFailure.
type Outcome interface {
	outcome()
}

// Success means the document was read, parsed and analyzed. Findings,
// including errors, are part of the report.
type Success struct {
	// Report is the rendered report text
	Report string
	// HasErrors is true when the analysis produced at least one error
	HasErrors bool
}

// ParseFailure means the document is not well-formed YAML.
type ParseFailure struct {
	// Message is the decoder's description of the problem
	Message string
}

// UnexpectedFailure covers everything else: the file could not be read,
// a node had the wrong kind, or a panic was recovered.
type UnexpectedFailure struct {
	// Message describes the failure
	Message string
	// Trace is diagnostic detail for stderr: the error chain, or the
	// goroutine stack for a recovered panic
	Trace string
}

func (Success) outcome()           {}
func (ParseFailure) outcome()      {}
func (UnexpectedFailure) outcome() {}

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
)

// ExitCode maps an outcome to the process exit status.
func ExitCode(o Outcome) int {
	if s, ok := o.(Success); ok && !s.HasErrors {
		return ExitOK
	}
	return ExitFailure
}
