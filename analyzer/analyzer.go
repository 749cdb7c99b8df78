// Package analyzer computes statistics and runs the fixed rule set over a
// loaded OpenAPI document.
//
// Analysis is a single deterministic pass: the same tree always produces the
// same Result. Rules never stop early; every rule is evaluated and appends at
// most one finding per condition to Errors or Warnings.
//
// A node with an unexpected kind (a path item that is a string, an operation
// that is null, a tags value that is a mapping, ...) is not recovered from:
// Analyze returns a *oaserrors.ShapeError and no Result.
package analyzer

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oacheck/document"
	"github.com/erraggy/oacheck/internal/issues"
	"github.com/erraggy/oacheck/internal/severity"
	"github.com/erraggy/oacheck/loader"
)

// Severity indicates the severity level of a finding
type Severity = severity.Severity

const (
	// SeverityError indicates a rule violation that makes the document invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a best practice gap
	SeverityWarning = severity.SeverityWarning
)

// Finding is a single error or warning produced by one rule evaluation
type Finding = issues.Issue

// Methods lists the HTTP methods counted as operations, in report order.
var Methods = []string{"get", "post", "put", "delete", "patch"}

// Result is everything the reporter needs: statistics, the summary views of
// info, tags and security schemes, per-rule check outcomes, and findings.
type Result struct {
	// Version is the outcome of the openapi version rule
	Version VersionCheck
	// Info holds the info block fields as they appear in the document
	Info Info
	// Stats holds the document counts
	Stats Stats
	// Tags lists the root tags in document order
	Tags []Tag
	// SecuritySchemes lists components.securitySchemes in document order
	SecuritySchemes []SecurityScheme
	// Checks records each rule outcome in evaluation order
	Checks []Check
	// Errors contains all error findings in rule order
	Errors []Finding
	// Warnings contains all warning findings in rule order
	Warnings []Finding
	// MissingResponses lists "METHOD path" for every operation without a
	// responses key. Only its length is reported.
	MissingResponses []string
}

// Valid reports whether no error findings were produced. Warnings are allowed.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// ErrorCount returns the number of error findings.
func (r *Result) ErrorCount() int { return len(r.Errors) }

// WarningCount returns the number of warning findings.
func (r *Result) WarningCount() int { return len(r.Warnings) }

// Check returns the recorded outcome for rule.
func (r *Result) Check(rule Rule) (Check, bool) {
	for _, c := range r.Checks {
		if c.Rule == rule {
			return c, true
		}
	}
	return Check{}, false
}

// Analyzer runs the rule set over a document tree.
type Analyzer struct {
	// IncludeWarnings determines whether warning findings are recorded
	IncludeWarnings bool
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default)
	Logger loader.Logger
}

// New creates a new Analyzer with default settings
func New() *Analyzer {
	return &Analyzer{IncludeWarnings: true}
}

// Analyze runs a default-configured Analyzer with opts applied.
func Analyze(root *document.Node, opts ...Option) (*Result, error) {
	a, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("analyzer: invalid options: %w", err)
	}
	return a.Analyze(root)
}

// log returns the configured logger, or a no-op logger if none is set.
func (a *Analyzer) log() loader.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return loader.NopLogger{}
}

// Analyze computes statistics and findings for root. A nil or non-mapping
// root is analyzed as an empty document.
func (a *Analyzer) Analyze(root *document.Node) (*Result, error) {
	p := &pass{
		analyzer: a,
		root:     root,
		lower:    cases.Lower(language.Und),
		upper:    cases.Upper(language.Und),
		result:   &Result{},
	}
	if err := p.collect(); err != nil {
		return nil, err
	}
	p.evaluate()

	a.log().Debug("analysis complete",
		"errors", p.result.ErrorCount(),
		"warnings", p.result.WarningCount(),
		"operations", p.result.Stats.Operations)
	return p.result, nil
}

// pass holds the state of one Analyze call.
type pass struct {
	analyzer *Analyzer
	root     *document.Node
	lower    cases.Caser
	upper    cases.Caser
	result   *Result

	paths      *document.Node
	components *document.Node
	info       *document.Node
}

func (p *pass) addError(rule Rule, path, msg string) {
	p.result.Errors = append(p.result.Errors, Finding{
		Rule:     string(rule),
		Path:     path,
		Message:  msg,
		Severity: SeverityError,
	})
}

func (p *pass) addWarning(rule Rule, path, msg string) {
	if !p.analyzer.IncludeWarnings {
		return
	}
	p.result.Warnings = append(p.result.Warnings, Finding{
		Rule:     string(rule),
		Path:     path,
		Message:  msg,
		Severity: SeverityWarning,
	})
}

func (p *pass) record(rule Rule, passed bool) {
	p.result.Checks = append(p.result.Checks, Check{Rule: rule, Passed: passed})
	p.analyzer.log().Debug("rule evaluated", "rule", string(rule), "passed", passed)
}
