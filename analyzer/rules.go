package analyzer

import (
	"fmt"
	"strings"
)

// Rule identifies one rule of the fixed rule set.
type Rule string

// Rules in evaluation order.
const (
	RuleVersion   Rule = "openapi-version"
	RuleInfo      Rule = "info"
	RulePaths     Rule = "paths"
	RuleSchemas   Rule = "schemas"
	RuleResponses Rule = "responses"
	RuleSecurity  Rule = "security"
)

// Check is the outcome of one rule evaluation.
type Check struct {
	Rule   Rule
	Passed bool
}

// supportedVersionPrefix is the only openapi version family accepted.
const supportedVersionPrefix = "3.0"

// VersionStatus is the outcome of the version rule. Missing and Unsupported
// are exclusive: a document without an openapi key is never also reported
// as unsupported.
type VersionStatus int

const (
	// VersionOK means openapi is present and starts with "3.0"
	VersionOK VersionStatus = iota
	// VersionMissing means the root has no openapi key
	VersionMissing
	// VersionUnsupported means openapi is present but not a 3.0.x version
	VersionUnsupported
)

// String returns the status name.
func (s VersionStatus) String() string {
	switch s {
	case VersionOK:
		return "ok"
	case VersionMissing:
		return "missing"
	case VersionUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// VersionCheck is the tagged outcome of the version rule. Value holds the
// declared version text when Status is VersionUnsupported or VersionOK.
type VersionCheck struct {
	Status VersionStatus
	Value  string
}

// checkVersion classifies the root openapi value. Scalars are compared by
// their source text, so an unquoted 3.0 reads as "3.0".
func (p *pass) checkVersion() VersionCheck {
	v, ok := p.root.Get("openapi")
	if !ok {
		return VersionCheck{Status: VersionMissing}
	}
	text, isScalar := v.Text()
	if !isScalar {
		return VersionCheck{Status: VersionUnsupported, Value: v.Display()}
	}
	if !strings.HasPrefix(text, supportedVersionPrefix) {
		return VersionCheck{Status: VersionUnsupported, Value: text}
	}
	return VersionCheck{Status: VersionOK, Value: text}
}

// evaluate runs every rule in order. No rule depends on another's outcome.
func (p *pass) evaluate() {
	p.ruleVersion()
	p.ruleInfo()
	p.rulePaths()
	p.ruleSchemas()
	p.ruleResponses()
	p.ruleSecurity()
}

func (p *pass) ruleVersion() {
	vc := p.checkVersion()
	p.result.Version = vc
	switch vc.Status {
	case VersionMissing:
		p.addError(RuleVersion, "openapi", "Missing 'openapi' version")
	case VersionUnsupported:
		p.addError(RuleVersion, "openapi", fmt.Sprintf("Unsupported OpenAPI version: %s", vc.Value))
	}
	p.record(RuleVersion, vc.Status == VersionOK)
}

// ruleInfo skips the title and version checks when info itself is absent.
// The check passes on a title alone; a missing version is only an error.
func (p *pass) ruleInfo() {
	if !p.root.Has("info") {
		p.addError(RuleInfo, "info", "Missing 'info' section")
		p.record(RuleInfo, false)
		return
	}
	hasTitle := p.info.Has("title")
	if !hasTitle {
		p.addError(RuleInfo, "info.title", "Missing 'info.title'")
	}
	if !p.info.Has("version") {
		p.addError(RuleInfo, "info.version", "Missing 'info.version'")
	}
	p.record(RuleInfo, hasTitle)
}

func (p *pass) rulePaths() {
	if !p.root.Has("paths") || p.paths.Len() == 0 {
		p.addError(RulePaths, "paths", "No paths defined")
		p.record(RulePaths, false)
		return
	}
	p.record(RulePaths, true)
}

// ruleSchemas checks key existence only; an empty schemas mapping passes.
func (p *pass) ruleSchemas() {
	if !p.components.Has("schemas") {
		p.addWarning(RuleSchemas, "components.schemas", "No schemas defined in components")
		p.record(RuleSchemas, false)
		return
	}
	p.record(RuleSchemas, true)
}

// ruleResponses reports one aggregate error with the count of operations
// missing responses.
func (p *pass) ruleResponses() {
	if n := len(p.result.MissingResponses); n > 0 {
		p.addError(RuleResponses, "paths", fmt.Sprintf("Missing 'responses' in %d operations", n))
		p.record(RuleResponses, false)
		return
	}
	p.record(RuleResponses, true)
}

func (p *pass) ruleSecurity() {
	if !p.root.Has("security") && !p.components.Has("securitySchemes") {
		p.addWarning(RuleSecurity, "security", "No security configuration found")
		p.record(RuleSecurity, false)
		return
	}
	p.record(RuleSecurity, true)
}
