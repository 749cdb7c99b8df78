// Package reporter renders an analyzer.Result as a human-readable text report.
//
// Rendering is pure formatting: every decision (which checks passed, which
// findings exist) is already in the Result. With colour disabled the output
// depends only on the Result, so repeated runs over the same document are
// byte-identical.
package reporter

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oacheck/analyzer"
	"github.com/erraggy/oacheck/internal/cliutil"
	"github.com/erraggy/oacheck/internal/issues"
	"github.com/erraggy/oacheck/internal/stringutil"
)

const (
	separatorWidth = 60
	// truncateWidth is how many characters of a description are shown.
	truncateWidth = 50
	notAvailable  = "N/A"
	noDescription = "No description"
)

// Reporter formats analysis results.
type Reporter struct {
	// Color enables ANSI colour on markers and the closing message
	Color bool
	// Version, when set, is printed under the banner
	Version string
}

// Option is a function that configures a Reporter
type Option func(*Reporter)

// WithColor enables or disables coloured markers.
// Default: false
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		r.Color = enabled
	}
}

// WithVersion sets the tool version printed under the banner.
// Default: "" (not printed)
func WithVersion(v string) Option {
	return func(r *Reporter) {
		r.Version = v
	}
}

// New creates a Reporter with opts applied.
func New(opts ...Option) *Reporter {
	r := &Reporter{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// palette holds the colour helpers for one Render call.
type palette struct {
	pass, fail, warn, bold func(a ...any) string
}

func (r *Reporter) palette() palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if r.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		pass: mk(color.FgGreen),
		fail: mk(color.FgRed),
		warn: mk(color.FgYellow),
		bold: mk(color.Bold),
	}
}

// Render writes the full report for res to w. It returns the first write
// error, if any.
func (r *Reporter) Render(w io.Writer, res *analyzer.Result) error {
	p := r.palette()
	out := cliutil.NewPrinter(w)
	upper := cases.Upper(language.Und)

	out.Banner(separatorWidth, p.bold("OpenAPI YAML Validation Report"))
	if r.Version != "" {
		out.Printf("oacheck version: %s\n", r.Version)
	}
	out.Printf("\n%s YAML syntax is VALID!\n", p.pass("✓"))

	info := res.Info
	out.Printf("\nOpenAPI Information:\n")
	out.Printf("  - Version: %s\n", info.OpenAPI.Or(notAvailable))
	out.Printf("  - Title: %s\n", info.Title.Or(notAvailable))
	out.Printf("  - API Version: %s\n", info.Version.Or(notAvailable))
	out.Printf("  - Description: %s...\n", stringutil.Truncate(info.Description.Or(""), truncateWidth))

	stats := res.Stats
	out.Printf("\nAPI Statistics:\n")
	out.Printf("  - Total Paths: %d\n", stats.Paths)
	out.Printf("  - Total Schemas: %d\n", stats.Schemas)
	out.Printf("  - Security Schemes: %d\n", stats.SecuritySchemes)
	out.Printf("  - Tags: %d\n", stats.Tags)
	out.Printf("  - Total Operations: %d\n", stats.Operations)

	out.Printf("\nOperations by Method:\n")
	for _, m := range stats.Methods {
		if m.Count > 0 {
			out.Printf("  - %s: %d\n", upper.String(m.Method), m.Count)
		}
	}

	out.Printf("\nAPI Tags:\n")
	for _, tag := range res.Tags {
		out.Printf("  - %s: %s\n",
			tag.Name.Or(notAvailable),
			stringutil.Truncate(tag.Description.Or(noDescription), truncateWidth))
	}

	out.Printf("\nSecurity Schemes:\n")
	for _, s := range res.SecuritySchemes {
		out.Printf("  - %s: %s (%s)\n", s.Name, s.Type.Or(notAvailable), s.Scheme.Or(notAvailable))
	}

	out.Printf("\nValidation Checks:\n")
	for _, c := range res.Checks {
		if line := checkLine(c, stats); line != "" {
			marker := p.pass("✓")
			if !c.Passed {
				marker = p.fail("✗")
			}
			out.Printf("  %s %s\n", marker, line)
		}
	}

	renderSummary(out, res, p)
	return out.Err()
}

// checkLine returns the text shown for a check, or "" when the outcome has
// no line of its own. Failed checks other than responses show up through
// their findings in the summary.
func checkLine(c analyzer.Check, stats analyzer.Stats) string {
	if !c.Passed {
		if c.Rule == analyzer.RuleResponses {
			return "Some operations missing responses"
		}
		return ""
	}
	switch c.Rule {
	case analyzer.RuleVersion:
		return "OpenAPI version is valid (3.0.x)"
	case analyzer.RuleInfo:
		return "Info section is complete"
	case analyzer.RulePaths:
		return "Paths are defined (" + strconv.Itoa(stats.Paths) + " endpoints)"
	case analyzer.RuleSchemas:
		return "Schemas are defined (" + strconv.Itoa(stats.Schemas) + " schemas)"
	case analyzer.RuleResponses:
		return "All operations have responses defined"
	case analyzer.RuleSecurity:
		return "Security configuration present"
	default:
		return ""
	}
}

func renderSummary(out *cliutil.Printer, res *analyzer.Result, p palette) {
	out.Printf("\n")
	out.Banner(separatorWidth, p.bold("Validation Summary:"))

	if len(res.Errors) > 0 {
		out.Printf("\n%s ERRORS FOUND (%d):\n", p.fail("✗"), len(res.Errors))
		writeNumbered(out, issues.Messages(res.Errors))
	}

	if len(res.Warnings) > 0 {
		out.Printf("\n%s WARNINGS (%d):\n", p.warn("⚠"), len(res.Warnings))
		writeNumbered(out, issues.Messages(res.Warnings))
	}

	switch {
	case len(res.Errors) == 0 && len(res.Warnings) == 0:
		out.Printf("\n%s\n", p.pass("PERFECT! No errors or warnings found!"))
		out.Printf("%s OpenAPI specification is VALID and ready to use!\n", p.pass("✓"))
		out.Printf("\nYou can now:\n")
		out.Printf("  - Import into Swagger UI or Postman\n")
		out.Printf("  - Generate client SDKs\n")
		out.Printf("  - Use with MCP servers\n")
		out.Printf("  - Deploy as API documentation\n")
	case len(res.Errors) == 0:
		out.Printf("\n%s OpenAPI specification is VALID!\n", p.pass("✓"))
		out.Printf("%s Consider addressing warnings for best practices\n", p.warn("⚠"))
	default:
		out.Printf("\n%s\n", p.fail("✗ Please fix errors before using"))
		return
	}

	out.Printf("\n")
	out.Rule(separatorWidth)
	out.Printf("\n")
}

func writeNumbered(out *cliutil.Printer, lines []string) {
	for i, line := range lines {
		out.Printf("  %d. %s\n", i+1, line)
	}
}
