package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oacheck/internal/testutil"
	"github.com/erraggy/oacheck/loader"
)

func TestRunSuccess(t *testing.T) {
	out := Run(Config{Path: testutil.Fixture("petstore-3.0.yaml")})

	s, ok := out.(Success)
	require.True(t, ok, "expected Success, got %T", out)
	assert.False(t, s.HasErrors)
	assert.Contains(t, s.Report, "PERFECT! No errors or warnings found!")
	assert.Equal(t, ExitOK, ExitCode(out))
}

func TestRunValidationErrors(t *testing.T) {
	out := Run(Config{Path: testutil.WriteTempFile(t, "openapi: \"2.0\"\n")})

	s, ok := out.(Success)
	require.True(t, ok, "expected Success, got %T", out)
	assert.True(t, s.HasErrors)
	assert.Contains(t, s.Report, "Unsupported OpenAPI version: 2.0")
	assert.Contains(t, s.Report, "Please fix errors before using")
	assert.Equal(t, ExitFailure, ExitCode(out))
}

func TestRunWarningsOnlyExitsZero(t *testing.T) {
	out := Run(Config{Path: testutil.Fixture("minimal-3.0.yaml")})

	s, ok := out.(Success)
	require.True(t, ok, "expected Success, got %T", out)
	assert.False(t, s.HasErrors)
	assert.Contains(t, s.Report, "WARNINGS (2)")
	assert.Equal(t, ExitOK, ExitCode(out))
}

func TestRunParseFailure(t *testing.T) {
	out := Run(Config{Path: testutil.Fixture("invalid-syntax.yaml")})

	pf, ok := out.(ParseFailure)
	require.True(t, ok, "expected ParseFailure, got %T", out)
	assert.NotEmpty(t, pf.Message)
	assert.Equal(t, ExitFailure, ExitCode(out))
}

func TestRunMultipleDocuments(t *testing.T) {
	path := testutil.WriteTempFile(t, "openapi: \"3.0.0\"\ninfo: {title: t, version: '1'}\n---\nfoo: bar\n")
	out := Run(Config{Path: path})

	pf, ok := out.(ParseFailure)
	require.True(t, ok, "expected ParseFailure, got %T", out)
	assert.Contains(t, pf.Message, "expected a single document in the stream")
	assert.Equal(t, ExitFailure, ExitCode(out))
}

func TestRunMissingFile(t *testing.T) {
	out := Run(Config{Path: filepath.Join(t.TempDir(), "absent.yaml")})

	uf, ok := out.(UnexpectedFailure)
	require.True(t, ok, "expected UnexpectedFailure, got %T", out)
	assert.Contains(t, uf.Message, "failed to read file")
	assert.Contains(t, uf.Trace, "*fs.PathError")
	assert.Equal(t, ExitFailure, ExitCode(out))
}

func TestRunShapeError(t *testing.T) {
	out := Run(Config{Path: testutil.Fixture("bad-shape.yaml")})

	uf, ok := out.(UnexpectedFailure)
	require.True(t, ok, "expected UnexpectedFailure, got %T", out)
	assert.Contains(t, uf.Message, "shape error")
	assert.Contains(t, uf.Trace, "*oaserrors.ShapeError")
}

// panicLogger panics on the first debug event.
type panicLogger struct{ loader.NopLogger }

func (panicLogger) Debug(string, ...any)      { panic("logger exploded") }
func (p panicLogger) With(...any) loader.Logger { return p }

func TestRunRecoversPanic(t *testing.T) {
	var out Outcome
	require.NotPanics(t, func() {
		out = Run(Config{Path: testutil.Fixture("minimal-3.0.yaml"), Logger: panicLogger{}})
	})

	uf, ok := out.(UnexpectedFailure)
	require.True(t, ok, "expected UnexpectedFailure, got %T", out)
	assert.Equal(t, "logger exploded", uf.Message)
	assert.Contains(t, uf.Trace, "goroutine")
	assert.Equal(t, ExitFailure, ExitCode(out))
}

func TestRunDefaultPath(t *testing.T) {
	dir := t.TempDir()
	src, err := os.ReadFile(testutil.Fixture("petstore-3.0.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultPath), src, 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out := Run(Config{})
	_, ok := out.(Success)
	assert.True(t, ok, "expected Success, got %T", out)
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := Config{Path: testutil.Fixture("missing-responses.yaml")}
	assert.Equal(t, Run(cfg), Run(cfg))
}

func TestRunGeneratedDocuments(t *testing.T) {
	complete := Run(Config{Path: testutil.WriteTempYAML(t, testutil.NewCompleteDocument())})
	s, ok := complete.(Success)
	require.True(t, ok, "expected Success, got %T", complete)
	assert.Contains(t, s.Report, "PERFECT! No errors or warnings found!")

	doc := testutil.NewMinimalDocument()
	delete(doc, "info")
	broken := Run(Config{Path: testutil.WriteTempYAML(t, doc)})
	s, ok = broken.(Success)
	require.True(t, ok, "expected Success, got %T", broken)
	assert.True(t, s.HasErrors)
	assert.Contains(t, s.Report, "Missing 'info' section")
}

func TestRunVersionAndColor(t *testing.T) {
	out := Run(Config{Path: testutil.Fixture("minimal-3.0.yaml"), Version: "v9.9.9", Color: true})

	s, ok := out.(Success)
	require.True(t, ok, "expected Success, got %T", out)
	assert.Contains(t, s.Report, "oacheck version: v9.9.9")
	assert.Contains(t, s.Report, "\x1b[")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		in   Outcome
		want int
	}{
		{"clean", Success{}, ExitOK},
		{"errors", Success{HasErrors: true}, ExitFailure},
		{"parse", ParseFailure{Message: "bad"}, ExitFailure},
		{"unexpected", UnexpectedFailure{Message: "boom"}, ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.in))
		})
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name       string
		in         Outcome
		wantStdout string
		wantStderr string
	}{
		{
			name:       "success",
			in:         Success{Report: "report\n"},
			wantStdout: "report\n",
		},
		{
			name:       "parse failure",
			in:         ParseFailure{Message: "yaml: line 4: mapping values are not allowed"},
			wantStdout: "✗ YAML parsing error: yaml: line 4: mapping values are not allowed\n",
		},
		{
			name:       "unexpected failure",
			in:         UnexpectedFailure{Message: "boom", Trace: "stack"},
			wantStdout: "✗ Error: boom\n",
			wantStderr: "stack\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			Print(&stdout, &stderr, tt.in)
			assert.Equal(t, tt.wantStdout, stdout.String())
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}
