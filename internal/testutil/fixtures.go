// Package testutil provides fixture helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"go.yaml.in/yaml/v4"
)

// NewMinimalDocument returns a document that passes every error rule but
// carries no schemas and no security, so it yields exactly two warnings.
// Callers may mutate the returned map freely.
func NewMinimalDocument() map[string]any {
	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "Minimal API",
			"version": "1.0.0",
		},
		"paths": map[string]any{
			"/health": map[string]any{
				"get": map[string]any{
					"responses": map[string]any{
						"200": map[string]any{"description": "OK"},
					},
				},
			},
		},
	}
}

// NewCompleteDocument returns a document that passes every rule with no
// findings.
func NewCompleteDocument() map[string]any {
	doc := NewMinimalDocument()
	doc["components"] = map[string]any{
		"schemas": map[string]any{
			"Status": map[string]any{"type": "string"},
		},
		"securitySchemes": map[string]any{
			"bearerAuth": map[string]any{"type": "http", "scheme": "bearer"},
		},
	}
	doc["security"] = []any{map[string]any{"bearerAuth": []any{}}}
	return doc
}

// WriteTempYAML marshals a document to YAML and writes it to openapi.yaml
// in a fresh temporary directory. Returns the path to the file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTempFile(t, string(data))
}

// WriteTempFile writes content verbatim to openapi.yaml in a fresh
// temporary directory. Returns the path to the file.
func WriteTempFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "openapi.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}
	return path
}

// Fixture returns the path of name under the module's testdata directory.
func Fixture(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", name)
}
