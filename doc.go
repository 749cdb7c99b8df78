// Package oacheck checks a single OpenAPI 3.0 document for structural
// validity and reports statistics, errors and warnings.
//
// # Overview
//
// The checker is a straight pipeline over four packages:
//
//   - loader: read one YAML/JSON document into an ordered tree
//   - analyzer: compute statistics and run the fixed rule set
//   - reporter: render the statistics and findings as text
//   - cmd/oacheck: run the pipeline on ./openapi.yaml and map the outcome to an exit status
//
// The tree itself lives in the document package. Typed errors for each
// failure tier live in oaserrors.
//
// # Quick Start
//
//	res, err := loader.Load("openapi.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := analyzer.Analyze(res.Root)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := reporter.New().Render(os.Stdout, result); err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Valid() {
//	    os.Exit(1)
//	}
//
// # Rules
//
// Errors: missing or non-3.0 openapi version, missing info section or its
// title/version, no paths, operations without responses (reported as one
// aggregate count). Warnings: no components.schemas, no security
// configuration.
//
// The checker does not resolve $ref, does not validate against the OpenAPI
// meta-schema and never touches the network.
package oacheck
