// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schemas validates report artifacts against the bundled JSON
// Schema. Validation failures are advisory; callers warn and continue.
// Implements: prd006-reports (R2); docs/ARCHITECTURE § Reports.
package schemas

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed report.schema.json
var reportSchema string

// ValidateReport checks an encoded report against the bundled schema.
// Every failing field is listed in the returned error.
func ValidateReport(jsonContent []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(reportSchema)
	documentLoader := gojsonschema.NewBytesLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("loading report schema: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var b strings.Builder
	b.WriteString("report does not match schema:")
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		fmt.Fprintf(&b, "\n  %s: %s", field, desc.Description())
	}
	return errors.New(b.String())
}
