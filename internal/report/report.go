// Package report persists parse reports as JSON snapshots and validates
// snapshots against the report schema before other commands consume them.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/harris/atskit/internal/types"
)

// ValidationError reports the fields of a snapshot that fail the schema
type ValidationError struct {
	Path   string
	Errors []string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s is not a valid ATS report:\n", e.Path))
	for i, msg := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, msg))
	}
	return sb.String()
}

// Save writes a report as pretty-printed JSON.
func Save(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file %s: %w", path, err)
	}
	return nil
}

// Load reads a saved parse report, schema-validating it first so structurally
// foreign JSON is rejected with field-level messages instead of decoding into
// a zero-valued report.
func Load(path string) (*types.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("report file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read report file %s: %w", path, err)
	}

	if err := validate(path, data); err != nil {
		return nil, err
	}

	var r types.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse report JSON %s: %w", path, err)
	}
	return &r, nil
}

func validate(path string, data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(reportSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate report %s: %w", path, err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Path: path}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return ve
}
