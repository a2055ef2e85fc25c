package eventlog

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var documentSchema string

// ValidationIssue is one schema violation found in a document.
type ValidationIssue struct {
	Field       string
	Description string
}

// ValidateBytes checks raw JSON against the event-log document schema and
// returns the violations found. A nil slice means the document is valid.
// The engine itself never validates; this is the loading edge's concern.
func ValidateBytes(data []byte) ([]ValidationIssue, error) {
	schemaLoader := gojsonschema.NewStringLoader(documentSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("validate document: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	issues := make([]ValidationIssue, 0, len(result.Errors()))

	for _, verr := range result.Errors() {
		issues = append(issues, ValidationIssue{
			Field:       verr.Field(),
			Description: verr.Description(),
		})
	}

	return issues, nil
}
