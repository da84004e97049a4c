package suite

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// TestCaseSchema returns the JSON Schema for the TestCase record as
// indented JSON. Consumers use it to validate exported suites.
func TestCaseSchema() (string, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}

	schema := reflector.Reflect(&TestCase{})
	schema.Title = "TestCase"
	schema.Description = "A single synthesized integration-test scenario"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}

	return string(data), nil
}
