package config

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/pathvana/pathvana/internal/perrors"
)

//go:embed schema.json
var schemaJSON string

// GetSchemaJSON returns the JSON Schema for Pathvana configuration
func GetSchemaJSON() string {
	return schemaJSON
}

// validateShape checks a raw configuration document against the schema.
// Shape errors indicate host misconfiguration and fail loudly.
func validateShape(data interface{}) error {
	schemaLoader := gojsonschema.NewStringLoader(GetSchemaJSON())
	documentLoader := gojsonschema.NewGoLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return perrors.NewConfigurationError("", "schema validation error", err)
	}

	if !result.Valid() {
		first := result.Errors()[0]
		return perrors.NewConfigurationError(
			first.Field(),
			fmt.Sprintf("invalid configuration: %s: %s", first.Field(), first.Description()),
			nil,
		)
	}
	return nil
}
