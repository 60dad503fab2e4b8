// internal/common/validation/shape.go
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// CheckShape validates a decoded JSON document against a JSON Schema. It
// guards the structural contract (types, required keys) before the domain
// validator runs; domain rules (enum literals, bounds) stay in the domain
// layer where the error messages can be precise.
//
// The returned error is an infrastructure failure (bad schema), not a
// validation outcome.
func CheckShape(doc map[string]interface{}, schemaJSON string) (*Result, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("shape check: %w", err)
	}

	if result.Valid() {
		return NewResult(nil), nil
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, ValidationError{
			Field:   desc.Field(),
			Code:    CodeInvalidShape,
			Message: desc.Description(),
		})
	}
	return NewResult(errs), nil
}
