// Package schema implements the optional structural pre-validation pass
// gated by config.Config.StrictSchemaValidation: a gojsonschema check of the
// raw top-level array against the document shape in spec.md §6, run before
// the procedural dispatch decode in pkg/ops.
//
// The procedural decoder is authoritative on its own and produces the same
// error taxonomy either way; this pass exists purely as defense-in-depth
// against grossly malformed input, the same role gojsonschema plays in the
// teacher's SchemaValidatorExecutor.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema describes the shape common to every function and node
// object (spec.md §6): the array of functions, each function's required
// keys, and each node's required keys. Op-specific attribute fields are
// deliberately not constrained here — pkg/ops owns that per-op validation.
const documentSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "result_type", "result_shape", "parameters", "result", "ops"],
    "properties": {
      "name": {"type": "string"},
      "result_type": {
        "type": "object",
        "required": ["bitwidth", "is_real", "is_signed", "c_type_string"],
        "properties": {
          "bitwidth": {"type": "integer", "minimum": 0},
          "is_real": {"type": "boolean"},
          "is_signed": {"type": "boolean"},
          "c_type_string": {"type": "string"}
        }
      },
      "result_shape": {"type": "array", "items": {"type": "integer", "minimum": 0}},
      "parameters": {"type": "array", "items": {"type": "string"}},
      "result": {"type": "array", "items": {"type": "string"}, "minItems": 1, "maxItems": 1},
      "ops": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["name", "op", "element_type", "inputs", "outputs"],
          "properties": {
            "name": {"type": "string"},
            "op": {"type": "string"},
            "inputs": {"type": "array", "items": {"type": "string"}},
            "outputs": {"type": "array", "items": {"type": "string"}}
          }
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

// Validate runs raw (the entire top-level document) through the structural
// schema above. A failure is reported with every gojsonschema error
// description joined into one message; callers wrap it as MalformedDocument.
func Validate(raw json.RawMessage) error {
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msg := "document does not match the required structure:"
	for _, e := range result.Errors() {
		msg += fmt.Sprintf(" %s;", e.Description())
	}
	return fmt.Errorf("%s", msg)
}
