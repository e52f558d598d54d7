package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngraph-go/ngraph/pkg/schema"
)

const validDoc = `[{
	"name": "identity",
	"result_type": {"bitwidth": 32, "is_real": true, "is_signed": true, "c_type_string": "float"},
	"result_shape": [2, 3],
	"parameters": ["x"],
	"result": ["x"],
	"ops": [
		{"name": "x", "op": "Parameter", "element_type": {"bitwidth": 32, "is_real": true, "is_signed": true, "c_type_string": "float"}, "inputs": [], "outputs": [], "shape": [2, 3]}
	]
}]`

func TestValidate_AcceptsWellFormedDocument(t *testing.T) {
	require.NoError(t, schema.Validate([]byte(validDoc)))
}

func TestValidate_RejectsMissingFunctionKeys(t *testing.T) {
	err := schema.Validate([]byte(`[{"name": "f"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match the required structure")
}

func TestValidate_RejectsMissingNodeKeys(t *testing.T) {
	doc := `[{
		"name": "f",
		"result_type": {"bitwidth": 32, "is_real": true, "is_signed": true, "c_type_string": "float"},
		"result_shape": [],
		"parameters": [],
		"result": ["n"],
		"ops": [{"name": "n"}]
	}]`
	require.Error(t, schema.Validate([]byte(doc)))
}

func TestValidate_RejectsNonArrayTopLevel(t *testing.T) {
	require.Error(t, schema.Validate([]byte(`{"not": "an array"}`)))
}
