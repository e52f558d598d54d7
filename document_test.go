package ngraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ngraph "github.com/ngraph-go/ngraph"
	"github.com/ngraph-go/ngraph/pkg/ops"
	"github.com/ngraph-go/ngraph/pkg/types"
)

// identityFunction builds F(x: f32[2,3]) = x, the scenario in spec.md §8.1.
func identityFunction() *types.Function {
	x := &types.Node{
		Name: "x", Op: types.OpParameter, ElementType: types.F32, Shape: types.Shape{2, 3},
		Attrs: ops.ParameterAttrs{Shape: types.Shape{2, 3}},
	}
	return &types.Function{
		Name:       "identity",
		ResultType: types.TensorViewType{ElementType: types.F32, Shape: types.Shape{2, 3}},
		Parameters: []*types.Node{x},
		Result:     x,
		Ops:        []*types.Node{x},
	}
}

// binaryAddFunction builds F(a, b: f32[4]) = a + b.
func binaryAddFunction() *types.Function {
	a := &types.Node{Name: "a", Op: types.OpParameter, ElementType: types.F32, Shape: types.Shape{4}, Attrs: ops.ParameterAttrs{Shape: types.Shape{4}}}
	b := &types.Node{Name: "b", Op: types.OpParameter, ElementType: types.F32, Shape: types.Shape{4}, Attrs: ops.ParameterAttrs{Shape: types.Shape{4}}}
	sum := &types.Node{Name: "sum", Op: types.OpAdd, ElementType: types.F32, Shape: types.Shape{4}, Inputs: []*types.Node{a, b}}
	return &types.Function{
		Name:       "binary_add",
		ResultType: types.TensorViewType{ElementType: types.F32, Shape: types.Shape{4}},
		Parameters: []*types.Node{a, b},
		Result:     sum,
		Ops:        []*types.Node{a, b, sum},
	}
}

func TestSerializeDeserialize_Identity(t *testing.T) {
	fn := identityFunction()

	doc, err := ngraph.Serialize(fn)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc, "["))

	got, err := ngraph.Deserialize(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "identity", got.Name)
	require.Len(t, got.Ops, 1)
	assert.Equal(t, types.OpParameter, got.Ops[0].Op)
	assert.Equal(t, []string{"x"}, nodeNamesOf(got.Parameters))
	assert.Equal(t, "x", got.Result.Name)
}

func TestSerializeDeserialize_BinaryAdd(t *testing.T) {
	fn := binaryAddFunction()

	doc, err := ngraph.Serialize(fn)
	require.NoError(t, err)

	got, err := ngraph.Deserialize(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "sum"}, nodeNamesOf(got.Ops))
	assert.Equal(t, "sum", got.Result.Name)
	assert.Same(t, got.Ops[0], got.Result.Inputs[0])
}

func TestSerializeDeserialize_CalleeBeforeCaller(t *testing.T) {
	helper := binaryAddFunction()
	helper.Name = "helper"

	callParam := &types.Node{Name: "p", Op: types.OpParameter, ElementType: types.F32, Shape: types.Shape{4}, Attrs: ops.ParameterAttrs{Shape: types.Shape{4}}}
	call := &types.Node{
		Name: "called", Op: types.OpFunctionCall, ElementType: types.F32, Shape: types.Shape{4},
		Inputs: []*types.Node{callParam},
		Attrs:  ops.FunctionCallAttrs{Function: helper},
	}
	caller := &types.Function{
		Name:       "caller",
		ResultType: types.TensorViewType{ElementType: types.F32, Shape: types.Shape{4}},
		Parameters: []*types.Node{callParam},
		Result:     call,
		Ops:        []*types.Node{callParam, call},
	}

	doc, err := ngraph.Serialize(caller)
	require.NoError(t, err)

	helperIdx := strings.Index(doc, `"helper"`)
	callerIdx := strings.Index(doc, `"caller"`)
	require.NotEqual(t, -1, helperIdx)
	require.NotEqual(t, -1, callerIdx)
	assert.Less(t, helperIdx, callerIdx)

	got, err := ngraph.Deserialize(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "caller", got.Name)
}

func TestSerialize_NilRoot(t *testing.T) {
	_, err := ngraph.Serialize(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ngraph.ErrMalformedDocument)
}

func TestDeserialize_UnknownOperationRejected(t *testing.T) {
	doc := `[{"name":"f","result_type":{"bitwidth":32,"is_real":true,"is_signed":true,"c_type_string":"float"},"result_shape":[1],"parameters":[],"result":["n"],"ops":[{"name":"n","op":"Frobnicate","element_type":{"bitwidth":32,"is_real":true,"is_signed":true,"c_type_string":"float"},"inputs":[],"outputs":[]}]}]`
	_, err := ngraph.Deserialize(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ngraph.ErrUnknownOperation)
}

func TestDeserialize_DanglingInputRejected(t *testing.T) {
	doc := `[{"name":"f","result_type":{"bitwidth":32,"is_real":true,"is_signed":true,"c_type_string":"float"},"result_shape":[1],"parameters":[],"result":["n"],"ops":[{"name":"n","op":"Abs","element_type":{"bitwidth":32,"is_real":true,"is_signed":true,"c_type_string":"float"},"inputs":["ghost"],"outputs":[]}]}]`
	_, err := ngraph.Deserialize(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ngraph.ErrDanglingReference)
}

func nodeNamesOf(nodes []*types.Node) []string {
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name
	}
	return names
}
