package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngraph-go/ngraph/pkg/ops"
	"github.com/ngraph-go/ngraph/pkg/types"
)

func alwaysResolves(name string) (*types.Function, bool) {
	return &types.Function{Name: name}, true
}

func neverResolves(string) (*types.Function, bool) { return nil, false }

func TestEncodeDecode_Parameter(t *testing.T) {
	n := &types.Node{
		Name:        "x",
		Op:          types.OpParameter,
		ElementType: types.F32,
		Attrs:       ops.ParameterAttrs{Shape: types.Shape{2, 3}},
	}

	raw, err := ops.EncodeNodeJSON(n)
	require.NoError(t, err)

	got, err := ops.DecodeNodeJSON(raw, func(string) (*types.Node, bool) { return nil, false }, alwaysResolves)
	require.NoError(t, err)
	assert.Equal(t, n.Name, got.Name)
	assert.Equal(t, n.Op, got.Op)
	assert.Same(t, types.F32, got.ElementType)
	assert.Equal(t, ops.ParameterAttrs{Shape: types.Shape{2, 3}}, got.Attrs)
}

func TestEncodeDecode_Add(t *testing.T) {
	x := &types.Node{Name: "x", Op: types.OpParameter, ElementType: types.F32, Attrs: ops.ParameterAttrs{}}
	y := &types.Node{Name: "y", Op: types.OpParameter, ElementType: types.F32, Attrs: ops.ParameterAttrs{}}
	add := &types.Node{Name: "z", Op: types.OpAdd, ElementType: types.F32, Inputs: []*types.Node{x, y}}

	raw, err := ops.EncodeNodeJSON(add)
	require.NoError(t, err)

	nodes := map[string]*types.Node{"x": x, "y": y}
	got, err := ops.DecodeNodeJSON(raw, func(name string) (*types.Node, bool) { n, ok := nodes[name]; return n, ok }, alwaysResolves)
	require.NoError(t, err)
	assert.Equal(t, []*types.Node{x, y}, got.Inputs)
}

func TestEncodeDecode_SumAxesNormalized(t *testing.T) {
	x := &types.Node{Name: "x", Op: types.OpParameter, ElementType: types.F32}
	sum := &types.Node{
		Name: "s", Op: types.OpSum, ElementType: types.F32,
		Inputs: []*types.Node{x},
		Attrs:  ops.SumAttrs{ReductionAxes: []uint64{2, 0, 2, 1}},
	}

	raw, err := ops.EncodeNodeJSON(sum)
	require.NoError(t, err)

	got, err := ops.DecodeNodeJSON(raw, func(string) (*types.Node, bool) { return x, true }, alwaysResolves)
	require.NoError(t, err)
	assert.Equal(t, ops.SumAttrs{ReductionAxes: []uint64{0, 1, 2}}, got.Attrs)
}

func TestDecode_UnknownOperation(t *testing.T) {
	raw := []byte(`{"name":"n","op":"Bogus","element_type":{"bitwidth":32,"is_real":true,"is_signed":true,"c_type_string":"float"},"inputs":[],"outputs":[]}`)
	_, err := ops.DecodeNodeJSON(raw, func(string) (*types.Node, bool) { return nil, false }, alwaysResolves)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnknownOperation)
}

func TestDecode_GetTupleElementRefusedBothEnds(t *testing.T) {
	n := &types.Node{Name: "t", Op: types.OpGetTupleElement, ElementType: types.F32}
	_, err := ops.EncodeNodeJSON(n)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnsupportedOperation)

	raw := []byte(`{"name":"t","op":"GetTupleElement","element_type":{"bitwidth":32,"is_real":true,"is_signed":true,"c_type_string":"float"},"inputs":[],"outputs":[]}`)
	_, err = ops.DecodeNodeJSON(raw, func(string) (*types.Node, bool) { return nil, false }, alwaysResolves)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnsupportedOperation)
}

func TestDecode_DanglingReference(t *testing.T) {
	raw := []byte(`{"name":"n","op":"Abs","element_type":{"bitwidth":32,"is_real":true,"is_signed":true,"c_type_string":"float"},"inputs":["missing"],"outputs":[]}`)
	_, err := ops.DecodeNodeJSON(raw, func(string) (*types.Node, bool) { return nil, false }, alwaysResolves)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrDanglingReference)
}

func TestDecode_ForwardFunctionReference(t *testing.T) {
	raw := []byte(`{"name":"n","op":"FunctionCall","element_type":{"bitwidth":32,"is_real":true,"is_signed":true,"c_type_string":"float"},"inputs":[],"outputs":[],"function":"callee"}`)
	_, err := ops.DecodeNodeJSON(raw, func(string) (*types.Node, bool) { return nil, false }, neverResolves)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrForwardFunctionReference)
}

func TestDecode_ArityMismatch(t *testing.T) {
	raw := []byte(`{"name":"n","op":"Add","element_type":{"bitwidth":32,"is_real":true,"is_signed":true,"c_type_string":"float"},"inputs":[],"outputs":[]}`)
	_, err := ops.DecodeNodeJSON(raw, func(string) (*types.Node, bool) { return nil, false }, alwaysResolves)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrMalformedNode)
}
