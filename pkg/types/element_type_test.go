package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngraph-go/ngraph/pkg/types"
)

func TestCanonical_ReturnsSharedPointer(t *testing.T) {
	a, err := types.Canonical(32, true, true, "float")
	require.NoError(t, err)
	b, err := types.Canonical(32, true, true, "float")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Same(t, types.F32, a)
}

func TestCanonical_UnknownQuadrupleFails(t *testing.T) {
	_, err := types.Canonical(128, true, true, "quad_float")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnknownElementType)
}

func TestCanonical_EveryMemberRoundTrips(t *testing.T) {
	members := []*types.ElementType{
		types.Boolean, types.F32, types.F64,
		types.I8, types.I16, types.I32, types.I64,
		types.U8, types.U16, types.U32, types.U64,
	}
	for _, m := range members {
		bitwidth, isReal, isSigned, cType := m.Describe()
		got, err := types.Canonical(bitwidth, isReal, isSigned, cType)
		require.NoError(t, err)
		assert.Same(t, m, got)
	}
}

func TestByName(t *testing.T) {
	et, ok := types.ByName("f64")
	require.True(t, ok)
	assert.Same(t, types.F64, et)

	_, ok = types.ByName("f128")
	assert.False(t, ok)
}
