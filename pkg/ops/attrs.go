package ops

import (
	"sort"

	"github.com/ngraph-go/ngraph/pkg/types"
)

// BroadcastAttrs is the extra attribute set for an OpBroadcast node.
type BroadcastAttrs struct {
	Shape types.Shape
	Axes  []uint64 // set semantics: sorted, deduplicated
}

// ConcatAttrs is the extra attribute set for an OpConcat node.
type ConcatAttrs struct {
	Axis uint64
}

// ConstantAttrs is the extra attribute set for an OpConstant node. Value
// holds the scalar literals in decimal textual form — preserved verbatim
// for exact floating-point round-trip (spec.md §9).
type ConstantAttrs struct {
	Shape types.Shape
	Value []string
}

// ConvertAttrs is the extra attribute set for an OpConvert node.
type ConvertAttrs struct {
	TargetType *types.ElementType
}

// FunctionCallAttrs is the extra attribute set for an OpFunctionCall node.
// Function is a live pointer to the callee, mirroring Node.Inputs: the
// writer walks this pointer to discover transitively-referenced functions
// before any name-based linearization happens; only its Name is written.
type FunctionCallAttrs struct {
	Function *types.Function
}

// ParameterAttrs is the extra attribute set for an OpParameter node.
type ParameterAttrs struct {
	Shape types.Shape
}

// ReduceAttrs is the extra attribute set for an OpReduce node. Function is a
// live pointer to the reduction helper function, for the same reason as
// FunctionCallAttrs.Function.
type ReduceAttrs struct {
	Function      *types.Function
	ReductionAxes []uint64 // set semantics: sorted, deduplicated
}

// ReshapeAttrs is the extra attribute set for an OpReshape node.
type ReshapeAttrs struct {
	InputOrder  []uint64
	OutputShape types.Shape
}

// SliceAttrs is the extra attribute set for an OpSlice node.
type SliceAttrs struct {
	LowerBounds []uint64
	UpperBounds []uint64
	Strides     []uint64
}

// SumAttrs is the extra attribute set for an OpSum node.
type SumAttrs struct {
	ReductionAxes []uint64 // set semantics: sorted, deduplicated
}

// KnownShape returns the shape a node's op-specific attributes declare
// explicitly, and whether one is present at all. Only Parameter, Broadcast,
// Constant, and Reshape carry an explicit output shape on the wire; every
// other op's output shape is a function of its inputs and belongs to shape
// inference, which spec.md §1 places out of scope for this module. Callers
// that need a result's shape for a sanity check (function.go's
// ResultTypeMismatch check) must treat "unknown" as "not checkable", not as
// a zero-rank shape.
func KnownShape(n *types.Node) (types.Shape, bool) {
	switch a := n.Attrs.(type) {
	case ParameterAttrs:
		return a.Shape, true
	case BroadcastAttrs:
		return a.Shape, true
	case ConstantAttrs:
		return a.Shape, true
	case ReshapeAttrs:
		return a.OutputShape, true
	default:
		return nil, false
	}
}

// normalizeSet sorts and deduplicates a list of axis indices, giving set
// semantics (spec.md §4.4: "axes: set[uint]", "reduction_axes: set[uint]")
// a single canonical slice representation on both write and read.
func normalizeSet(values []uint64) []uint64 {
	if len(values) == 0 {
		return values
	}
	out := append([]uint64(nil), values...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	dedup := out[:1]
	for _, v := range out[1:] {
		if v != dedup[len(dedup)-1] {
			dedup = append(dedup, v)
		}
	}
	return dedup
}
