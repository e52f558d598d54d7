// Package types provides the shared data model for the graph codec: the
// interned element-type registry, shapes, nodes, functions, and the closed
// operation taxonomy. Every other package in this module builds on these
// definitions to avoid import cycles, the same layering the teacher codebase
// uses for its own pkg/types.
package types

import "golang.org/x/text/unicode/norm"

// Op identifies an operation kind drawn from the closed taxonomy in
// spec.md §4.4. It is a plain string tag on disk (the "op" field) so the
// document stays human-readable; constructors and the dispatch table are
// the only things that interpret it.
type Op string

const (
	OpAbs      Op = "Abs"
	OpAcos     Op = "Acos"
	OpAsin     Op = "Asin"
	OpAtan     Op = "Atan"
	OpCeiling  Op = "Ceiling"
	OpCos      Op = "Cos"
	OpCosh     Op = "Cosh"
	OpExp      Op = "Exp"
	OpFloor    Op = "Floor"
	OpLog      Op = "Log"
	OpNegative Op = "Negative"
	OpSign     Op = "Sign"
	OpSin      Op = "Sin"
	OpSinh     Op = "Sinh"
	OpTan      Op = "Tan"
	OpTanh     Op = "Tanh"

	OpAdd       Op = "Add"
	OpDivide    Op = "Divide"
	OpDot       Op = "Dot"
	OpEqual     Op = "Equal"
	OpGreater   Op = "Greater"
	OpGreaterEq Op = "GreaterEq"
	OpLess      Op = "Less"
	OpLessEq    Op = "LessEq"
	OpMaximum   Op = "Maximum"
	OpMinimum   Op = "Minimum"
	OpMultiply  Op = "Multiply"
	OpNotEqual  Op = "NotEqual"
	OpPower     Op = "Power"
	OpRemainder Op = "Remainder"
	OpSubtract  Op = "Subtract"

	OpSelect          Op = "Select"
	OpBroadcast       Op = "Broadcast"
	OpConcat          Op = "Concat"
	OpConstant        Op = "Constant"
	OpConvert         Op = "Convert"
	OpFunctionCall    Op = "FunctionCall"
	OpParameter       Op = "Parameter"
	OpReduce          Op = "Reduce"
	OpReshape         Op = "Reshape"
	OpSlice           Op = "Slice"
	OpSum             Op = "Sum"
	OpTuple           Op = "Tuple"
	OpGetTupleElement Op = "GetTupleElement" // recognized, refused at both ends: see DESIGN.md
)

// Shape is an ordered sequence of non-negative dimension extents.
type Shape []uint64

// Equal reports whether two shapes have identical rank and extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// TensorViewType pairs an element type with a shape.
type TensorViewType struct {
	ElementType *ElementType
	Shape       Shape
}

// Node is one live operation instance. Inputs holds shared pointers to the
// node's arguments (the in-memory edges of the DAG) rather than names —
// the loader builds exactly one Node per serialized entry and every user
// within the function shares that same pointer, per the Ownership model in
// spec.md §3. Outputs is informational only (spec.md §6): the writer copies
// it through unchanged and the reader never consults it to resolve an edge.
//
// Attrs holds the op-specific fields from spec.md §4.4's table; its
// concrete type depends on Op and is produced/consumed by the pkg/ops
// dispatch table.
type Node struct {
	Name        string
	Op          Op
	ElementType *ElementType
	Shape       Shape
	Inputs      []*Node
	Outputs     []string
	Attrs       interface{}
}

// NormalizeName maps a name to its NFC normal form so that uniqueness
// checks and lookups operate on one canonical representation regardless of
// how the document encoded a Unicode identifier.
func NormalizeName(name string) string {
	return norm.NFC.String(name)
}

// Function is a named, closed subgraph: an ordered parameter list, a
// single result, a declared result type, and its topologically-ordered
// operation list.
type Function struct {
	Name       string
	ResultType TensorViewType
	Parameters []*Node
	Result     *Node
	Ops        []*Node // topological order
}

// Document is an ordered sequence of functions in callee-before-caller
// order (spec.md §4.6, §6 "Ordering").
type Document struct {
	Functions []*Function
}
