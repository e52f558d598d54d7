package ops

import "github.com/ngraph-go/ngraph/pkg/types"

// arity describes how many non-attribute inputs an operation kind
// requires: either an exact count, or a minimum when variadic.
type arity struct {
	count    int
	variadic bool // when true, count is a minimum rather than an exact value
}

func exact(n int) arity    { return arity{count: n} }
func atLeast(n int) arity  { return arity{count: n, variadic: true} }

// arityTable mirrors the "Constructor arity" column of spec.md §4.4's table.
var arityTable = map[types.Op]arity{
	types.OpAbs:      exact(1),
	types.OpAcos:     exact(1),
	types.OpAsin:     exact(1),
	types.OpAtan:     exact(1),
	types.OpCeiling:  exact(1),
	types.OpCos:      exact(1),
	types.OpCosh:     exact(1),
	types.OpExp:      exact(1),
	types.OpFloor:    exact(1),
	types.OpLog:      exact(1),
	types.OpNegative: exact(1),
	types.OpSign:     exact(1),
	types.OpSin:      exact(1),
	types.OpSinh:     exact(1),
	types.OpTan:      exact(1),
	types.OpTanh:     exact(1),

	types.OpAdd:       exact(2),
	types.OpDivide:    exact(2),
	types.OpDot:       exact(2),
	types.OpEqual:     exact(2),
	types.OpGreater:   exact(2),
	types.OpGreaterEq: exact(2),
	types.OpLess:      exact(2),
	types.OpLessEq:    exact(2),
	types.OpMaximum:   exact(2),
	types.OpMinimum:   exact(2),
	types.OpMultiply:  exact(2),
	types.OpNotEqual:  exact(2),
	types.OpPower:     exact(2),
	types.OpRemainder: exact(2),
	types.OpSubtract:  exact(2),

	types.OpSelect: exact(3),

	types.OpBroadcast:    exact(1),
	types.OpConcat:       atLeast(1),
	types.OpConstant:     exact(0),
	types.OpConvert:      exact(1),
	types.OpFunctionCall: atLeast(0),
	types.OpParameter:    exact(0),
	types.OpReduce:       exact(2),
	types.OpReshape:      exact(1),
	types.OpSlice:        exact(1),
	types.OpSum:          exact(1),
	types.OpTuple:        atLeast(0),
}

// checkArity validates that len(inputs) satisfies op's constructor arity.
func checkArity(op types.Op, nodeName string, n int) error {
	a, ok := arityTable[op]
	if !ok {
		return nil // unknown/unsupported ops are rejected earlier in Decode
	}
	if a.variadic {
		if n < a.count {
			return types.ErrMalformedNodef(nodeName, "expected at least one input for "+string(op))
		}
		return nil
	}
	if n != a.count {
		return types.ErrMalformedNodef(nodeName, "expected exactly the declared input count for "+string(op))
	}
	return nil
}
