package ops

import (
	"encoding/json"

	"github.com/ngraph-go/ngraph/pkg/types"
)

// wireElementType is the on-disk shape of an element-type object (spec.md
// §6): "c_type_string" is the wire key even though pkg/types calls the
// concept cType internally.
type wireElementType struct {
	Bitwidth    uint64 `json:"bitwidth"`
	IsReal      bool   `json:"is_real"`
	IsSigned    bool   `json:"is_signed"`
	CTypeString string `json:"c_type_string"`
}

func encodeElementType(et *types.ElementType) wireElementType {
	bitwidth, isReal, isSigned, cType := et.Describe()
	return wireElementType{Bitwidth: bitwidth, IsReal: isReal, IsSigned: isSigned, CTypeString: cType}
}

func decodeElementType(w wireElementType) (*types.ElementType, error) {
	return types.Canonical(w.Bitwidth, w.IsReal, w.IsSigned, w.CTypeString)
}

// wireNode is the flat on-disk representation of a node object (spec.md
// §4.4, §6). Every op-specific attribute key used by the taxonomy is
// distinct, so a single flat struct with omitempty tags covers the whole
// table without per-op envelope types — the same flattened-dispatch shape
// the teacher's node_decoder.go reads into before branching on node type.
type wireNode struct {
	Name        string          `json:"name"`
	Op          string          `json:"op"`
	ElementType wireElementType `json:"element_type"`
	Inputs      []string        `json:"inputs"`
	Outputs     []string        `json:"outputs"`

	Shape         []uint64         `json:"shape,omitempty"`
	Axes          []uint64         `json:"axes,omitempty"`
	Axis          *uint64          `json:"axis,omitempty"`
	Value         []string         `json:"value,omitempty"`
	TargetType    *wireElementType `json:"target_type,omitempty"`
	Function      string           `json:"function,omitempty"`
	ReductionAxes []uint64         `json:"reduction_axes,omitempty"`
	InputOrder    []uint64         `json:"input_order,omitempty"`
	OutputShape   []uint64         `json:"output_shape,omitempty"`
	LowerBounds   []uint64         `json:"lower_bounds,omitempty"`
	UpperBounds   []uint64         `json:"upper_bounds,omitempty"`
	Strides       []uint64         `json:"strides,omitempty"`
}

// noAttrOps is every op kind whose row in spec.md §4.4 has "none" in the
// Extra attributes column.
var noAttrOps = map[types.Op]bool{
	types.OpAbs: true, types.OpAcos: true, types.OpAsin: true, types.OpAtan: true,
	types.OpCeiling: true, types.OpCos: true, types.OpCosh: true, types.OpExp: true,
	types.OpFloor: true, types.OpLog: true, types.OpNegative: true, types.OpSign: true,
	types.OpSin: true, types.OpSinh: true, types.OpTan: true, types.OpTanh: true,
	types.OpAdd: true, types.OpDivide: true, types.OpDot: true, types.OpEqual: true,
	types.OpGreater: true, types.OpGreaterEq: true, types.OpLess: true, types.OpLessEq: true,
	types.OpMaximum: true, types.OpMinimum: true, types.OpMultiply: true, types.OpNotEqual: true,
	types.OpPower: true, types.OpRemainder: true, types.OpSubtract: true,
	types.OpSelect: true, types.OpTuple: true,
}

// knownOps is the full closed taxonomy, including GetTupleElement, which is
// recognized but refused at construction (see ErrUnsupportedOperation).
var knownOps = func() map[types.Op]bool {
	m := map[types.Op]bool{
		types.OpBroadcast: true, types.OpConcat: true, types.OpConstant: true,
		types.OpConvert: true, types.OpFunctionCall: true, types.OpParameter: true,
		types.OpReduce: true, types.OpReshape: true, types.OpSlice: true,
		types.OpSum: true, types.OpGetTupleElement: true,
	}
	for op := range noAttrOps {
		m[op] = true
	}
	return m
}()

// Encode converts a live node into its flat wire representation, reading
// op-specific fields out of n.Attrs per the table in spec.md §4.4. Inputs
// are written by name, in order; Outputs is copied through unchanged as it
// is informational only (never consulted on read).
func Encode(n *types.Node) (wireNode, error) {
	w := wireNode{
		Name:        n.Name,
		Op:          string(n.Op),
		ElementType: encodeElementType(n.ElementType),
		Inputs:      inputNames(n.Inputs),
		Outputs:     n.Outputs,
	}
	if w.Outputs == nil {
		w.Outputs = []string{}
	}

	switch n.Op {
	case types.OpBroadcast:
		a, ok := n.Attrs.(BroadcastAttrs)
		if !ok {
			return wireNode{}, types.ErrMalformedNodef(n.Name, "missing broadcast attributes")
		}
		w.Shape = a.Shape
		w.Axes = normalizeSet(a.Axes)
	case types.OpConcat:
		a, ok := n.Attrs.(ConcatAttrs)
		if !ok {
			return wireNode{}, types.ErrMalformedNodef(n.Name, "missing concat attributes")
		}
		axis := a.Axis
		w.Axis = &axis
	case types.OpConstant:
		a, ok := n.Attrs.(ConstantAttrs)
		if !ok {
			return wireNode{}, types.ErrMalformedNodef(n.Name, "missing constant attributes")
		}
		w.Shape = a.Shape
		w.Value = a.Value
	case types.OpConvert:
		a, ok := n.Attrs.(ConvertAttrs)
		if !ok || a.TargetType == nil {
			return wireNode{}, types.ErrMalformedNodef(n.Name, "missing convert target type")
		}
		et := encodeElementType(a.TargetType)
		w.TargetType = &et
	case types.OpFunctionCall:
		a, ok := n.Attrs.(FunctionCallAttrs)
		if !ok || a.Function == nil {
			return wireNode{}, types.ErrMalformedNodef(n.Name, "missing function call callee")
		}
		w.Function = a.Function.Name
	case types.OpParameter:
		a, ok := n.Attrs.(ParameterAttrs)
		if !ok {
			return wireNode{}, types.ErrMalformedNodef(n.Name, "missing parameter attributes")
		}
		w.Shape = a.Shape
	case types.OpReduce:
		a, ok := n.Attrs.(ReduceAttrs)
		if !ok || a.Function == nil {
			return wireNode{}, types.ErrMalformedNodef(n.Name, "missing reduce attributes")
		}
		w.Function = a.Function.Name
		w.ReductionAxes = normalizeSet(a.ReductionAxes)
	case types.OpReshape:
		a, ok := n.Attrs.(ReshapeAttrs)
		if !ok {
			return wireNode{}, types.ErrMalformedNodef(n.Name, "missing reshape attributes")
		}
		w.InputOrder = a.InputOrder
		w.OutputShape = a.OutputShape
	case types.OpSlice:
		a, ok := n.Attrs.(SliceAttrs)
		if !ok {
			return wireNode{}, types.ErrMalformedNodef(n.Name, "missing slice attributes")
		}
		w.LowerBounds = a.LowerBounds
		w.UpperBounds = a.UpperBounds
		w.Strides = a.Strides
	case types.OpSum:
		a, ok := n.Attrs.(SumAttrs)
		if !ok {
			return wireNode{}, types.ErrMalformedNodef(n.Name, "missing sum attributes")
		}
		w.ReductionAxes = normalizeSet(a.ReductionAxes)
	case types.OpGetTupleElement:
		return wireNode{}, types.ErrUnsupportedOperationf(n.Name, string(n.Op))
	default:
		if !noAttrOps[n.Op] {
			// Reaching here means a constructor built a node with an op tag
			// outside the closed taxonomy: a programming error, per §4.4's
			// writer contract ("unknown ops are a programming error, not a
			// recoverable condition").
			return wireNode{}, types.ErrUnknownOperationf(n.Name, string(n.Op))
		}
	}

	if err := checkArity(n.Op, n.Name, len(n.Inputs)); err != nil {
		return wireNode{}, err
	}
	return w, nil
}

func inputNames(inputs []*types.Node) []string {
	names := make([]string, len(inputs))
	for i, in := range inputs {
		names[i] = in.Name
	}
	return names
}

// resolveFunc looks up an already-decoded node by name within the
// function currently being read.
type resolveFunc func(name string) (*types.Node, bool)

// resolveFunctionFunc looks up an already-registered function by name in
// the document-wide function map (spec.md §4.6's callee-before-caller
// order: a callee must already be registered when its caller is decoded).
type resolveFunctionFunc func(name string) (*types.Function, bool)

// Decode turns one wire node, plus the means to resolve its input names and
// its callee function reference (if any), into a live *types.Node. It is
// the reader half of §4.4's dispatch contract.
func Decode(w wireNode, resolve resolveFunc, resolveFunction resolveFunctionFunc) (*types.Node, error) {
	op := types.Op(w.Op)
	if !knownOps[op] {
		return nil, types.ErrUnknownOperationf(w.Name, w.Op)
	}
	if op == types.OpGetTupleElement {
		return nil, types.ErrUnsupportedOperationf(w.Name, w.Op)
	}

	et, err := decodeElementType(w.ElementType)
	if err != nil {
		return nil, err
	}

	inputs := make([]*types.Node, len(w.Inputs))
	for i, name := range w.Inputs {
		in, ok := resolve(name)
		if !ok {
			return nil, types.ErrDanglingReferencef(w.Name, name)
		}
		inputs[i] = in
	}
	if err := checkArity(op, w.Name, len(inputs)); err != nil {
		return nil, err
	}

	n := &types.Node{
		Name:        w.Name,
		Op:          op,
		ElementType: et,
		Inputs:      inputs,
		Outputs:     w.Outputs,
	}

	switch op {
	case types.OpBroadcast:
		n.Attrs = BroadcastAttrs{Shape: w.Shape, Axes: normalizeSet(w.Axes)}
	case types.OpConcat:
		if w.Axis == nil {
			return nil, types.ErrMalformedNodef(w.Name, "missing axis")
		}
		n.Attrs = ConcatAttrs{Axis: *w.Axis}
	case types.OpConstant:
		n.Attrs = ConstantAttrs{Shape: w.Shape, Value: w.Value}
	case types.OpConvert:
		if w.TargetType == nil {
			return nil, types.ErrMalformedNodef(w.Name, "missing target_type")
		}
		target, err := decodeElementType(*w.TargetType)
		if err != nil {
			return nil, err
		}
		n.Attrs = ConvertAttrs{TargetType: target}
	case types.OpFunctionCall:
		if w.Function == "" {
			return nil, types.ErrMalformedNodef(w.Name, "missing function")
		}
		callee, ok := resolveFunction(w.Function)
		if !ok {
			return nil, types.ErrForwardFunctionReferencef(w.Name, w.Function)
		}
		n.Attrs = FunctionCallAttrs{Function: callee}
	case types.OpParameter:
		n.Attrs = ParameterAttrs{Shape: w.Shape}
	case types.OpReduce:
		if w.Function == "" {
			return nil, types.ErrMalformedNodef(w.Name, "missing function")
		}
		callee, ok := resolveFunction(w.Function)
		if !ok {
			return nil, types.ErrForwardFunctionReferencef(w.Name, w.Function)
		}
		n.Attrs = ReduceAttrs{Function: callee, ReductionAxes: normalizeSet(w.ReductionAxes)}
	case types.OpReshape:
		n.Attrs = ReshapeAttrs{InputOrder: w.InputOrder, OutputShape: w.OutputShape}
	case types.OpSlice:
		n.Attrs = SliceAttrs{LowerBounds: w.LowerBounds, UpperBounds: w.UpperBounds, Strides: w.Strides}
	case types.OpSum:
		n.Attrs = SumAttrs{ReductionAxes: normalizeSet(w.ReductionAxes)}
	}

	if shape, ok := KnownShape(n); ok {
		n.Shape = shape
	}
	return n, nil
}

// EncodeNodeJSON encodes a live node straight to its JSON wire form, for
// callers (the function writer) assembling the surrounding "ops" array.
func EncodeNodeJSON(n *types.Node) (json.RawMessage, error) {
	w, err := Encode(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func unmarshalWireNode(raw json.RawMessage) (wireNode, error) {
	var w wireNode
	if err := json.Unmarshal(raw, &w); err != nil {
		return wireNode{}, types.ErrMalformedNodef(w.Name, err.Error())
	}
	return w, nil
}

// DecodeNodeJSON parses one entry of a function's "ops" array and builds
// the live node it describes.
func DecodeNodeJSON(raw json.RawMessage, resolve resolveFunc, resolveFunction resolveFunctionFunc) (*types.Node, error) {
	w, err := unmarshalWireNode(raw)
	if err != nil {
		return nil, err
	}
	return Decode(w, resolve, resolveFunction)
}

// DecodeNodeJSONLimited behaves like DecodeNodeJSON but first rejects a node
// whose op-specific array attributes (shape, axes, value, and so on) exceed
// maxLen entries (0 = unlimited). This is the structural ceiling behind
// pkg/config.Config.MaxAttributeArrayLength: a resource guard on untrusted
// input, not a semantic rule the codec depends on.
func DecodeNodeJSONLimited(raw json.RawMessage, resolve resolveFunc, resolveFunction resolveFunctionFunc, maxLen int) (*types.Node, error) {
	w, err := unmarshalWireNode(raw)
	if err != nil {
		return nil, err
	}
	if maxLen > 0 {
		if err := checkAttributeLengths(w, maxLen); err != nil {
			return nil, err
		}
	}
	return Decode(w, resolve, resolveFunction)
}

// checkAttributeLengths reports MalformedNode if any array-valued field of w
// exceeds maxLen entries.
func checkAttributeLengths(w wireNode, maxLen int) error {
	lists := [][]uint64{w.Shape, w.Axes, w.ReductionAxes, w.InputOrder, w.OutputShape, w.LowerBounds, w.UpperBounds, w.Strides}
	for _, l := range lists {
		if len(l) > maxLen {
			return types.ErrMalformedNodef(w.Name, "attribute array exceeds configured maximum length")
		}
	}
	if len(w.Value) > maxLen || len(w.Inputs) > maxLen || len(w.Outputs) > maxLen {
		return types.ErrMalformedNodef(w.Name, "attribute array exceeds configured maximum length")
	}
	return nil
}
