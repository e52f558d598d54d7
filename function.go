package ngraph

import (
	"encoding/json"

	"github.com/ngraph-go/ngraph/pkg/graph"
	"github.com/ngraph-go/ngraph/pkg/ops"
	"github.com/ngraph-go/ngraph/pkg/types"
)

// wireFunction is the on-disk shape of a function object (spec.md §4.5, §6).
type wireFunction struct {
	Name        string             `json:"name"`
	ResultType  wireElementTypeRef `json:"result_type"`
	ResultShape []uint64           `json:"result_shape"`
	Parameters  []string           `json:"parameters"`
	Result      []string           `json:"result"`
	Ops         []json.RawMessage  `json:"ops"`
}

// wireElementTypeRef mirrors ops' unexported wireElementType so function.go
// doesn't need a dependency on pkg/ops' internal wire node layout beyond
// what EncodeNodeJSON/DecodeNodeJSON already expose.
type wireElementTypeRef struct {
	Bitwidth    uint64 `json:"bitwidth"`
	IsReal      bool   `json:"is_real"`
	IsSigned    bool   `json:"is_signed"`
	CTypeString string `json:"c_type_string"`
}

func encodeElementTypeRef(et *types.ElementType) wireElementTypeRef {
	bitwidth, isReal, isSigned, cType := et.Describe()
	return wireElementTypeRef{Bitwidth: bitwidth, IsReal: isReal, IsSigned: isSigned, CTypeString: cType}
}

func decodeElementTypeRef(w wireElementTypeRef) (*types.ElementType, error) {
	return types.Canonical(w.Bitwidth, w.IsReal, w.IsSigned, w.CTypeString)
}

// encodeFunction linearizes fn's graph and produces its wire form. The
// topological order is always recomputed from fn.Result rather than trusted
// from fn.Ops, so serialize(deserialize(serialize(g))) is stable regardless
// of how the in-memory Ops slice was populated.
func encodeFunction(fn *types.Function) (wireFunction, error) {
	order, err := graph.Linearize(fn.Result)
	if err != nil {
		return wireFunction{}, types.ErrGraphNotAcyclicf(fn.Name)
	}

	rawOps := make([]json.RawMessage, len(order))
	for i, n := range order {
		raw, err := ops.EncodeNodeJSON(n)
		if err != nil {
			return wireFunction{}, err
		}
		rawOps[i] = raw
	}

	resultShape := []uint64(fn.ResultType.Shape)
	if resultShape == nil {
		resultShape = []uint64{}
	}

	return wireFunction{
		Name:        fn.Name,
		ResultType:  encodeElementTypeRef(fn.ResultType.ElementType),
		ResultShape: resultShape,
		Parameters:  nodeNames(fn.Parameters),
		Result:      []string{fn.Result.Name},
		Ops:         rawOps,
	}, nil
}

func nodeNames(nodes []*types.Node) []string {
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name
	}
	return names
}

// decodeFunction reads one function object in one pass (spec.md §4.5):
// nodes are decoded in array order, each inserted into the function-local
// name map as soon as it is built so later entries can resolve it, then
// parameters and result are resolved by name once all nodes exist.
// resolveFunction looks up an already-registered callee by name in the
// document-wide function map (spec.md §4.6's callee-before-caller order).
// maxAttrLen bounds every op-specific array attribute (0 = unlimited), the
// structural ceiling behind pkg/config.Config.MaxAttributeArrayLength.
func decodeFunction(w wireFunction, resolveFunction func(string) (*types.Function, bool), maxAttrLen int) (*types.Function, error) {
	resultType, err := decodeElementTypeRef(w.ResultType)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*types.Node, len(w.Ops))
	resolve := func(name string) (*types.Node, bool) {
		n, ok := byName[types.NormalizeName(name)]
		return n, ok
	}

	ordered := make([]*types.Node, 0, len(w.Ops))
	for _, raw := range w.Ops {
		n, err := ops.DecodeNodeJSONLimited(raw, resolve, resolveFunction, maxAttrLen)
		if err != nil {
			return nil, err
		}
		key := types.NormalizeName(n.Name)
		if _, dup := byName[key]; dup {
			return nil, types.ErrDuplicateNodeNamef(w.Name, n.Name)
		}
		byName[key] = n
		ordered = append(ordered, n)
	}

	parameters := make([]*types.Node, len(w.Parameters))
	for i, name := range w.Parameters {
		n, ok := byName[types.NormalizeName(name)]
		if !ok {
			return nil, types.ErrParameterNotFoundf(w.Name, name)
		}
		parameters[i] = n
	}

	if len(w.Result) != 1 {
		return nil, types.ErrMalformedDocumentf("function %q: result must be a single-element array", w.Name)
	}
	result, ok := byName[types.NormalizeName(w.Result[0])]
	if !ok {
		return nil, types.ErrResultNotFoundf(w.Name, w.Result[0])
	}
	// ElementType is always checkable. Shape is only checkable when the
	// result node's op carries an explicit shape attribute (Parameter,
	// Broadcast, Constant, Reshape) — every other op's output shape is a
	// product of shape inference, which spec.md §1 excludes from this
	// module's scope, so there is nothing on the wire to compare against.
	if result.ElementType != resultType {
		return nil, types.ErrResultTypeMismatchf(w.Name)
	}
	if shape, known := ops.KnownShape(result); known && !shape.Equal(types.Shape(w.ResultShape)) {
		return nil, types.ErrResultTypeMismatchf(w.Name)
	}

	return &types.Function{
		Name:       w.Name,
		ResultType: types.TensorViewType{ElementType: resultType, Shape: w.ResultShape},
		Parameters: parameters,
		Result:     result,
		Ops:        ordered,
	}, nil
}
