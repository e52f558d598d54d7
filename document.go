package ngraph

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/ngraph-go/ngraph/pkg/config"
	"github.com/ngraph-go/ngraph/pkg/graph"
	"github.com/ngraph-go/ngraph/pkg/logging"
	"github.com/ngraph-go/ngraph/pkg/observer"
	"github.com/ngraph-go/ngraph/pkg/ops"
	"github.com/ngraph-go/ngraph/pkg/schema"
	"github.com/ngraph-go/ngraph/pkg/types"
)

var log = logging.New(logging.DefaultConfig())

// Options configures a Serialize or Deserialize call beyond the package
// defaults. A nil Options, or a nil field within one, falls back to
// config.Default() and a no-op observer.Manager.
type Options struct {
	// Config bounds the resources a Deserialize call spends on untrusted
	// input (spec.md's Non-goals exclude streaming/partial load, not
	// resource guards; see pkg/config).
	Config *config.Config

	// Observer receives DocumentLoad/FunctionLoad/FunctionWrite events for
	// the duration of the call (see pkg/observer, pkg/telemetry).
	Observer *observer.Manager
}

func resolveOptions(opts *Options) (*config.Config, *observer.Manager) {
	cfg := config.Default()
	obs := observer.NewManager()
	if opts != nil {
		if opts.Config != nil {
			cfg = opts.Config
		}
		if opts.Observer != nil {
			obs = opts.Observer
		}
	}
	return cfg, obs
}

// discoverCallees walks fn's reachable nodes and collects every distinct
// *types.Function referenced via FunctionCall or Reduce, in first-sighted
// order. The in-memory attrs hold live pointers (pkg/ops.FunctionCallAttrs,
// ReduceAttrs) precisely so this walk doesn't need any name resolution.
func discoverCallees(fn *types.Function) ([]*types.Function, error) {
	order, err := graph.Linearize(fn.Result)
	if err != nil {
		return nil, types.ErrGraphNotAcyclicf(fn.Name)
	}

	var callees []*types.Function
	seen := map[string]bool{}
	add := func(callee *types.Function) {
		if callee == nil || seen[callee.Name] {
			return
		}
		seen[callee.Name] = true
		callees = append(callees, callee)
	}

	for _, n := range order {
		switch a := n.Attrs.(type) {
		case ops.FunctionCallAttrs:
			add(a.Function)
		case ops.ReduceAttrs:
			add(a.Function)
		}
	}
	return callees, nil
}

// orderCalleesFirst performs a post-order DFS over the call graph rooted at
// root, producing a flat list in callee-before-caller order with root last
// (spec.md §4.6's canonical resolution — no reversal step, unlike the
// legacy root-first behavior described in SPEC_FULL.md §12).
func orderCalleesFirst(root *types.Function) ([]*types.Function, error) {
	var order []*types.Function
	visited := map[string]bool{}
	onStack := map[string]bool{}

	var visit func(fn *types.Function) error
	visit = func(fn *types.Function) error {
		if visited[fn.Name] {
			return nil
		}
		if onStack[fn.Name] {
			return types.ErrGraphNotAcyclicf(fn.Name)
		}
		onStack[fn.Name] = true

		callees, err := discoverCallees(fn)
		if err != nil {
			return err
		}
		for _, callee := range callees {
			if err := visit(callee); err != nil {
				return err
			}
		}

		onStack[fn.Name] = false
		visited[fn.Name] = true
		order = append(order, fn)
		return nil
	}

	if err := visit(root); err != nil {
		return nil, err
	}
	return order, nil
}

// Serialize writes root and every function it transitively references to a
// JSON document (spec.md §6): a top-level array in callee-before-caller
// order, root last. Equivalent to SerializeWithOptions(root, nil).
func Serialize(root *types.Function) (string, error) {
	return SerializeWithOptions(root, nil)
}

// SerializeWithOptions is Serialize with an explicit Observer attached (see
// Options). Config plays no role on the write path today — every resource
// ceiling in pkg/config guards untrusted input on load — but it is accepted
// here so a caller can thread one Options value through both calls.
func SerializeWithOptions(root *types.Function, opts *Options) (string, error) {
	_, obs := resolveOptions(opts)
	ctx := context.Background()

	if root == nil {
		return "", types.ErrMalformedDocumentf("root function is nil")
	}

	ordered, err := orderCalleesFirst(root)
	if err != nil {
		log.WithFunctionName(root.Name).WithError(err).Error("linearization failed")
		return "", err
	}

	seenNames := map[string]bool{}
	wireFns := make([]wireFunction, len(ordered))
	for i, fn := range ordered {
		key := types.NormalizeName(fn.Name)
		if seenNames[key] {
			err := types.ErrDuplicateFunctionNamef(fn.Name)
			log.WithFunctionName(fn.Name).WithError(err).Error("document write failed")
			return "", err
		}
		seenNames[key] = true

		start := time.Now()
		obs.Notify(ctx, observer.Event{Type: observer.EventFunctionWriteStart, Status: observer.StatusStarted, Timestamp: start, FunctionName: fn.Name})

		wfn, encErr := encodeFunction(fn)

		end := observer.Event{Type: observer.EventFunctionWriteEnd, Timestamp: time.Now(), FunctionName: fn.Name, ElapsedTime: time.Since(start)}
		if encErr != nil {
			end.Status = observer.StatusFailure
			end.Error = encErr
			obs.Notify(ctx, end)
			log.WithFunctionName(fn.Name).WithError(encErr).Error("function encode failed")
			return "", encErr
		}
		end.Status = observer.StatusSuccess
		obs.Notify(ctx, end)
		wireFns[i] = wfn
	}

	out, err := json.Marshal(wireFns)
	if err != nil {
		return "", err
	}
	log.WithFunctionName(root.Name).WithField("function_count", len(wireFns)).Debug("document serialized")
	return string(out), nil
}

// Deserialize parses a JSON document produced by Serialize and returns its
// root function: the last successfully constructed function in the
// top-level array (spec.md §4.6's Read paragraph), consistent with
// callees-first/root-last ordering. Equivalent to
// DeserializeWithOptions(src, nil).
func Deserialize(src io.Reader) (*types.Function, error) {
	return DeserializeWithOptions(src, nil)
}

// DeserializeWithOptions is Deserialize with an explicit Config and/or
// Observer attached (see Options).
func DeserializeWithOptions(src io.Reader, opts *Options) (*types.Function, error) {
	cfg, obs := resolveOptions(opts)
	ctx := context.Background()

	start := time.Now()
	obs.Notify(ctx, observer.Event{Type: observer.EventDocumentLoadStart, Status: observer.StatusStarted, Timestamp: start})

	root, err := deserializeDocument(ctx, src, cfg, obs)

	end := observer.Event{Type: observer.EventDocumentLoadEnd, Timestamp: time.Now(), ElapsedTime: time.Since(start)}
	if err != nil {
		end.Status = observer.StatusFailure
		end.Error = err
	} else {
		end.Status = observer.StatusSuccess
		end.FunctionName = root.Name
	}
	obs.Notify(ctx, end)
	return root, err
}

func deserializeDocument(ctx context.Context, src io.Reader, cfg *config.Config, obs *observer.Manager) (*types.Function, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	if cfg.MaxDocumentBytes > 0 && int64(len(raw)) > cfg.MaxDocumentBytes {
		return nil, types.ErrMalformedDocumentf("document is %d bytes, exceeds configured maximum of %d", len(raw), cfg.MaxDocumentBytes)
	}

	if cfg.StrictSchemaValidation {
		if err := schema.Validate(raw); err != nil {
			return nil, types.ErrMalformedDocumentf("%s", err.Error())
		}
	}

	var wireFns []wireFunction
	if err := json.Unmarshal(raw, &wireFns); err != nil {
		return nil, types.ErrMalformedDocumentf("%s", err.Error())
	}
	if len(wireFns) == 0 {
		return nil, types.ErrMalformedDocumentf("document contains no functions")
	}
	if cfg.MaxFunctions > 0 && len(wireFns) > cfg.MaxFunctions {
		return nil, types.ErrMalformedDocumentf("document has %d functions, exceeds configured maximum of %d", len(wireFns), cfg.MaxFunctions)
	}

	registry := make(map[string]*types.Function, len(wireFns))
	resolveFunction := func(name string) (*types.Function, bool) {
		fn, ok := registry[types.NormalizeName(name)]
		return fn, ok
	}

	var root *types.Function
	for _, wfn := range wireFns {
		key := types.NormalizeName(wfn.Name)
		if _, dup := registry[key]; dup {
			err := types.ErrDuplicateFunctionNamef(wfn.Name)
			log.WithFunctionName(wfn.Name).WithError(err).Error("document read failed")
			return nil, err
		}
		if cfg.MaxNodesPerFunction > 0 && len(wfn.Ops) > cfg.MaxNodesPerFunction {
			err := types.ErrMalformedDocumentf("function %q has %d nodes, exceeds configured maximum of %d", wfn.Name, len(wfn.Ops), cfg.MaxNodesPerFunction)
			log.WithFunctionName(wfn.Name).WithError(err).Error("document read failed")
			return nil, err
		}

		fnStart := time.Now()
		obs.Notify(ctx, observer.Event{Type: observer.EventFunctionLoadStart, Status: observer.StatusStarted, Timestamp: fnStart, FunctionName: wfn.Name})

		fn, decErr := decodeFunction(wfn, resolveFunction, cfg.MaxAttributeArrayLength)

		loadEnd := observer.Event{Type: observer.EventFunctionLoadEnd, Timestamp: time.Now(), FunctionName: wfn.Name, ElapsedTime: time.Since(fnStart)}
		if decErr != nil {
			loadEnd.Status = observer.StatusFailure
			loadEnd.Error = decErr
			obs.Notify(ctx, loadEnd)
			log.WithFunctionName(wfn.Name).WithError(decErr).Error("function decode failed")
			return nil, decErr
		}
		loadEnd.Status = observer.StatusSuccess
		loadEnd.Metadata = map[string]interface{}{"node_count": len(fn.Ops)}
		obs.Notify(ctx, loadEnd)

		registry[key] = fn
		root = fn
		log.WithFunctionName(fn.Name).Debug("function decoded")
	}
	return root, nil
}
