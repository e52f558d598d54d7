package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the closed failure taxonomy a serialize/deserialize
// call can surface. Callers branch on these with errors.Is; the wrapping
// constructors below attach the offending function/node name as required
// by the diagnostic policy.
var (
	ErrMalformedDocument        = errors.New("malformed document")
	ErrUnknownOperation         = errors.New("unknown operation")
	ErrUnsupportedOperation     = errors.New("operation recognized but not constructible")
	ErrUnknownElementType       = errors.New("unknown element type")
	ErrMalformedNode            = errors.New("malformed node")
	ErrDanglingReference        = errors.New("dangling reference")
	ErrForwardFunctionReference = errors.New("forward function reference")
	ErrGraphNotAcyclic          = errors.New("graph not acyclic")
	ErrDuplicateFunctionName    = errors.New("duplicate function name")
	ErrDuplicateNodeName        = errors.New("duplicate node name")
	ErrResultNotFound           = errors.New("result not found")
	ErrParameterNotFound        = errors.New("parameter not found")
	ErrResultTypeMismatch       = errors.New("result type mismatch")
)

// ErrMalformedDocumentf wraps ErrMalformedDocument with a diagnostic.
func ErrMalformedDocumentf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedDocument, fmt.Sprintf(format, args...))
}

// ErrUnknownOperationf reports an op tag absent from the closed taxonomy.
func ErrUnknownOperationf(nodeName, op string) error {
	return fmt.Errorf("%w: node %q has op %q", ErrUnknownOperation, nodeName, op)
}

// ErrUnsupportedOperationf reports an op recognized by the taxonomy but
// refused by both writer and reader (see GetTupleElement in DESIGN.md).
func ErrUnsupportedOperationf(nodeName, op string) error {
	return fmt.Errorf("%w: node %q has op %q", ErrUnsupportedOperation, nodeName, op)
}

// ErrUnknownElementTypef reports a quadruple matching no registered member.
func ErrUnknownElementTypef(bitwidth uint64, isReal, isSigned bool, cType string) error {
	return fmt.Errorf("%w: bitwidth=%d is_real=%t is_signed=%t c_type=%q", ErrUnknownElementType, bitwidth, isReal, isSigned, cType)
}

// ErrMalformedNodef reports a missing or malformed op-specific attribute.
func ErrMalformedNodef(nodeName, reason string) error {
	return fmt.Errorf("%w: node %q: %s", ErrMalformedNode, nodeName, reason)
}

// ErrDanglingReferencef reports an input name absent from the function-local name map.
func ErrDanglingReferencef(nodeName, inputName string) error {
	return fmt.Errorf("%w: node %q references unknown input %q", ErrDanglingReference, nodeName, inputName)
}

// ErrForwardFunctionReferencef reports a callee not yet registered at load time.
func ErrForwardFunctionReferencef(nodeName, functionName string) error {
	return fmt.Errorf("%w: node %q references function %q before it is defined", ErrForwardFunctionReference, nodeName, functionName)
}

// ErrGraphNotAcyclicf reports a cycle found during linearization.
func ErrGraphNotAcyclicf(functionName string) error {
	return fmt.Errorf("%w: function %q", ErrGraphNotAcyclic, functionName)
}

// ErrDuplicateFunctionNamef reports a function name already registered in the document.
func ErrDuplicateFunctionNamef(functionName string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateFunctionName, functionName)
}

// ErrDuplicateNodeNamef reports a node name already used within a function.
func ErrDuplicateNodeNamef(functionName, nodeName string) error {
	return fmt.Errorf("%w: function %q, node %q", ErrDuplicateNodeName, functionName, nodeName)
}

// ErrResultNotFoundf reports a declared result name absent from the node map.
func ErrResultNotFoundf(functionName, resultName string) error {
	return fmt.Errorf("%w: function %q result %q", ErrResultNotFound, functionName, resultName)
}

// ErrParameterNotFoundf reports a declared parameter name absent from the node map.
func ErrParameterNotFoundf(functionName, paramName string) error {
	return fmt.Errorf("%w: function %q parameter %q", ErrParameterNotFound, functionName, paramName)
}

// ErrResultTypeMismatchf reports a declared result type disagreeing with the result node.
func ErrResultTypeMismatchf(functionName string) error {
	return fmt.Errorf("%w: function %q", ErrResultTypeMismatch, functionName)
}
