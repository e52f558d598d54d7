package ngraph

import "github.com/ngraph-go/ngraph/pkg/types"

// Re-exported sentinels so callers can branch on failure class with
// errors.Is against the ngraph package directly, without importing
// pkg/types themselves.
var (
	ErrMalformedDocument        = types.ErrMalformedDocument
	ErrUnknownOperation         = types.ErrUnknownOperation
	ErrUnsupportedOperation     = types.ErrUnsupportedOperation
	ErrUnknownElementType       = types.ErrUnknownElementType
	ErrMalformedNode            = types.ErrMalformedNode
	ErrDanglingReference        = types.ErrDanglingReference
	ErrForwardFunctionReference = types.ErrForwardFunctionReference
	ErrGraphNotAcyclic          = types.ErrGraphNotAcyclic
	ErrDuplicateFunctionName    = types.ErrDuplicateFunctionName
	ErrDuplicateNodeName        = types.ErrDuplicateNodeName
	ErrResultNotFound           = types.ErrResultNotFound
	ErrParameterNotFound        = types.ErrParameterNotFound
	ErrResultTypeMismatch       = types.ErrResultTypeMismatch
)
