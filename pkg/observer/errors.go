package observer

import "errors"

// ErrInvalidObserver is returned by callers constructing an observer from
// user-supplied configuration when no usable sink was provided.
var ErrInvalidObserver = errors.New("invalid observer")
