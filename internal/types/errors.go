package types

import "errors"

// Sentinel errors for the resource core. Callers match them with errors.Is
// after unwrapping whatever context was added along the way.
var (
	// ErrInvalidArgument reports a configuration error: bad shape, bad
	// alignment, unsupported dtype/format combination.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfMemory reports an allocator failure.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrCapacityExceeded reports an insertion into a full batch.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
