package fabrik

import (
	"fmt"
	"reflect"
)

// DrainError reports a failed dependency write during registry draining.
//
// The registry holds its operations type-erased, so the error carries the
// entity type tag and registration position to identify which dependency
// failed. The underlying persist error is available via Unwrap.
type DrainError struct {
	// EntityType is the concrete entity type the failed operation would have
	// produced.
	EntityType reflect.Type

	// Index is the operation's zero-based registration position.
	Index int

	// Err is the persist failure, unmodified.
	Err error
}

// Error implements the error interface.
func (e *DrainError) Error() string {
	return fmt.Sprintf("persist dependency %s (operation %d): %v", e.EntityType, e.Index, e.Err)
}

// Unwrap returns the underlying persist error.
func (e *DrainError) Unwrap() error {
	return e.Err
}
