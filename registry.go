package fabrik

import (
	"context"
	"reflect"
)

// Registry collects deferred persist operations for the dependencies an
// entity's manifest function declares. It is an ordered, append-only list:
// operations run in the exact order they were registered, and registration is
// the only mutation. C is the opaque store handle type shared by every
// operation in the registry.
//
// A Registry is created empty alongside a manifest call and consumed by the
// orchestration call that requested persistence. It is not safe for
// concurrent use; manifesting is single-threaded by design.
type Registry[C any] struct {
	pending []pendingPersist[C]
}

// pendingPersist is one type-erased deferred write. The entity type tag is
// carried for introspection only; draining never consults it to decide order.
type pendingPersist[C any] struct {
	entityType reflect.Type
	run        func(ctx context.Context, conn C) (any, error)
}

// NewRegistry creates an empty registry.
func NewRegistry[C any]() *Registry[C] {
	return &Registry[C]{}
}

// add appends a deferred persist operation. Called by Factory.AssociateWith;
// there is no public append surface because the operation closure must carry
// the captured entity and sub-registry that AssociateWith produces.
func (r *Registry[C]) add(entityType reflect.Type, run func(ctx context.Context, conn C) (any, error)) {
	r.pending = append(r.pending, pendingPersist[C]{
		entityType: entityType,
		run:        run,
	})
}

// Len returns the number of pending operations.
func (r *Registry[C]) Len() int {
	return len(r.pending)
}

// Pending returns the entity type tags of the pending operations in
// registration order. The slice is a copy; mutating it does not affect the
// registry.
func (r *Registry[C]) Pending() []reflect.Type {
	types := make([]reflect.Type, len(r.pending))
	for i, p := range r.pending {
		types[i] = p.entityType
	}
	return types
}

// drain runs every pending operation in registration order against conn,
// discarding produced values (they exist only as side-effecting writes).
//
// Draining takes ownership of the pending list up front, so each operation
// runs at most once even if drain is called again: a second drain is a no-op.
// The first failure halts the drain and is returned wrapped in a *DrainError
// identifying the operation; operations that already ran stay run.
func (r *Registry[C]) drain(ctx context.Context, conn C) error {
	ops := r.pending
	r.pending = nil

	for i, op := range ops {
		if _, err := op.run(ctx, conn); err != nil {
			return &DrainError{
				EntityType: op.entityType,
				Index:      i,
				Err:        err,
			}
		}
	}
	return nil
}
