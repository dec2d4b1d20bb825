package fabrik

import (
	"context"
	"reflect"
)

// ManifestFunc builds an in-memory entity from overrides. It must succeed
// deterministically with the zero overrides value, must not touch the store,
// and may register deferred dependency persists on reg by calling Associate
// on the dependencies' factories.
type ManifestFunc[T, O, C any] func(overrides O, reg *Registry[C]) T

// PersistFunc writes an in-memory entity through the store handle and returns
// the canonical persisted form (store-generated identifiers or timestamps may
// flow back through the return value). Errors are returned to the
// orchestration caller untranslated, with no retry.
type PersistFunc[T, C any] func(ctx context.Context, conn C, entity T) (T, error)

// Factory binds the manifest and persist capabilities for one entity type T
// with overrides type O against store handle type C. Declare one per entity
// type; a Factory is stateless and safe to share.
type Factory[T, O, C any] struct {
	manifest ManifestFunc[T, O, C]
	persist  PersistFunc[T, C]
}

// New creates a factory from an entity type's manifest and persist functions.
func New[T, O, C any](manifest ManifestFunc[T, O, C], persist PersistFunc[T, C]) *Factory[T, O, C] {
	if manifest == nil {
		panic("fabrik: nil manifest function")
	}
	if persist == nil {
		panic("fabrik: nil persist function")
	}
	return &Factory[T, O, C]{manifest: manifest, persist: persist}
}

// Manifest builds an in-memory entity with default overrides. Nothing is
// written to any store; dependency registrations are discarded.
func (f *Factory[T, O, C]) Manifest() T {
	var o O
	return f.ManifestWith(o)
}

// ManifestWith builds an in-memory entity, using every supplied override
// verbatim and computing defaults for the rest. Nothing is written to any
// store; dependency registrations are discarded.
func (f *Factory[T, O, C]) ManifestWith(overrides O) T {
	return f.manifest(overrides, NewRegistry[C]())
}

// Persist manifests an entity with default overrides and writes it, and every
// dependency its manifest function registered, to the store. See PersistWith.
func (f *Factory[T, O, C]) Persist(ctx context.Context, conn C) (T, error) {
	var o O
	return f.PersistWith(ctx, conn, o)
}

// PersistWith manifests an entity with the given overrides, drains its
// registry in registration order so every dependency is durably written
// first, then persists the entity itself and returns the persisted form.
//
// A dependency failure surfaces as a *DrainError and halts the call before
// the root write; a root persist failure is returned as-is. Dependencies
// written before a failure stay written. The store handle is shared across
// the whole drain; any transaction boundary belongs to the caller.
func (f *Factory[T, O, C]) PersistWith(ctx context.Context, conn C, overrides O) (T, error) {
	reg := NewRegistry[C]()
	entity := f.manifest(overrides, reg)

	if err := reg.drain(ctx, conn); err != nil {
		var zero T
		return zero, err
	}

	return f.persist(ctx, conn, entity)
}

// Associate manifests a dependency with default overrides, returning its
// in-memory form immediately, and registers a deferred operation on reg that
// persists that exact value when the registry is drained.
//
// Manifest functions call this to satisfy foreign-key defaults: the returned
// value's identifier is readable right away, and the dependency is guaranteed
// to be written before the entity whose manifest function registered it.
func (f *Factory[T, O, C]) Associate(reg *Registry[C]) T {
	var o O
	return f.AssociateWith(reg, o)
}

// AssociateWith is Associate with explicit overrides for the dependency.
//
// The dependency is manifested exactly once, here and now. The deferred
// operation persists the captured value rather than manifesting again, so
// sequence-driven fields hold the same values in the returned in-memory form
// and in the row eventually written. The dependency's own sub-dependencies
// are registered on a private sub-registry that the deferred operation drains
// before writing the captured value, which keeps a multi-level graph in
// parent-before-child order.
func (f *Factory[T, O, C]) AssociateWith(reg *Registry[C], overrides O) T {
	sub := NewRegistry[C]()
	entity := f.manifest(overrides, sub)

	reg.add(reflect.TypeOf((*T)(nil)).Elem(), func(ctx context.Context, conn C) (any, error) {
		if err := sub.drain(ctx, conn); err != nil {
			return nil, err
		}
		return f.persist(ctx, conn, entity)
	})

	return entity
}
