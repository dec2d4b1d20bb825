package seed

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/fabrik"
)

// BindFunc converts a plan step's raw overrides map into a typed overrides
// value. Absent keys leave the corresponding field nil so factory defaults
// apply; unknown or mistyped values should return an error.
type BindFunc[O any] func(overrides map[string]any) (O, error)

// SeedFunc persists one instance of a catalog entity. The produced value is
// returned type-erased; the runner only counts it.
type SeedFunc[C any] func(ctx context.Context, conn C, overrides map[string]any) (any, error)

// Catalog maps entity names to seed runners. Like a fabrik registry, the
// catalog holds its entries type-erased: it never knows the concrete entity
// types behind the names.
type Catalog[C any] struct {
	entries map[string]SeedFunc[C]
}

// NewCatalog creates an empty catalog.
func NewCatalog[C any]() *Catalog[C] {
	return &Catalog[C]{entries: make(map[string]SeedFunc[C])}
}

// Register adds a factory to the catalog under the given name. The bind
// function turns a step's overrides map into the factory's overrides type;
// it is only invoked when a step actually carries overrides.
//
// Names are NFC-normalized to match plan lookup. Registering a duplicate
// name panics: catalogs are assembled once at startup and a collision is a
// programming error.
func Register[T, O, C any](c *Catalog[C], name string, factory *fabrik.Factory[T, O, C], bind BindFunc[O]) {
	name = norm.NFC.String(name)
	if _, exists := c.entries[name]; exists {
		panic(fmt.Sprintf("seed: entity %q registered twice", name))
	}

	c.entries[name] = func(ctx context.Context, conn C, overrides map[string]any) (any, error) {
		if len(overrides) == 0 {
			return factory.Persist(ctx, conn)
		}
		o, err := bind(overrides)
		if err != nil {
			return nil, fmt.Errorf("bind overrides for %q: %w", name, err)
		}
		return factory.PersistWith(ctx, conn, o)
	}
}

// Lookup returns the seed runner registered under name.
func (c *Catalog[C]) Lookup(name string) (SeedFunc[C], bool) {
	fn, ok := c.entries[norm.NFC.String(name)]
	return fn, ok
}

// Names returns the registered entity names, sorted.
func (c *Catalog[C]) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
