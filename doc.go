// Package fabrik is a test-data factory framework: ask for an entity and get
// a fully populated, internally consistent instance, optionally written to a
// backing store together with every entity it transitively depends on, in
// dependency order.
//
// # Factories
//
// Adopters declare one Factory per entity type by binding two functions: a
// manifest function that builds an in-memory instance from optional overrides,
// and a persist function that writes an instance through an opaque store
// handle. The store handle type is a free type parameter; fabrik never opens,
// closes, commits, or inspects it.
//
//	var movies = fabrik.New(
//	    func(o MovieOverrides, reg *fabrik.Registry[*sql.DB]) Movie {
//	        return Movie{
//	            Title: fabrik.Or(o.Title, "Inception"),
//	            Year:  fabrik.Or(o.Year, 2010),
//	        }
//	    },
//	    func(ctx context.Context, db *sql.DB, m Movie) (Movie, error) {
//	        _, err := db.ExecContext(ctx,
//	            "insert into movie (title, year) values (?, ?)", m.Title, m.Year)
//	        return m, err
//	    },
//	)
//
//	movie := movies.Manifest()                       // in-memory only
//	movie, err := movies.Persist(ctx, db)            // written to the store
//
// # Associations
//
// A manifest function declares the dependencies its entity needs persisted by
// calling Associate on another factory, passing its own registry. Associate
// returns the dependency's in-memory form immediately, so the caller can read
// a generated identifier for a foreign key, and appends a deferred persist
// operation to the registry:
//
//	postID := fabrik.OrFunc(o.PostID, func() int64 {
//	    return posts.Associate(reg).ID
//	})
//
// When the root entity is persisted, its registry is drained first: every
// deferred operation runs in registration order, so a dependency is always
// durably written before the entity that references it. The value persisted is
// the exact value Associate handed back during manifesting; the dependency is
// never manifested a second time, which keeps sequence-generated fields stable
// across the in-memory and persisted phases.
//
// # Registries
//
// A Registry is an ordered, append-only list of type-erased pending persist
// operations. Draining consumes the registry: each operation runs at most
// once, in the exact order it was appended, and the first failure halts the
// drain and propagates as a *DrainError. Dependencies written before the
// failure stay written; fabrik manages no transactions and performs no
// rollback. Callers that need atomicity across the whole graph wrap the
// Persist call in their own transaction and pass that transaction as the
// store handle.
//
// # Overrides
//
// Overrides are plain structs with one pointer field per entity field; nil
// means "compute the default". Or and OrFunc implement the merge policy:
// supplied values are used verbatim and default computations for supplied
// fields never run. The zero overrides value must always yield a valid,
// persistable entity.
//
// # Sequences
//
// Sequence produces successive values from a counter via a user-supplied
// produce function; it backs uniqueness defaults such as emails. Sequences are
// plain mutable values with no global state: create them where the factories
// that use them live, one set per test, so tests stay isolated.
package fabrik
