// Package seed executes declarative seed plans against a fabrik entity
// catalog.
//
// A plan is a YAML document naming entities to persist, how many of each, and
// optional per-field overrides:
//
//	name: demo_blog
//	description: "Two authors and a commented post"
//	steps:
//	  - entity: author
//	    count: 2
//	  - entity: comment
//	    overrides:
//	      username: reviewer
//
// Plans are validated against an embedded CUE schema before execution, so
// malformed documents fail with a schema error instead of a confusing
// mid-run failure.
//
// A Catalog maps entity names to type-erased seed runners. Register adapts a
// typed *fabrik.Factory plus an overrides binder into the catalog; the
// catalog itself does not know the concrete entity types it holds, mirroring
// how a fabrik registry holds its pending operations.
//
// Steps run strictly in plan order, each persist call carrying the plan's
// overrides; associations declared by the factories fire as usual, so a
// single "comment" step may write three rows. The first failure aborts the
// run; rows already written stay written (the runner manages no
// transactions, same as the core framework).
package seed
