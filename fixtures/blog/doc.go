// Package blog is the demo fixture set shipped with fabrik: a three-level
// blog domain (Comment → Post → Author) with a SQLite-backed store that
// enforces referential integrity at insert time.
//
// It serves two purposes. It is the conformance surface for the framework's
// ordering guarantee — persisting a Comment with default overrides must
// insert Author, Post, Comment in that order or the foreign key constraints
// reject the writes — and it is the entity catalog the fabrik CLI seeds from.
//
// # Scoped sequences
//
// Each Set owns its own ID, email, and username sequences. Create one Set per
// test (or per seed run) so counters never bleed across runs:
//
//	set := blog.NewSet()
//	comment, err := set.Comments.Persist(ctx, store)
//
// The factories in a Set share the Set's sequences; two Sets are fully
// independent.
package blog
