// Package catalog implements the template knowledge base: an immutable,
// load-once store of reusable automation templates with multi-dimensional
// indexes, plus the search and recommendation queries that run against it.
//
// # Store
//
// A Store is built in full from a slice of templates, either given directly
// or loaded from an HCL template library on disk. Loading rebuilds three
// insertion-ordered indexes (by category, by tag, by integration); there is
// no incremental update path. After construction the store is read-only, so
// a single instance is safe to share across concurrent callers without
// locking.
//
// The store is an explicitly constructed, injected object. Tests build
// isolated instances from inline fixtures; the CLI builds one from the
// templates directory at startup.
//
// # Queries
//
// Search uses conjunctive token matching: every whitespace token of the
// query must appear as a case-folded substring in the template's name,
// description, or one of its tags. Recommend ranks templates by a weighted
// keyword-overlap score (name 3, description 2, tag 1) and keeps the top
// ten non-zero scorers. Both orderings are stable so that load order breaks
// ties deterministically.
package catalog
