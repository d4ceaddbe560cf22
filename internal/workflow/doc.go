// Package workflow defines the compiled node-graph representation of an
// automation and its portable JSON serialization, the document an external
// workflow-execution engine imports.
//
// A Graph is an ordered node list plus a connection map keyed by source
// node name. Main-path edges always travel through output port 0, so the
// serialized form is `{"<source>": {"main": [[{node, type, index}]]}}`.
// Error-handling nodes are present in the node list but deliberately
// unreachable from the main path; the engine routes failures to them
// natively, without explicit edges in the document.
//
// The package guarantees structural well-formedness (trigger has no inbound
// edges, every other main-path node has at least one, the main path is
// acyclic), not semantic correctness against any particular engine runtime.
package workflow
