// Package compile lowers a blueprint's architecture into concrete workflow
// graphs: a main graph built as a strict linear chain (trigger, optional
// validation, processing, integrations, notification, optional error
// subgraph), plus supporting data-processing and monitoring graphs when the
// architecture calls for them.
//
// Construction is total: unknown services, unmatched trigger keywords, and
// missing components all resolve to documented fallback node types, so
// compilation has no error path. Well-formedness of the produced graphs is
// the workflow package's Validate contract.
package compile
