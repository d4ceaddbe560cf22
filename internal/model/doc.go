// Package model provides the shared domain types that flow through the
// compilation pipeline: categorized requirements, the conversation that
// accumulates them, and the synthesized blueprint with its architecture,
// plan, risk, and cost structures.
//
// The types here are plain value objects. They carry no behavior beyond
// small invariant-preserving helpers (phase advancement, requirement
// validation) so that the classifier, synthesizer, and graph builder can
// stay pure functions over them.
//
// The package also owns the HCL loader for requirement input files, keeping
// all knowledge of the on-disk format in one place the same way the grid
// loader does for the template library.
package model
