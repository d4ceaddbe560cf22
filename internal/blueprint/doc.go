// Package blueprint synthesizes a full technical blueprint from an
// accumulated requirement set: domain and complexity analysis, an
// architecture chosen from fixed archetypes, a phased implementation plan,
// a risk assessment, and the cost/ROI projection.
//
// Every lookup in this package has a total fallback (unknown domains get
// the generic architecture, unknown timelines scale as standard), so
// generation never fails, including on an empty requirement set.
//
// The only non-deterministic piece, the weekly-hours-saved placeholder
// estimate, sits behind the Estimator interface so tests can substitute a
// fixed value.
package blueprint
