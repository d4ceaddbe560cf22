package classify

import "github.com/arsalion01/blueprintgo/internal/model"

// criticalCategories are the requirement categories that gate phase
// advancement from requirements to blueprint.
var criticalCategories = []model.RequirementCategory{
	model.CategoryBusinessProcess,
	model.CategoryTechnicalSpecs,
	model.CategoryIntegrations,
	model.CategoryScaleVolume,
}

// completenessThreshold gates the requirements -> blueprint transition.
// The boundary is inclusive: a conversation advances once completeness
// reaches 0.8, which with four critical categories means all four must be
// present.
const completenessThreshold = 0.8

// Completeness returns the fraction of critical categories covered by the
// requirement set. Presence is set-based: duplicate categories do not move
// the score.
func Completeness(reqs []model.Requirement) float64 {
	present := make(map[model.RequirementCategory]struct{})
	for _, r := range reqs {
		present[r.Category] = struct{}{}
	}

	covered := 0
	for _, cat := range criticalCategories {
		if _, ok := present[cat]; ok {
			covered++
		}
	}
	return float64(covered) / float64(len(criticalCategories))
}

// ReadyForBlueprint reports whether the requirement set is complete enough
// to synthesize a blueprint.
func ReadyForBlueprint(reqs []model.Requirement) bool {
	return Completeness(reqs) >= completenessThreshold
}
