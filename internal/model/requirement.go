package model

// RequirementCategory classifies a single extracted requirement.
type RequirementCategory string

const (
	CategoryBusinessProcess    RequirementCategory = "business-process"
	CategoryTechnicalSpecs     RequirementCategory = "technical-specs"
	CategoryIntegrations       RequirementCategory = "integrations"
	CategoryScaleVolume        RequirementCategory = "scale-volume"
	CategorySecurityCompliance RequirementCategory = "security-compliance"
	CategoryUserExperience     RequirementCategory = "user-experience"
	CategoryBudgetTimeline     RequirementCategory = "budget-timeline"
	CategorySuccessMetrics     RequirementCategory = "success-metrics"
)

// requirementCategories is the closed set of valid categories.
var requirementCategories = map[RequirementCategory]struct{}{
	CategoryBusinessProcess:    {},
	CategoryTechnicalSpecs:     {},
	CategoryIntegrations:       {},
	CategoryScaleVolume:        {},
	CategorySecurityCompliance: {},
	CategoryUserExperience:     {},
	CategoryBudgetTimeline:     {},
	CategorySuccessMetrics:     {},
}

// Valid reports whether c is one of the known requirement categories.
func (c RequirementCategory) Valid() bool {
	_, ok := requirementCategories[c]
	return ok
}

// Priority ranks how strongly a requirement constrains the design.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Requirement is a single categorized fact captured from user input. It is
// created once and never mutated; conversations only accumulate them.
type Requirement struct {
	ID         string
	Category   RequirementCategory
	Question   string
	Answer     string
	Priority   Priority
	Confidence float64
	Tags       []string
}

// WellFormed reports whether the requirement carries enough shape to be used
// by the synthesizer. Malformed records are skipped, never rejected with an
// error, so synthesis always completes on partial input.
func (r Requirement) WellFormed() bool {
	return r.Answer != "" && r.Category.Valid()
}
