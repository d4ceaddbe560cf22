package blueprint

import (
	"math"

	"github.com/arsalion01/blueprintgo/internal/model"
)

// planTask is a skeleton task with its base hour estimate.
type planTask struct {
	Name  string
	Hours float64
	Risk  model.RiskLevel
}

// planSkeleton is the fixed four-phase implementation plan. Hours are
// scaled by complexity and timeline before they land in the blueprint.
var planSkeleton = []struct {
	Name  string
	Tasks []planTask
}{
	{
		Name: "Setup",
		Tasks: []planTask{
			{Name: "Requirements review and sign-off", Hours: 8, Risk: model.RiskLow},
			{Name: "Environment and access setup", Hours: 12, Risk: model.RiskLow},
			{Name: "Engine configuration", Hours: 8, Risk: model.RiskLow},
		},
	},
	{
		Name: "Core Development",
		Tasks: []planTask{
			{Name: "Workflow construction", Hours: 32, Risk: model.RiskMedium},
			{Name: "Processing logic", Hours: 24, Risk: model.RiskMedium},
			{Name: "Data mapping", Hours: 16, Risk: model.RiskLow},
		},
	},
	{
		Name: "Integration & Testing",
		Tasks: []planTask{
			{Name: "Service integrations", Hours: 24, Risk: model.RiskHigh},
			{Name: "End-to-end testing", Hours: 16, Risk: model.RiskMedium},
			{Name: "Error-path validation", Hours: 8, Risk: model.RiskMedium},
		},
	},
	{
		Name: "Deployment & Training",
		Tasks: []planTask{
			{Name: "Production rollout", Hours: 8, Risk: model.RiskMedium},
			{Name: "Team training", Hours: 8, Risk: model.RiskLow},
			{Name: "Documentation handover", Hours: 8, Risk: model.RiskLow},
		},
	},
}

// complexityMultipliers scale the skeleton's base hours.
var complexityMultipliers = map[model.Complexity]float64{
	model.ComplexitySimple:     0.75,
	model.ComplexityModerate:   1.0,
	model.ComplexityComplex:    1.5,
	model.ComplexityEnterprise: 2.0,
}

// timelineMultipliers scale for schedule pressure. Unknown timelines scale
// as standard.
var timelineMultipliers = map[string]float64{
	"urgent":   1.2,
	"standard": 1.0,
	"relaxed":  0.9,
}

// buildPlan instantiates the four-phase skeleton with scaled hour
// estimates.
func buildPlan(complexity model.Complexity, timeline string) []model.PlanPhase {
	cm, ok := complexityMultipliers[complexity]
	if !ok {
		cm = 1.0
	}
	tm, ok := timelineMultipliers[timeline]
	if !ok {
		tm = 1.0
	}

	phases := make([]model.PlanPhase, 0, len(planSkeleton))
	for _, skel := range planSkeleton {
		phase := model.PlanPhase{Name: skel.Name}
		for _, t := range skel.Tasks {
			phase.Tasks = append(phase.Tasks, model.PlanTask{
				Name:  t.Name,
				Hours: int(math.Round(t.Hours * cm * tm)),
				Risk:  t.Risk,
			})
		}
		phases = append(phases, phase)
	}
	return phases
}
