package model

import "fmt"

// Complexity grades how demanding the automation is to build and operate.
type Complexity string

const (
	ComplexitySimple     Complexity = "simple"
	ComplexityModerate   Complexity = "moderate"
	ComplexityComplex    Complexity = "complex"
	ComplexityEnterprise Complexity = "enterprise"
)

// RiskLevel buckets an individual risk or the aggregate assessment.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskKind separates where in the project a risk lives.
type RiskKind string

const (
	RiskTechnical   RiskKind = "technical"
	RiskBusiness    RiskKind = "business"
	RiskOperational RiskKind = "operational"
)

// Risk is a single identified project risk. Impact and Probability are
// scored 1..5; their product drives the aggregate level.
type Risk struct {
	Description string
	Kind        RiskKind
	Impact      int
	Probability int
	Mitigation  string
}

// Score returns impact multiplied by probability.
func (r Risk) Score() int {
	return r.Impact * r.Probability
}

// RiskAssessment aggregates the individual risks into an overall level.
type RiskAssessment struct {
	Risks   []Risk
	Overall RiskLevel
}

// PlanTask is one unit of work inside an implementation phase.
type PlanTask struct {
	Name  string
	Hours int
	Risk  RiskLevel
}

// PlanPhase is one ordered phase of the implementation plan.
type PlanPhase struct {
	Name  string
	Tasks []PlanTask
}

// Hours sums the task estimates of the phase.
func (p PlanPhase) Hours() int {
	total := 0
	for _, t := range p.Tasks {
		total += t.Hours
	}
	return total
}

// CostEstimate is the fixed-rate cost model for the blueprint.
type CostEstimate struct {
	DevelopmentHours      int
	HourlyRate            float64
	Development           float64
	InfrastructureMonthly float64
	MaintenanceMonthly    float64
	FirstYearTotal        float64
}

// ROIProjection is the return-on-investment model derived from the cost
// estimate and the estimated weekly hours saved.
type ROIProjection struct {
	WeeklyHoursSaved float64
	MonthlySavings   float64
	PaybackMonths    int
	ThreeYearROI     float64
}

// SuccessMetric is a measurable target the automation is expected to hit.
type SuccessMetric struct {
	Name      string
	Target    string
	Timeframe string
}

// Blueprint is the full synthesized plan: architecture, phased
// implementation, risk, cost, and ROI. It is a value object returned to the
// caller; the synthesizer holds no reference to it afterward.
type Blueprint struct {
	ID            string
	Title         string
	Overview      string
	BusinessCase  string
	Domain        string
	Complexity    Complexity
	Architecture  Architecture
	Plan          []PlanPhase
	Risks         RiskAssessment
	Metrics       []SuccessMetric
	Cost          CostEstimate
	ROI           ROIProjection
}

// EstimatedROI renders the headline ROI figure. It is always derived from
// the ROI projection so the two can never disagree.
func (b Blueprint) EstimatedROI() string {
	return fmt.Sprintf("%.0f%% over 3 years, payback in %d months", b.ROI.ThreeYearROI, b.ROI.PaybackMonths)
}

// TotalHours sums the hour estimates across all plan phases.
func (b Blueprint) TotalHours() int {
	total := 0
	for _, p := range b.Plan {
		total += p.Hours()
	}
	return total
}

// BlueprintConfig carries the caller-supplied knobs for blueprint
// generation.
type BlueprintConfig struct {
	// Industry is free-form context used in the overview text.
	Industry string
	// Timeline is one of "urgent", "standard", or "relaxed" and scales the
	// implementation plan. Unknown values fall back to "standard".
	Timeline string
}
