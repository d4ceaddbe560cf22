package blueprint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arsalion01/blueprintgo/internal/model"
)

func TestNew_RejectsNilEstimator(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { New(nil) })
}

func TestGenerate_EmptyInputProducesGenericBlueprint(t *testing.T) {
	t.Parallel()

	s := New(FixedEstimator{Hours: 10})

	bp := s.Generate(context.Background(), nil, model.BlueprintConfig{})

	assert.NotEmpty(t, bp.ID)
	assert.Equal(t, DomainGeneral, bp.Domain)
	assert.Equal(t, model.ComplexitySimple, bp.Complexity)
	assert.Equal(t, "Business Process Automation", bp.Title)
	require.Len(t, bp.Architecture.Components, 4)
	assert.Len(t, bp.Plan, 4)
	assert.NotEmpty(t, bp.Risks.Risks)
}

func TestGenerate_IsDeterministicWithFixedEstimator(t *testing.T) {
	t.Parallel()

	s := New(FixedEstimator{Hours: 12})
	reqs := []model.Requirement{req("Automate order handling with shopify and stripe")}

	first := s.Generate(context.Background(), reqs, model.BlueprintConfig{Timeline: "standard"})
	second := s.Generate(context.Background(), reqs, model.BlueprintConfig{Timeline: "standard"})

	// IDs differ per generation; everything derived must not.
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Domain, second.Domain)
	assert.Equal(t, first.Complexity, second.Complexity)
	assert.Equal(t, first.Cost, second.Cost)
	assert.Equal(t, first.ROI, second.ROI)
	assert.Equal(t, first.Plan, second.Plan)
}

func TestGenerate_CostModelUsesFixedRates(t *testing.T) {
	t.Parallel()

	s := New(FixedEstimator{Hours: 10})

	bp := s.Generate(context.Background(), nil, model.BlueprintConfig{})

	assert.Equal(t, 150.0, bp.Cost.HourlyRate)
	assert.Equal(t, 250.0, bp.Cost.InfrastructureMonthly)
	assert.Equal(t, 500.0, bp.Cost.MaintenanceMonthly)
	assert.Equal(t, float64(bp.Cost.DevelopmentHours)*150, bp.Cost.Development)
	assert.Equal(t, bp.Cost.Development+12*750, bp.Cost.FirstYearTotal)
	assert.Equal(t, bp.TotalHours(), bp.Cost.DevelopmentHours)
}

func TestGenerate_ROIDerivesFromEstimator(t *testing.T) {
	t.Parallel()

	s := New(FixedEstimator{Hours: 10})

	bp := s.Generate(context.Background(), nil, model.BlueprintConfig{})

	// 10 hours/week at the fixed rate is 6000/month.
	assert.Equal(t, 6000.0, bp.ROI.MonthlySavings)
	assert.Equal(t, 10.0, bp.ROI.WeeklyHoursSaved)
	assert.Positive(t, bp.ROI.PaybackMonths)
	assert.Contains(t, bp.EstimatedROI(), "payback in")
}

func TestGenerate_EcommerceRequirementsSelectTheEcommerceArchetype(t *testing.T) {
	t.Parallel()

	s := New(FixedEstimator{Hours: 10})
	reqs := []model.Requirement{req("Automate order fulfillment for the shop")}

	bp := s.Generate(context.Background(), reqs, model.BlueprintConfig{})

	assert.Equal(t, DomainEcommerce, bp.Domain)
	assert.Equal(t, "E-commerce Order Automation", bp.Title)

	names := make([]string, 0, len(bp.Architecture.Components))
	for _, c := range bp.Architecture.Components {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "Order Intake")
	assert.Contains(t, names, "Payment Capture")

	services := make([]string, 0, len(bp.Architecture.Integrations))
	for _, spec := range bp.Architecture.Integrations {
		services = append(services, spec.Service)
	}
	assert.Contains(t, services, "shopify")
	assert.Contains(t, services, "stripe")
}

func TestGenerate_MentionedServicesJoinTheIntegrationList(t *testing.T) {
	t.Parallel()

	s := New(FixedEstimator{Hours: 10})
	reqs := []model.Requirement{req("Automate order intake and log everything to airtable")}

	bp := s.Generate(context.Background(), reqs, model.BlueprintConfig{})

	services := make([]string, 0, len(bp.Architecture.Integrations))
	for _, spec := range bp.Architecture.Integrations {
		services = append(services, spec.Service)
	}
	// The archetype's own services stay, the mentioned one is appended once.
	assert.Contains(t, services, "shopify")
	assert.Contains(t, services, "airtable")
	assert.Equal(t, len(services), len(uniqueStrings(services)))
}

func TestGenerate_IndustryAppearsInOverview(t *testing.T) {
	t.Parallel()

	s := New(FixedEstimator{Hours: 10})

	bp := s.Generate(context.Background(), nil, model.BlueprintConfig{Industry: "logistics"})

	assert.Contains(t, bp.Overview, "logistics")
}

func TestRandomEstimator_StaysInsideTheComplexityRange(t *testing.T) {
	t.Parallel()

	e := NewRandomEstimator(1)
	for i := 0; i < 100; i++ {
		got := e.WeeklyHoursSaved(Analysis{Complexity: model.ComplexityComplex})
		assert.GreaterOrEqual(t, got, 20.0)
		assert.Less(t, got, 35.0)
	}

	// Unknown complexity falls back to the simple range.
	got := e.WeeklyHoursSaved(Analysis{Complexity: "weird"})
	assert.GreaterOrEqual(t, got, 5.0)
	assert.Less(t, got, 10.0)
}

func TestCalculateROI_ZeroSavingsMeansNoPayback(t *testing.T) {
	t.Parallel()

	roi := calculateROI(calculateCosts(100), 0)

	assert.Zero(t, roi.MonthlySavings)
	assert.Zero(t, roi.PaybackMonths)
	assert.Negative(t, roi.ThreeYearROI)
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
