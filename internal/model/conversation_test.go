package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversation_AppendDropsMalformedRequirements(t *testing.T) {
	t.Parallel()

	c := NewConversation()

	require.True(t, c.Append(Requirement{ID: "ok", Category: CategoryBusinessProcess, Answer: "Do a thing"}))
	assert.False(t, c.Append(Requirement{ID: "no-answer", Category: CategoryBusinessProcess}))
	assert.False(t, c.Append(Requirement{ID: "bad-category", Category: "nope", Answer: "text"}))

	assert.Len(t, c.Requirements, 1)
}

func TestConversation_AdvanceToIsOneWay(t *testing.T) {
	t.Parallel()

	c := NewConversation()
	require.Equal(t, PhaseDiscovery, c.Phase)

	c.AdvanceTo(PhaseBlueprint)
	assert.Equal(t, PhaseBlueprint, c.Phase)

	c.AdvanceTo(PhaseRequirements)
	assert.Equal(t, PhaseBlueprint, c.Phase)

	c.AdvanceTo(PhaseImplementation)
	assert.Equal(t, PhaseImplementation, c.Phase)
}

func TestConversation_HasCategoryIsSetBased(t *testing.T) {
	t.Parallel()

	c := NewConversation()
	c.Append(Requirement{ID: "a", Category: CategoryIntegrations, Answer: "Shopify"})
	c.Append(Requirement{ID: "b", Category: CategoryIntegrations, Answer: "Stripe"})

	assert.True(t, c.HasCategory(CategoryIntegrations))
	assert.False(t, c.HasCategory(CategoryScaleVolume))
}

func TestRequirementCategory_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, CategoryBusinessProcess.Valid())
	assert.True(t, CategorySecurityCompliance.Valid())
	assert.False(t, RequirementCategory("astrology").Valid())
	assert.False(t, RequirementCategory("").Valid())
}

func TestBlueprint_TotalHoursAndROIStayConsistent(t *testing.T) {
	t.Parallel()

	bp := Blueprint{
		Plan: []PlanPhase{
			{Name: "A", Tasks: []PlanTask{{Hours: 10}, {Hours: 5}}},
			{Name: "B", Tasks: []PlanTask{{Hours: 7}}},
		},
		ROI: ROIProjection{ThreeYearROI: 240, PaybackMonths: 4},
	}

	assert.Equal(t, 22, bp.TotalHours())
	assert.Equal(t, "240% over 3 years, payback in 4 months", bp.EstimatedROI())
}
