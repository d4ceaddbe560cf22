package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_WeightsNameOverDescriptionOverTag(t *testing.T) {
	t.Parallel()

	s := New(
		Template{ID: "tag-only", Name: "Generic Job", Tags: []string{"scoring"}},
		Template{ID: "desc-only", Name: "Generic Job", Description: "Does lead scoring."},
		Template{ID: "name-hit", Name: "Lead Scoring", Description: "Scores leads."},
	)

	got := s.Recommend([]string{"scoring"})
	require.Len(t, got, 3)
	assert.Equal(t, "name-hit", got[0].ID)
	assert.Equal(t, "desc-only", got[1].ID)
	assert.Equal(t, "tag-only", got[2].ID)
}

func TestRecommend_ExcludesZeroScores(t *testing.T) {
	t.Parallel()

	s := New(
		Template{ID: "relevant", Name: "Invoice Reminder"},
		Template{ID: "irrelevant", Name: "Lead Router", Description: "Routes leads.", Tags: []string{"leads"}},
	)

	got := s.Recommend([]string{"invoice"})
	require.Len(t, got, 1)
	assert.Equal(t, "relevant", got[0].ID)
}

func TestRecommend_ScoresAccumulateAcrossKeywords(t *testing.T) {
	t.Parallel()

	s := New(
		// "order" in name (+3) and "payment" in description (+2): 5 total.
		Template{ID: "both", Name: "Order Processing", Description: "Captures payment."},
		// "order" in name only: 3 total.
		Template{ID: "one", Name: "Order Archive"},
	)

	got := s.Recommend([]string{"order processing", "payment capture"})
	require.Len(t, got, 2)
	assert.Equal(t, "both", got[0].ID)
}

func TestRecommend_CapsAtTen(t *testing.T) {
	t.Parallel()

	templates := make([]Template, 0, 15)
	for i := 0; i < 15; i++ {
		templates = append(templates, Template{
			ID:   fmt.Sprintf("t%d", i),
			Name: "Sync Job",
		})
	}
	s := New(templates...)

	got := s.Recommend([]string{"sync"})
	assert.Len(t, got, 10)
}

func TestRecommend_EmptyInputRecommendsNothing(t *testing.T) {
	t.Parallel()

	s := New(testTemplates()...)

	assert.Empty(t, s.Recommend(nil))
	assert.Empty(t, s.Recommend([]string{""}))
}
