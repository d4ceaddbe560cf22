package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_TokensAreConjunctive(t *testing.T) {
	t.Parallel()

	s := New(
		Template{ID: "a", Name: "Order Processing", Description: "Handles payment capture.", Popularity: 10},
		Template{ID: "b", Name: "Order Archive", Description: "Stores old orders.", Popularity: 20},
	)

	// Both tokens must hit somewhere; only "a" mentions payment.
	got := s.Search("order payment", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestSearch_TokenMayHitAnyField(t *testing.T) {
	t.Parallel()

	s := New(
		Template{ID: "name-hit", Name: "Invoice Reminder"},
		Template{ID: "desc-hit", Name: "Weekly Job", Description: "Sends invoice follow-ups."},
		Template{ID: "tag-hit", Name: "Finance Job", Tags: []string{"invoices"}},
		Template{ID: "no-hit", Name: "Lead Router"},
	)

	got := s.Search("invoice", nil)
	require.Len(t, got, 3)
	for _, tmpl := range got {
		assert.NotEqual(t, "no-hit", tmpl.ID)
	}
}

func TestSearch_EmptyQueryMatchesEverything(t *testing.T) {
	t.Parallel()

	s := New(testTemplates()...)

	got := s.Search("", nil)
	assert.Len(t, got, s.Len())
}

func TestSearch_SortsByPopularityDescending(t *testing.T) {
	t.Parallel()

	s := New(
		Template{ID: "low", Name: "Sync Job", Popularity: 5},
		Template{ID: "high", Name: "Sync Service", Popularity: 50},
		Template{ID: "mid", Name: "Sync Worker", Popularity: 25},
	)

	got := s.Search("sync", nil)
	require.Len(t, got, 3)
	assert.Equal(t, "high", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)
	assert.Equal(t, "low", got[2].ID)
}

func TestSearch_PopularityTiesKeepLoadOrder(t *testing.T) {
	t.Parallel()

	s := New(
		Template{ID: "first", Name: "Sync A", Popularity: 10},
		Template{ID: "second", Name: "Sync B", Popularity: 10},
	)

	got := s.Search("sync", nil)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "second", got[1].ID)
}

func TestSearch_Filters(t *testing.T) {
	t.Parallel()

	s := New(testTemplates()...)

	tests := []struct {
		name    string
		filters SearchFilters
		wantIDs []string
	}{
		{
			name:    "category narrows",
			filters: SearchFilters{Category: CategoryCRMSales},
			wantIDs: []string{"leads"},
		},
		{
			name:    "difficulty is exact",
			filters: SearchFilters{Difficulty: 2},
			wantIDs: []string{"orders"},
		},
		{
			name:    "tag filter is exact but case-insensitive",
			filters: SearchFilters{Tags: []string{"LEADS"}},
			wantIDs: []string{"leads"},
		},
		{
			name:    "integration filter",
			filters: SearchFilters{Integration: "stripe"},
			wantIDs: []string{"orders"},
		},
		{
			name:    "all filters must hold",
			filters: SearchFilters{Category: CategoryEcommerce, Difficulty: 3},
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := s.Search("", &tt.filters)
			var gotIDs []string
			for _, tmpl := range got {
				gotIDs = append(gotIDs, tmpl.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestSearch_PartialTagSubstringDoesNotSatisfyTagFilter(t *testing.T) {
	t.Parallel()

	s := New(Template{ID: "a", Name: "Job", Tags: []string{"payments"}})

	// Token matching is substring-based, the tag filter is exact.
	assert.Len(t, s.Search("payment", nil), 1)
	assert.Empty(t, s.Search("", &SearchFilters{Tags: []string{"payment"}}))
}
