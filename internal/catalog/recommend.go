package catalog

import (
	"sort"
	"strings"
)

// Keyword hit weights for Recommend. The 3/2/1 split and the zero-score
// exclusion are part of the ranking contract.
const (
	scoreNameHit        = 3
	scoreDescriptionHit = 2
	scoreTagHit         = 1

	maxRecommendations = 10
)

// Recommend scores every template against the given requirement texts and
// returns the top ten non-zero scorers, score descending, ties in load
// order. The score accumulates per keyword: +3 for a name hit, +2 for a
// description hit, +1 for a tag hit.
func (s *Store) Recommend(requirementTexts []string) []*Template {
	var keywords []string
	for _, text := range requirementTexts {
		keywords = append(keywords, strings.Fields(strings.ToLower(text))...)
	}

	type scored struct {
		template *Template
		score    int
	}

	var ranked []scored
	for _, t := range s.templates {
		score := scoreTemplate(t, keywords)
		if score == 0 {
			continue
		}
		ranked = append(ranked, scored{template: t, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > maxRecommendations {
		ranked = ranked[:maxRecommendations]
	}

	out := make([]*Template, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.template)
	}
	return out
}

// scoreTemplate accumulates the weighted keyword hits for one template.
func scoreTemplate(t *Template, keywords []string) int {
	name := strings.ToLower(t.Name)
	description := strings.ToLower(t.Description)

	score := 0
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			score += scoreNameHit
		}
		if strings.Contains(description, kw) {
			score += scoreDescriptionHit
		}
		if tagContains(t.Tags, kw) {
			score += scoreTagHit
		}
	}
	return score
}
