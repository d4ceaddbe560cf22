package catalog

import (
	"sort"
	"strings"
)

// SearchFilters narrows a search result after token matching. Zero values
// mean "no constraint".
type SearchFilters struct {
	Category    string
	Difficulty  int
	Tags        []string
	Integration string
}

// Search returns the templates matching the free-text query and filters,
// sorted by popularity descending with ties in prior (load) order.
//
// Token semantics are conjunctive: every whitespace-separated token of the
// query must appear as a case-folded substring in at least one of name,
// description, or a tag. An empty query matches everything.
func (s *Store) Search(query string, filters *SearchFilters) []*Template {
	tokens := strings.Fields(strings.ToLower(query))

	var out []*Template
	for _, t := range s.templates {
		if !matchesTokens(t, tokens) {
			continue
		}
		if !matchesFilters(t, filters) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Popularity > out[j].Popularity
	})
	return out
}

// matchesTokens applies the AND-across-tokens, OR-across-fields rule.
func matchesTokens(t *Template, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(strings.ToLower(t.Name), token) {
			continue
		}
		if strings.Contains(strings.ToLower(t.Description), token) {
			continue
		}
		if tagContains(t.Tags, token) {
			continue
		}
		return false
	}
	return true
}

func tagContains(tags []string, token string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), token) {
			return true
		}
	}
	return false
}

// matchesFilters applies the structured filters as further conjunctions.
func matchesFilters(t *Template, f *SearchFilters) bool {
	if f == nil {
		return true
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Difficulty != 0 && t.Difficulty != f.Difficulty {
		return false
	}
	for _, want := range f.Tags {
		if !hasExactTag(t.Tags, want) {
			return false
		}
	}
	if f.Integration != "" && !hasExactTag(t.Integrations, f.Integration) {
		return false
	}
	return true
}

func hasExactTag(haystack []string, want string) bool {
	for _, have := range haystack {
		if strings.EqualFold(have, want) {
			return true
		}
	}
	return false
}
