package catalog

import (
	"sort"
	"strings"
)

// Store holds the loaded templates and the prebuilt indexes over them.
// Load replaces everything; all other methods are read-only, so a populated
// Store is safe for concurrent use without locking.
type Store struct {
	templates     []*Template
	byID          map[string]*Template
	byCategory    map[string][]*Template
	byTag         map[string][]*Template
	byIntegration map[string][]*Template
}

// New creates a store populated with the given templates.
func New(templates ...Template) *Store {
	s := &Store{}
	s.Load(templates)
	return s
}

// Load rebuilds the store and all three indexes from scratch. Index slices
// preserve the insertion order of the input.
func (s *Store) Load(templates []Template) {
	s.templates = make([]*Template, 0, len(templates))
	s.byID = make(map[string]*Template, len(templates))
	s.byCategory = make(map[string][]*Template)
	s.byTag = make(map[string][]*Template)
	s.byIntegration = make(map[string][]*Template)

	for i := range templates {
		t := templates[i]
		s.templates = append(s.templates, &t)
		s.byID[t.ID] = &t
		s.byCategory[t.Category] = append(s.byCategory[t.Category], &t)
		for _, tag := range t.Tags {
			key := strings.ToLower(tag)
			s.byTag[key] = append(s.byTag[key], &t)
		}
		for _, svc := range t.Integrations {
			key := strings.ToLower(svc)
			s.byIntegration[key] = append(s.byIntegration[key], &t)
		}
	}
}

// Len returns the number of loaded templates.
func (s *Store) Len() int {
	return len(s.templates)
}

// All returns every template in load order. The returned slice is shared;
// callers must not mutate it.
func (s *Store) All() []*Template {
	return s.templates
}

// ByID looks up a template by its identifier.
func (s *Store) ByID(id string) (*Template, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// ByCategory returns exactly the templates of the given category, in load order.
func (s *Store) ByCategory(category string) []*Template {
	return s.byCategory[category]
}

// ByTag returns the templates carrying the given tag (case-insensitive), in
// load order.
func (s *Store) ByTag(tag string) []*Template {
	return s.byTag[strings.ToLower(tag)]
}

// ByIntegration returns the templates declaring the given integration
// service (case-insensitive), in load order.
func (s *Store) ByIntegration(service string) []*Template {
	return s.byIntegration[strings.ToLower(service)]
}

// Popular returns the n most popular templates, popularity descending, with
// ties broken by load order.
func (s *Store) Popular(n int) []*Template {
	out := make([]*Template, len(s.templates))
	copy(out, s.templates)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Popularity > out[j].Popularity
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
