// Package filter narrows the project grid by technology tag.
package filter

import (
	"sort"
	"sync"

	"github.com/Zachkp/folio/internal/content"
)

// Selection is the set of selected technology tags. An empty selection
// filters nothing. It is safe for concurrent use.
type Selection struct {
	mu   sync.RWMutex
	tags []string
}

// NewSelection starts with tags selected, ignoring duplicates.
func NewSelection(tags ...string) *Selection {
	s := &Selection{}
	for _, t := range tags {
		if !s.Has(t) {
			s.tags = append(s.tags, t)
		}
	}
	return s
}

// Toggle adds tag when absent and removes it when present. It reports
// whether the tag is selected afterwards.
func (s *Selection) Toggle(tag string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tags {
		if t == tag {
			s.tags = append(s.tags[:i:i], s.tags[i+1:]...)
			return false
		}
	}
	s.tags = append(s.tags, tag)
	return true
}

// Has reports whether tag is selected.
func (s *Selection) Has(tag string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Selected returns the tags in the order they were selected.
func (s *Selection) Selected() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.tags...)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.mu.Lock()
	s.tags = nil
	s.mu.Unlock()
}

// Apply returns the projects sharing at least one tag with the selection,
// in input order, or all of them when nothing is selected.
func (s *Selection) Apply(projects []content.Project) []content.Project {
	return Apply(s.Selected(), projects)
}

// Apply is the stateless form of Selection.Apply.
func Apply(selected []string, projects []content.Project) []content.Project {
	if len(selected) == 0 {
		return projects
	}
	out := make([]content.Project, 0, len(projects))
	for _, p := range projects {
		for _, tag := range selected {
			if p.HasTech(tag) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Technologies returns every distinct tag across projects, sorted.
func Technologies(projects []content.Project) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range projects {
		for _, t := range p.Technologies {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Counts returns how many projects carry each tag.
func Counts(projects []content.Project) map[string]int {
	counts := make(map[string]int)
	for _, p := range projects {
		for _, t := range p.Technologies {
			counts[t]++
		}
	}
	return counts
}

// Rand is the random source for chip hues.
type Rand interface {
	IntN(n int) int
}

// Hues assigns each tag a random hue in [0, 360) for its chip gradient.
func Hues(tags []string, rnd Rand) map[string]int {
	hues := make(map[string]int, len(tags))
	for _, t := range tags {
		hues[t] = rnd.IntN(360)
	}
	return hues
}
