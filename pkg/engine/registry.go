package engine

import (
	"sort"
	"sync"
)

// Registry holds a set of registered rules and answers "which rules
// apply to surface X". Registries are explicit objects — there is no
// ambient global catalog — so independent scans with different rule
// subsets can run concurrently without interference.
type Registry struct {
	rules []Rule
	byID  map[string]Rule

	mu         sync.Mutex
	projection map[Surface][]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:       make(map[string]Rule),
		projection: make(map[Surface][]Rule),
	}
}

// Register adds rules to the registry. A duplicate rule ID is a
// configuration error and is rejected here, at registration time,
// never during a scan. Registration order is preserved but does not
// affect scan output ordering.
func (r *Registry) Register(rules ...Rule) error {
	for _, rule := range rules {
		if _, exists := r.byID[rule.ID()]; exists {
			return &DuplicateRuleError{RuleID: rule.ID()}
		}
		r.byID[rule.ID()] = rule
		r.rules = append(r.rules, rule)
	}
	// Projections computed against the previous rule set are stale.
	r.mu.Lock()
	r.projection = make(map[Surface][]Rule)
	r.mu.Unlock()
	return nil
}

// Rules returns every registered rule in registration order.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

// ApplicableTo returns the rules relevant to the surface, sorted by
// rule ID. The projection is computed once per surface and memoized:
// the surface is constant for a whole tree, so filtering must not be
// repeated at every one of potentially thousands of nodes.
func (r *Registry) ApplicableTo(surface Surface) []Rule {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.projection[surface]; ok {
		return cached
	}
	var filtered []Rule
	for _, rule := range r.rules {
		if appliesTo(rule, surface) {
			filtered = append(filtered, rule)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].ID() < filtered[j].ID()
	})
	r.projection[surface] = filtered
	return filtered
}
