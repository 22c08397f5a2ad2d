package engine

import (
	"sort"

	"github.com/a11yscan/a11yscan/pkg/findings"
)

// aggregator collapses the raw finding stream into a deduplicated,
// deterministically ordered collection.
//
// Deduplication is keyed on the composite finding ID: a rule may be
// invoked once per node by the evaluator and also recurse into
// descendants internally, so duplicate emission is an expected pattern
// collapsed centrally rather than trusted to each rule author. The
// first occurrence wins.
//
// Ordering is (visit order of the owning node, rule ID, sub-check
// tag): the same tree, rule set, and surface always produce the same
// ordered output regardless of rule execution order.
type aggregator struct {
	seen    map[string]bool
	entries []aggregated
}

type aggregated struct {
	visit   int
	finding findings.Finding
}

func newAggregator() *aggregator {
	return &aggregator{seen: make(map[string]bool)}
}

// add records a finding emitted during the given node visit, dropping
// exact duplicates.
func (a *aggregator) add(visit int, f findings.Finding) {
	if a.seen[f.ID] {
		return
	}
	a.seen[f.ID] = true
	a.entries = append(a.entries, aggregated{visit: visit, finding: f})
}

// result returns the final ordered collection. Severity filtering and
// grouping are downstream concerns and do not happen here.
func (a *aggregator) result() []findings.Finding {
	sort.SliceStable(a.entries, func(i, j int) bool {
		ei, ej := a.entries[i], a.entries[j]
		if ei.visit != ej.visit {
			return ei.visit < ej.visit
		}
		if ei.finding.RuleID != ej.finding.RuleID {
			return ei.finding.RuleID < ej.finding.RuleID
		}
		return ei.finding.Tag < ej.finding.Tag
	})
	out := make([]findings.Finding, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.finding)
	}
	return out
}
