package engine

import (
	"iter"

	"github.com/a11yscan/a11yscan/pkg/findings"
	"github.com/a11yscan/a11yscan/pkg/uitree"
)

// Rule is a named, stateless accessibility check. Implementations are
// authored independently of the engine and must satisfy:
//
//   - ID is globally unique and stable across releases.
//   - AppliesTo returns the surfaces the rule is relevant to; nil or
//     empty means every surface.
//   - Evaluate is pure: it reads the node and context, mutates
//     neither, touches no shared state, performs no I/O, and returns a
//     lazy, finite, possibly-empty sequence of findings. It may be
//     called once per applicable node, or not at all.
//
// Purity is what permits evaluating sibling subtrees concurrently
// without changing this contract.
type Rule interface {
	ID() string
	Description() string
	DefaultSeverity() findings.Severity
	AppliesTo() []Surface
	Evaluate(node *uitree.Node, ctx *RuleContext) iter.Seq[findings.Finding]
}

// appliesTo reports whether the rule is applicable on the surface.
func appliesTo(r Rule, surface Surface) bool {
	declared := r.AppliesTo()
	if len(declared) == 0 {
		return true
	}
	for _, s := range declared {
		if s == surface {
			return true
		}
	}
	return false
}

// Emit wraps a pre-built slice of findings as the lazy sequence the
// rule contract requires. Convenient for rules that decide everything
// up front.
func Emit(fs ...findings.Finding) iter.Seq[findings.Finding] {
	return func(yield func(findings.Finding) bool) {
		for _, f := range fs {
			if !yield(f) {
				return
			}
		}
	}
}

// None is the empty finding sequence.
func None() iter.Seq[findings.Finding] {
	return func(func(findings.Finding) bool) {}
}
