package rules

import (
	"fmt"
	"iter"

	"github.com/a11yscan/a11yscan/pkg/engine"
	"github.com/a11yscan/a11yscan/pkg/findings"
	"github.com/a11yscan/a11yscan/pkg/uitree"
)

// PositiveTabIndex flags controls that force themselves ahead in the
// tab order with an explicit positive tab index.
type PositiveTabIndex struct{}

func (PositiveTabIndex) ID() string { return "ACC003" }
func (PositiveTabIndex) Description() string {
	return "Controls should not use a positive tab index"
}
func (PositiveTabIndex) DefaultSeverity() findings.Severity { return findings.SeverityMedium }
func (PositiveTabIndex) AppliesTo() []engine.Surface        { return nil }

func (PositiveTabIndex) Evaluate(node *uitree.Node, ctx *engine.RuleContext) iter.Seq[findings.Finding] {
	tabIndex, ok := node.Properties.GetNumber("TabIndex")
	if !ok || tabIndex <= 0 {
		return engine.None()
	}
	return engine.Emit(findings.Finding{
		IssueType:    "positive-tab-index",
		Message:      fmt.Sprintf("control %q sets tab index %d", node.Label(), int(tabIndex)),
		Rationale:    "positive tab indexes override the reading order and make keyboard focus jump unpredictably",
		SuggestedFix: "use tab index 0 and let the document order drive focus",
		References:   []string{"WCAG22:2.4.3"},
	})
}

// FocusableHidden flags controls that stay in the keyboard tab order
// while invisible, trapping focus on something the user cannot see.
type FocusableHidden struct{}

func (FocusableHidden) ID() string { return "ACC005" }
func (FocusableHidden) Description() string {
	return "Invisible controls must not be keyboard focusable"
}
func (FocusableHidden) DefaultSeverity() findings.Severity { return findings.SeverityMedium }
func (FocusableHidden) AppliesTo() []engine.Surface        { return nil }

func (FocusableHidden) Evaluate(node *uitree.Node, ctx *engine.RuleContext) iter.Seq[findings.Finding] {
	visible, ok := node.Properties.GetBool("Visible")
	if !ok || visible {
		return engine.None()
	}
	tabIndex, ok := node.Properties.GetNumber("TabIndex")
	if !ok || tabIndex < 0 {
		return engine.None()
	}
	return engine.Emit(findings.Finding{
		IssueType:    "hidden-focusable",
		Message:      fmt.Sprintf("control %q is invisible but keyboard focusable", node.Label()),
		Rationale:    "keyboard focus can land on the invisible control, leaving the user on an element with no visible indication",
		SuggestedFix: "set tab index to -1 while the control is hidden",
		References:   []string{"WCAG22:2.4.3", "WCAG22:2.4.7"},
	})
}
