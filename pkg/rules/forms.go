package rules

import (
	"fmt"
	"iter"
	"strings"

	"github.com/a11yscan/a11yscan/pkg/engine"
	"github.com/a11yscan/a11yscan/pkg/findings"
	"github.com/a11yscan/a11yscan/pkg/uitree"
)

var inputKinds = []string{
	"input", "textinput", "textarea", "combobox", "dropdown",
	"select", "datepicker", "checkbox", "radio", "toggle", "slider",
}

// InputLabel flags input controls with no programmatic label: no
// labelling property and no sibling label element pointing at them.
// The control's own Name does not count — for inputs it is an internal
// identifier, not what gets announced.
type InputLabel struct{}

func (InputLabel) ID() string { return "ACC004" }
func (InputLabel) Description() string {
	return "Input controls must have a programmatic label"
}
func (InputLabel) DefaultSeverity() findings.Severity { return findings.SeverityHigh }
func (InputLabel) AppliesTo() []engine.Surface        { return nil }

func (InputLabel) Evaluate(node *uitree.Node, ctx *engine.RuleContext) iter.Seq[findings.Finding] {
	if !isAnyType(node, inputKinds...) {
		return engine.None()
	}
	for _, prop := range []string{"AccessibleLabel", "aria-label", "aria-labelledby", "label", "title"} {
		if v, ok := node.Properties.GetString(prop); ok && v != "" {
			return engine.None()
		}
	}
	if labelledBySibling(node, ctx.Siblings) {
		return engine.None()
	}
	return engine.Emit(findings.Finding{
		IssueType:    "missing-label",
		Message:      fmt.Sprintf("input %q has no programmatic label", node.Label()),
		Rationale:    "without a label, screen reader users hear only the control type and cannot tell what to enter",
		SuggestedFix: "set an accessible label or associate a label element with the input",
		References:   []string{"WCAG22:3.3.2", "WCAG22:1.3.1"},
	})
}

// labelledBySibling reports whether a sibling label element targets
// the node via its "for" property.
func labelledBySibling(node *uitree.Node, siblings []*uitree.Node) bool {
	for _, sib := range siblings {
		if !sib.IsType("label") {
			continue
		}
		if target, ok := sib.Properties.GetString("for"); ok && strings.EqualFold(target, node.ID) {
			return true
		}
	}
	return false
}

// FormFieldLabel flags model-driven form fields whose label is blank
// or hidden, which renders the field anonymous on the form.
type FormFieldLabel struct{}

func (FormFieldLabel) ID() string { return "ACC009" }
func (FormFieldLabel) Description() string {
	return "Form fields must have a visible label"
}
func (FormFieldLabel) DefaultSeverity() findings.Severity { return findings.SeverityHigh }
func (FormFieldLabel) AppliesTo() []engine.Surface {
	return []engine.Surface{engine.SurfaceModelDrivenApp}
}

func (FormFieldLabel) Evaluate(node *uitree.Node, ctx *engine.RuleContext) iter.Seq[findings.Finding] {
	if !isAnyType(node, "control", "field") {
		return engine.None()
	}
	var out []findings.Finding
	if node.Name == "" {
		label, ok := node.Properties.GetString("label")
		if !ok || label == "" {
			out = append(out, findings.Finding{
				Tag:          "blank-label",
				IssueType:    "missing-label",
				Message:      fmt.Sprintf("form field %q has a blank label", node.ID),
				Rationale:    "a field without a label cannot be identified by assistive technology or by sighted users scanning the form",
				SuggestedFix: "set the field's display label",
				References:   []string{"WCAG22:3.3.2"},
			})
		}
	}
	if hidden, ok := node.Properties.GetBool("labelhidden"); ok && hidden {
		out = append(out, findings.Finding{
			Tag:          "hidden-label",
			IssueType:    "missing-label",
			Message:      fmt.Sprintf("form field %q hides its label", node.Label()),
			Rationale:    "hiding the label removes the field's visible name while the field itself stays visible",
			SuggestedFix: "show the label, or replace the field with one that carries its own caption",
			References:   []string{"WCAG22:3.3.2", "WCAG22:2.4.6"},
		})
	}
	return engine.Emit(out...)
}
