package rules

import (
	"fmt"
	"iter"
	"strings"

	"github.com/a11yscan/a11yscan/pkg/engine"
	"github.com/a11yscan/a11yscan/pkg/findings"
	"github.com/a11yscan/a11yscan/pkg/uitree"
)

// ButtonAccessibleName flags buttons (and button-role controls) that
// assistive technology would announce with no name at all.
type ButtonAccessibleName struct{}

func (ButtonAccessibleName) ID() string { return "ACC001" }
func (ButtonAccessibleName) Description() string {
	return "Buttons must have an accessible name"
}
func (ButtonAccessibleName) DefaultSeverity() findings.Severity { return findings.SeverityHigh }
func (ButtonAccessibleName) AppliesTo() []engine.Surface        { return nil }

func (ButtonAccessibleName) Evaluate(node *uitree.Node, ctx *engine.RuleContext) iter.Seq[findings.Finding] {
	isButton := isAnyType(node, "button", "iconbutton", "btn") ||
		strings.EqualFold(node.Role, "button")
	if !isButton || accessibleName(node) != "" {
		return engine.None()
	}
	return engine.Emit(findings.Finding{
		IssueType:    "missing-accessible-name",
		Message:      fmt.Sprintf("button %q has no accessible name", node.Label()),
		Rationale:    "screen readers announce unnamed buttons as just 'button', leaving users without any clue what the control does",
		SuggestedFix: "set the button's text, name, or accessible label property",
		References:   []string{"WCAG22:4.1.2", "WCAG22:2.4.6"},
	})
}

// ImageAltText flags images without a text alternative.
type ImageAltText struct{}

func (ImageAltText) ID() string { return "ACC002" }
func (ImageAltText) Description() string {
	return "Images must provide a text alternative"
}
func (ImageAltText) DefaultSeverity() findings.Severity { return findings.SeverityHigh }
func (ImageAltText) AppliesTo() []engine.Surface        { return nil }

func (ImageAltText) Evaluate(node *uitree.Node, ctx *engine.RuleContext) iter.Seq[findings.Finding] {
	if !isAnyType(node, "image", "img", "picture", "icon") &&
		!strings.EqualFold(node.Role, "img") {
		return engine.None()
	}
	// An explicitly empty alt marks decorative images; only fully
	// absent alternatives are violations.
	if _, ok := node.Properties.GetString("alt"); ok {
		return engine.None()
	}
	if accessibleName(node) != "" {
		return engine.None()
	}
	return engine.Emit(findings.Finding{
		IssueType:    "missing-alt-text",
		Message:      fmt.Sprintf("image %q has no text alternative", node.Label()),
		Rationale:    "non-text content needs a text alternative so it can be rendered by screen readers and braille displays",
		SuggestedFix: "add an alt text or accessible label; use an empty alt for purely decorative images",
		References:   []string{"WCAG22:1.1.1"},
	})
}

// DuplicateSiblingName flags controls whose visible name collides with
// a sibling's, which makes spoken navigation ambiguous.
type DuplicateSiblingName struct{}

func (DuplicateSiblingName) ID() string { return "ACC007" }
func (DuplicateSiblingName) Description() string {
	return "Sibling controls should not share the same name"
}
func (DuplicateSiblingName) DefaultSeverity() findings.Severity { return findings.SeverityLow }
func (DuplicateSiblingName) AppliesTo() []engine.Surface        { return nil }

func (DuplicateSiblingName) Evaluate(node *uitree.Node, ctx *engine.RuleContext) iter.Seq[findings.Finding] {
	if node.Name == "" {
		return engine.None()
	}
	for _, sib := range ctx.Siblings {
		if strings.EqualFold(sib.Name, node.Name) {
			return engine.Emit(findings.Finding{
				Tag:          "duplicate-name",
				IssueType:    "ambiguous-name",
				Message:      fmt.Sprintf("control %q shares its name with sibling %q", node.ID, sib.ID),
				Rationale:    "identically named controls in the same container cannot be told apart when navigating by name",
				SuggestedFix: "give each sibling control a distinct, descriptive name",
				References:   []string{"WCAG22:2.4.6"},
			})
		}
	}
	return engine.None()
}
