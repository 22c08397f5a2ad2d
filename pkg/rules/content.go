package rules

import (
	"fmt"
	"iter"

	"github.com/a11yscan/a11yscan/pkg/engine"
	"github.com/a11yscan/a11yscan/pkg/findings"
	"github.com/a11yscan/a11yscan/pkg/uitree"
)

// TextSizeMinimum flags canvas text rendered below a readable size.
type TextSizeMinimum struct{}

func (TextSizeMinimum) ID() string { return "ACC006" }
func (TextSizeMinimum) Description() string {
	return "Text should not be rendered below the minimum readable size"
}
func (TextSizeMinimum) DefaultSeverity() findings.Severity { return findings.SeverityLow }
func (TextSizeMinimum) AppliesTo() []engine.Surface {
	return []engine.Surface{engine.SurfaceCanvasApp}
}

// minReadableSize is in canvas font units (points).
const minReadableSize = 9

func (TextSizeMinimum) Evaluate(node *uitree.Node, ctx *engine.RuleContext) iter.Seq[findings.Finding] {
	size, ok := node.Properties.GetNumber("Size")
	if !ok || size >= minReadableSize {
		return engine.None()
	}
	return engine.Emit(findings.Finding{
		IssueType:    "text-too-small",
		Message:      fmt.Sprintf("control %q renders text at size %g", node.Label(), size),
		Rationale:    "text below the minimum size is unreadable for many low-vision users even after zooming",
		SuggestedFix: fmt.Sprintf("increase the font size to at least %d", minReadableSize),
		References:   []string{"WCAG22:1.4.4"},
	})
}

// DocumentLanguage flags DOM snapshots whose root html element does
// not declare a language.
type DocumentLanguage struct{}

func (DocumentLanguage) ID() string { return "ACC008" }
func (DocumentLanguage) Description() string {
	return "The document must declare its language"
}
func (DocumentLanguage) DefaultSeverity() findings.Severity { return findings.SeverityHigh }
func (DocumentLanguage) AppliesTo() []engine.Surface {
	return []engine.Surface{engine.SurfaceDomSnapshot}
}

func (DocumentLanguage) Evaluate(node *uitree.Node, ctx *engine.RuleContext) iter.Seq[findings.Finding] {
	if !node.IsType("html") {
		return engine.None()
	}
	if lang, ok := node.Properties.GetString("lang"); ok && lang != "" {
		return engine.None()
	}
	return engine.Emit(findings.Finding{
		IssueType:    "missing-document-language",
		Message:      "the document does not declare a language",
		Rationale:    "screen readers pick pronunciation rules from the declared document language",
		SuggestedFix: "set the lang attribute on the html element",
		References:   []string{"WCAG22:3.1.1"},
	})
}

// AutoplayingMedia flags audio or video controls configured to start
// playing on their own.
type AutoplayingMedia struct{}

func (AutoplayingMedia) ID() string { return "ACC010" }
func (AutoplayingMedia) Description() string {
	return "Media must not start playing automatically"
}
func (AutoplayingMedia) DefaultSeverity() findings.Severity { return findings.SeverityMedium }
func (AutoplayingMedia) AppliesTo() []engine.Surface        { return nil }

func (AutoplayingMedia) Evaluate(node *uitree.Node, ctx *engine.RuleContext) iter.Seq[findings.Finding] {
	if !isAnyType(node, "audio", "video", "media") {
		return engine.None()
	}
	autoplay := false
	if v, ok := node.Properties.GetBool("AutoStart"); ok && v {
		autoplay = true
	}
	if node.Properties.Has("autoplay") {
		// In HTML the bare attribute means on, whatever its value.
		autoplay = true
	}
	if !autoplay {
		return engine.None()
	}
	return engine.Emit(findings.Finding{
		IssueType:    "autoplaying-media",
		Message:      fmt.Sprintf("media control %q starts playing automatically", node.Label()),
		Rationale:    "auto-playing audio interferes with screen reader output and cannot be anticipated by the user",
		SuggestedFix: "start media only from an explicit user action, or provide an immediate pause control",
		References:   []string{"WCAG22:1.4.2"},
	})
}
