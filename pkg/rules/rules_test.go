package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a11yscan/a11yscan/pkg/engine"
	"github.com/a11yscan/a11yscan/pkg/findings"
	"github.com/a11yscan/a11yscan/pkg/uitree"
)

func scan(t *testing.T, root *uitree.Node, surface engine.Surface, ruleSet ...engine.Rule) *engine.ScanResult {
	t.Helper()
	result, err := engine.RunScan(root, surface, "TestApp", ruleSet)
	require.NoError(t, err)
	require.Empty(t, result.Failures)
	return result
}

func TestBuiltInIDsAreUnique(t *testing.T) {
	registry := engine.NewRegistry()
	assert.NoError(t, registry.Register(BuiltIn()...))
}

func TestButtonAccessibleName(t *testing.T) {
	button := uitree.New("B1", "Button", nil)
	tree := uitree.New("S1", "Screen", nil, button)

	result := scan(t, tree, engine.SurfaceCanvasApp, ButtonAccessibleName{})
	require.Len(t, result.Findings, 1)
	f := result.Findings[0]
	assert.Equal(t, "B1", f.ControlID)
	assert.Equal(t, "S1", f.Screen)
	assert.Equal(t, findings.SeverityHigh, f.Severity)
	assert.Contains(t, f.References, "WCAG22:4.1.2")
}

func TestButtonAccessibleNameSatisfied(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(*uitree.Node)
	}{
		{name: "name set", setup: func(n *uitree.Node) { n.Name = "Submit" }},
		{name: "text set", setup: func(n *uitree.Node) { n.Text = "Submit" }},
		{name: "accessible label", setup: func(n *uitree.Node) {
			n.Properties = uitree.NewPropertyBag(map[string]interface{}{"AccessibleLabel": "Submit"})
		}},
		{name: "aria-label", setup: func(n *uitree.Node) {
			n.Properties = uitree.NewPropertyBag(map[string]interface{}{"aria-label": "Submit"})
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			button := uitree.New("B1", "Button", nil)
			tc.setup(button)
			tree := uitree.New("S1", "Screen", nil, button)
			result := scan(t, tree, engine.SurfaceCanvasApp, ButtonAccessibleName{})
			assert.Empty(t, result.Findings)
		})
	}
}

func TestButtonAccessibleNameByRole(t *testing.T) {
	div := uitree.New("D1", "div", nil)
	div.Role = "button"
	tree := uitree.New("body-1", "body", nil, div)

	result := scan(t, tree, engine.SurfaceDomSnapshot, ButtonAccessibleName{})
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "D1", result.Findings[0].ControlID)
}

func TestImageAltText(t *testing.T) {
	missing := uitree.New("I1", "Image", nil)
	decorative := uitree.New("I2", "img", map[string]interface{}{"alt": ""})
	labelled := uitree.New("I3", "img", map[string]interface{}{"alt": "Company logo"})
	tree := uitree.New("S1", "Screen", nil, missing, decorative, labelled)

	result := scan(t, tree, engine.SurfaceCanvasApp, ImageAltText{})
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "I1", result.Findings[0].ControlID)
	assert.Contains(t, result.Findings[0].References, "WCAG22:1.1.1")
}

func TestPositiveTabIndex(t *testing.T) {
	bad := uitree.New("C1", "Button", map[string]interface{}{"TabIndex": 3})
	bad.Name = "OK"
	fine := uitree.New("C2", "Button", map[string]interface{}{"TabIndex": 0})
	fine.Name = "Cancel"
	unset := uitree.New("C3", "Button", nil)
	unset.Name = "Back"
	tree := uitree.New("S1", "Screen", nil, bad, fine, unset)

	result := scan(t, tree, engine.SurfaceCanvasApp, PositiveTabIndex{})
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "C1", result.Findings[0].ControlID)
}

func TestInputLabel(t *testing.T) {
	unlabelled := uitree.New("T1", "TextInput", nil)
	labelled := uitree.New("T2", "TextInput", map[string]interface{}{"AccessibleLabel": "First name"})
	tree := uitree.New("S1", "Screen", nil, unlabelled, labelled)

	result := scan(t, tree, engine.SurfaceCanvasApp, InputLabel{})
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "T1", result.Findings[0].ControlID)
}

func TestInputLabelledBySibling(t *testing.T) {
	input := uitree.New("email", "input", nil)
	label := uitree.New("L1", "label", map[string]interface{}{"for": "email"})
	tree := uitree.New("body-1", "body", nil, label, input)

	result := scan(t, tree, engine.SurfaceDomSnapshot, InputLabel{})
	assert.Empty(t, result.Findings)
}

func TestFocusableHidden(t *testing.T) {
	hidden := uitree.New("H1", "Button", map[string]interface{}{"Visible": false, "TabIndex": 0})
	hidden.Name = "Ghost"
	hiddenUnfocusable := uitree.New("H2", "Button", map[string]interface{}{"Visible": false, "TabIndex": -1})
	hiddenUnfocusable.Name = "Gone"
	visible := uitree.New("H3", "Button", map[string]interface{}{"Visible": true, "TabIndex": 0})
	visible.Name = "Here"
	tree := uitree.New("S1", "Screen", nil, hidden, hiddenUnfocusable, visible)

	result := scan(t, tree, engine.SurfaceCanvasApp, FocusableHidden{})
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "H1", result.Findings[0].ControlID)
}

func TestTextSizeMinimum(t *testing.T) {
	tiny := uitree.New("L1", "Label", map[string]interface{}{"Size": 7})
	tiny.Name = "Fine print"
	readable := uitree.New("L2", "Label", map[string]interface{}{"Size": 12})
	readable.Name = "Heading"
	formula := uitree.New("L3", "Label", map[string]interface{}{"Size": "Parent.Size - 2"})
	formula.Name = "Derived"
	tree := uitree.New("S1", "Screen", nil, tiny, readable, formula)

	result := scan(t, tree, engine.SurfaceCanvasApp, TextSizeMinimum{})
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "L1", result.Findings[0].ControlID)
}

func TestTextSizeMinimumSurfaceBound(t *testing.T) {
	tiny := uitree.New("L1", "Label", map[string]interface{}{"Size": 7})
	tree := uitree.New("S1", "Screen", nil, tiny)

	result := scan(t, tree, engine.SurfaceDomSnapshot, TextSizeMinimum{})
	assert.Empty(t, result.Findings)
}

func TestDuplicateSiblingName(t *testing.T) {
	first := uitree.New("B1", "Button", nil)
	first.Name = "Submit"
	second := uitree.New("B2", "Button", nil)
	second.Name = "submit"
	third := uitree.New("B3", "Button", nil)
	third.Name = "Cancel"
	tree := uitree.New("S1", "Screen", nil, first, second, third)

	result := scan(t, tree, engine.SurfaceCanvasApp, DuplicateSiblingName{})
	require.Len(t, result.Findings, 2)
	assert.Equal(t, "B1", result.Findings[0].ControlID)
	assert.Equal(t, "B2", result.Findings[1].ControlID)
}

func TestDocumentLanguage(t *testing.T) {
	noLang := uitree.New("html-1", "html", nil, uitree.New("body-1", "body", nil))
	result := scan(t, noLang, engine.SurfaceDomSnapshot, DocumentLanguage{})
	require.Len(t, result.Findings, 1)
	assert.Contains(t, result.Findings[0].References, "WCAG22:3.1.1")

	withLang := uitree.New("html-1", "html", map[string]interface{}{"lang": "en"})
	result = scan(t, withLang, engine.SurfaceDomSnapshot, DocumentLanguage{})
	assert.Empty(t, result.Findings)
}

func TestFormFieldLabel(t *testing.T) {
	blank := uitree.New("F1", "control", nil)
	hiddenLabel := uitree.New("F2", "control", map[string]interface{}{"label": "Phone", "labelhidden": "true"})
	hiddenLabel.Name = "Phone"
	labelled := uitree.New("F3", "control", map[string]interface{}{"label": "Email"})
	labelled.Name = "Email"
	section := uitree.New("SEC1", "section", nil, blank, hiddenLabel, labelled)
	form := uitree.New("FORM1", "form", nil, section)
	form.Meta = &uitree.Meta{EntityName: "account"}

	result := scan(t, form, engine.SurfaceModelDrivenApp, FormFieldLabel{})
	require.Len(t, result.Findings, 2)
	assert.Equal(t, "F1", result.Findings[0].ControlID)
	assert.Equal(t, "blank-label", result.Findings[0].Tag)
	assert.Equal(t, "F2", result.Findings[1].ControlID)
	assert.Equal(t, "hidden-label", result.Findings[1].Tag)

	// Entity metadata flows from the form node into the findings.
	assert.Equal(t, "account", result.Findings[0].EntityName)
}

func TestAutoplayingMedia(t *testing.T) {
	auto := uitree.New("V1", "Video", map[string]interface{}{"AutoStart": true})
	auto.Name = "Intro"
	manual := uitree.New("V2", "Video", map[string]interface{}{"AutoStart": false})
	manual.Name = "Tutorial"
	htmlAuto := uitree.New("V3", "video", map[string]interface{}{"autoplay": ""})
	tree := uitree.New("S1", "Screen", nil, auto, manual, htmlAuto)

	result := scan(t, tree, engine.SurfaceCanvasApp, AutoplayingMedia{})
	require.Len(t, result.Findings, 2)
	assert.Equal(t, "V1", result.Findings[0].ControlID)
	assert.Equal(t, "V3", result.Findings[1].ControlID)
}
