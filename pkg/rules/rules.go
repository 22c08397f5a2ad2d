// Package rules ships the built-in accessibility rule catalog. Every
// rule is a stateless leaf implementation of engine.Rule; the engine
// treats them as black boxes.
package rules

import (
	"github.com/a11yscan/a11yscan/pkg/engine"
	"github.com/a11yscan/a11yscan/pkg/uitree"
)

// BuiltIn returns a fresh slice of every built-in rule, suitable for
// registering into an engine.Registry.
func BuiltIn() []engine.Rule {
	return []engine.Rule{
		ButtonAccessibleName{},
		ImageAltText{},
		PositiveTabIndex{},
		InputLabel{},
		FocusableHidden{},
		TextSizeMinimum{},
		DuplicateSiblingName{},
		DocumentLanguage{},
		FormFieldLabel{},
		AutoplayingMedia{},
	}
}

// accessibleName resolves the human-facing name assistive technology
// would announce for a node: explicit name, visible text, or one of
// the labelling properties.
func accessibleName(n *uitree.Node) string {
	if n.Name != "" {
		return n.Name
	}
	if n.Text != "" {
		return n.Text
	}
	for _, prop := range []string{"AccessibleLabel", "aria-label", "alt", "title", "Tooltip"} {
		if v, ok := n.Properties.GetString(prop); ok && v != "" {
			return v
		}
	}
	return ""
}

// isAnyType reports whether the node's kind matches one of the given
// kinds, ignoring case.
func isAnyType(n *uitree.Node, kinds ...string) bool {
	for _, k := range kinds {
		if n.IsType(k) {
			return true
		}
	}
	return false
}
