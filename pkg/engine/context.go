package engine

import "github.com/a11yscan/a11yscan/pkg/uitree"

// RuleContext is the read-only, position-derived information a rule
// may consult beyond the node itself. One instance is built per
// node-visit, consumed synchronously by the rules applicable to that
// node, then discarded — sibling and ancestry context differs per
// position, so contexts are never cached or shared across visits.
type RuleContext struct {
	// Surface and AppName are constant across one scan.
	Surface Surface
	AppName string

	// Screen is the nearest ancestor page/screen-level container, nil
	// above the first screen. A screen node's own context does not
	// point at itself.
	Screen *uitree.Node

	Parent *uitree.Node
	// Siblings holds the parent's other children in original order,
	// excluding the node itself. Empty at the root.
	Siblings []*uitree.Node

	// Nearest-enclosing inherited metadata: a node's own Meta
	// overrides, otherwise the closest ancestor's value carries down.
	ScreenName  string
	EntityName  string
	TabName     string
	SectionName string

	// Depth is the distance from the root (root = 0). Diagnostic only.
	Depth int
}

// inherited is the descent accumulator for ancestor-derived context.
// It is merged once per descent step, never rebuilt by re-walking
// ancestors (which would be quadratic in tree depth).
type inherited struct {
	screen      *uitree.Node
	screenName  string
	entityName  string
	tabName     string
	sectionName string
}

// merge applies the node's own Meta on top of the inherited values.
func (in inherited) merge(n *uitree.Node) inherited {
	if n.Meta == nil {
		return in
	}
	if n.Meta.ScreenName != "" {
		in.screenName = n.Meta.ScreenName
	}
	if n.Meta.EntityName != "" {
		in.entityName = n.Meta.EntityName
	}
	if n.Meta.TabName != "" {
		in.tabName = n.Meta.TabName
	}
	if n.Meta.SectionName != "" {
		in.sectionName = n.Meta.SectionName
	}
	return in
}

// buildContext assembles the context for one node-visit. Siblings are
// computed by excluding the node from the parent's children at call
// time; trees are shallow-branching so the O(children) cost per node
// is acceptable. Context construction never fails: missing ancestry
// simply leaves fields at their zero values.
func buildContext(node, parent *uitree.Node, surface Surface, appName string, in inherited, depth int) *RuleContext {
	ctx := &RuleContext{
		Surface:     surface,
		AppName:     appName,
		Screen:      in.screen,
		Parent:      parent,
		ScreenName:  in.screenName,
		EntityName:  in.entityName,
		TabName:     in.tabName,
		SectionName: in.sectionName,
		Depth:       depth,
	}
	if parent != nil {
		for _, c := range parent.Children {
			if c != node {
				ctx.Siblings = append(ctx.Siblings, c)
			}
		}
	}
	return ctx
}

// descend produces the accumulator the node's children inherit. own
// is the node's context accumulator (ancestors merged with the node's
// Meta); a screen node additionally records itself as the enclosing
// screen, naming it by its label unless its Meta named it explicitly.
func descend(own inherited, node *uitree.Node) inherited {
	if node.IsScreen() {
		own.screen = node
		if node.Meta == nil || node.Meta.ScreenName == "" {
			own.screenName = node.Label()
		}
	}
	return own
}
