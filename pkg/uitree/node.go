package uitree

import "strings"

// screenKinds are the control kinds treated as page-level containers
// for screen resolution. Comparison is case-insensitive.
var screenKinds = map[string]bool{
	"screen": true,
	"page":   true,
	"body":   true,
	"form":   true,
}

// Meta carries inherited context attached by the upstream parser at
// the level of the tree that declares it. Children without their own
// Meta inherit the nearest ancestor's values.
type Meta struct {
	ScreenName  string
	EntityName  string
	TabName     string
	SectionName string
}

// Node is one element of a parsed UI description. The tree is an
// ownership tree: children belong to exactly one parent, there are no
// back-references and no cycles. A tree is immutable for the duration
// of a scan; neither the engine nor any rule may mutate it.
type Node struct {
	// ID is unique within one scanned tree.
	ID   string
	Type string

	Name string
	Text string

	// Role is an accessibility role hint, independent of Type.
	Role string

	Properties PropertyBag
	Meta       *Meta

	Children []*Node
}

// New builds a node with a normalized property bag.
func New(id, typ string, props map[string]interface{}, children ...*Node) *Node {
	return &Node{
		ID:         id,
		Type:       typ,
		Properties: NewPropertyBag(props),
		Children:   children,
	}
}

// IsType reports whether the node's kind matches typ, ignoring case.
func (n *Node) IsType(typ string) bool {
	return strings.EqualFold(n.Type, typ)
}

// IsScreen reports whether the node is a page/screen-level container.
func (n *Node) IsScreen() bool {
	return screenKinds[strings.ToLower(n.Type)]
}

// Label returns the best human-facing identifier for the node: Name,
// then ID.
func (n *Node) Label() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

// Walk visits the node and its descendants depth-first, pre-order, in
// child declaration order. It stops early when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})
	return total
}
