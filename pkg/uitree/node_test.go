package uitree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildTree() *Node {
	return New("root", "app", nil,
		New("S1", "Screen", nil,
			New("B1", "Button", nil),
			New("G1", "Group", nil,
				New("L1", "Label", nil),
			),
		),
		New("S2", "screen", nil),
	)
}

func TestWalkPreOrder(t *testing.T) {
	var visited []string
	buildTree().Walk(func(n *Node) bool {
		visited = append(visited, n.ID)
		return true
	})
	assert.Equal(t, []string{"root", "S1", "B1", "G1", "L1", "S2"}, visited)
}

func TestWalkEarlyStop(t *testing.T) {
	var visited []string
	buildTree().Walk(func(n *Node) bool {
		visited = append(visited, n.ID)
		return n.ID != "G1"
	})
	assert.Equal(t, []string{"root", "S1", "B1", "G1"}, visited)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 6, buildTree().Count())
}

func TestIsScreen(t *testing.T) {
	assert.True(t, New("s", "Screen", nil).IsScreen())
	assert.True(t, New("p", "PAGE", nil).IsScreen())
	assert.True(t, New("f", "form", nil).IsScreen())
	assert.False(t, New("b", "Button", nil).IsScreen())
}

func TestLabel(t *testing.T) {
	named := New("id1", "Button", nil)
	named.Name = "Submit"
	assert.Equal(t, "Submit", named.Label())
	assert.Equal(t, "id2", New("id2", "Button", nil).Label())
}
