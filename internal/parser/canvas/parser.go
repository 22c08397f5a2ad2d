// Package canvas parses canvas-app YAML descriptions into UI trees.
package canvas

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/a11yscan/a11yscan/pkg/uitree"
)

// appDoc mirrors the canvas YAML layout.
type appDoc struct {
	App     string      `yaml:"app"`
	Screens []screenDoc `yaml:"screens"`
}

type screenDoc struct {
	Name     string       `yaml:"name"`
	Controls []controlDoc `yaml:"controls"`
}

type controlDoc struct {
	ID         string                 `yaml:"id"`
	Name       string                 `yaml:"name"`
	Type       string                 `yaml:"type"`
	Text       string                 `yaml:"text"`
	Role       string                 `yaml:"role"`
	Properties map[string]interface{} `yaml:"properties"`
	Children   []controlDoc           `yaml:"children"`
}

// Parse converts canvas-app YAML into a UI tree rooted at an "app"
// node. Screen nodes carry Meta.ScreenName; control IDs default to a
// dotted name path when not declared.
func Parse(data []byte) (*uitree.Node, error) {
	var doc appDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing canvas yaml: %w", err)
	}

	root := &uitree.Node{
		ID:         doc.App,
		Type:       "app",
		Name:       doc.App,
		Properties: uitree.NewPropertyBag(nil),
	}
	if root.ID == "" {
		root.ID = "app"
	}

	for i, s := range doc.Screens {
		screen := &uitree.Node{
			ID:         fallback(s.Name, fmt.Sprintf("screen-%d", i+1)),
			Type:       "screen",
			Name:       s.Name,
			Properties: uitree.NewPropertyBag(nil),
			Meta:       &uitree.Meta{ScreenName: s.Name},
		}
		for j, c := range s.Controls {
			screen.Children = append(screen.Children, convertControl(c, screen.ID, j))
		}
		root.Children = append(root.Children, screen)
	}
	return root, nil
}

// ParseFile reads and parses a canvas YAML file.
func ParseFile(path string) (*uitree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func convertControl(c controlDoc, parentID string, idx int) *uitree.Node {
	id := c.ID
	if id == "" {
		id = fallback(c.Name, fmt.Sprintf("control-%d", idx+1))
		id = parentID + "." + id
	}
	node := &uitree.Node{
		ID:         id,
		Type:       c.Type,
		Name:       c.Name,
		Text:       c.Text,
		Role:       c.Role,
		Properties: uitree.NewPropertyBag(c.Properties),
	}
	for j, child := range c.Children {
		node.Children = append(node.Children, convertControl(child, id, j))
	}
	return node
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
