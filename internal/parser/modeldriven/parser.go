// Package modeldriven parses model-driven form XML into UI trees.
package modeldriven

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/a11yscan/a11yscan/pkg/uitree"
)

type formXML struct {
	XMLName xml.Name `xml:"form"`
	Name    string   `xml:"name,attr"`
	Entity  string   `xml:"entity,attr"`
	Tabs    []tabXML `xml:"tab"`
}

type tabXML struct {
	ID       string       `xml:"id,attr"`
	Name     string       `xml:"name,attr"`
	Sections []sectionXML `xml:"section"`
}

type sectionXML struct {
	ID       string       `xml:"id,attr"`
	Name     string       `xml:"name,attr"`
	Controls []controlXML `xml:"control"`
}

type controlXML struct {
	ID            string `xml:"id,attr"`
	ClassID       string `xml:"classid,attr"`
	Label         string `xml:"label,attr"`
	LabelHidden   string `xml:"labelhidden,attr"`
	DataFieldName string `xml:"datafieldname,attr"`
	Visible       string `xml:"visible,attr"`
	Disabled      string `xml:"disabled,attr"`
	TabIndex      string `xml:"tabindex,attr"`
}

// Parse converts form XML into a UI tree rooted at a "form" node.
// Entity, tab, and section names are attached as Meta at the level
// that declares them; the engine inherits them downward.
func Parse(data []byte) (*uitree.Node, error) {
	var form formXML
	if err := xml.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("parsing form xml: %w", err)
	}

	root := &uitree.Node{
		ID:         fallback(form.Name, "form"),
		Type:       "form",
		Name:       form.Name,
		Properties: uitree.NewPropertyBag(nil),
		Meta: &uitree.Meta{
			ScreenName: form.Name,
			EntityName: form.Entity,
		},
	}

	for i, t := range form.Tabs {
		tab := &uitree.Node{
			ID:         fallback(t.ID, fmt.Sprintf("tab-%d", i+1)),
			Type:       "tab",
			Name:       t.Name,
			Properties: uitree.NewPropertyBag(nil),
			Meta:       &uitree.Meta{TabName: t.Name},
		}
		for j, s := range t.Sections {
			section := &uitree.Node{
				ID:         fallback(s.ID, fmt.Sprintf("%s.section-%d", tab.ID, j+1)),
				Type:       "section",
				Name:       s.Name,
				Properties: uitree.NewPropertyBag(nil),
				Meta:       &uitree.Meta{SectionName: s.Name},
			}
			for k, c := range s.Controls {
				section.Children = append(section.Children, convertControl(c, section.ID, k))
			}
			tab.Children = append(tab.Children, section)
		}
		root.Children = append(root.Children, tab)
	}
	return root, nil
}

// ParseFile reads and parses a form XML file.
func ParseFile(path string) (*uitree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func convertControl(c controlXML, parentID string, idx int) *uitree.Node {
	props := map[string]interface{}{}
	setIfPresent(props, "classid", c.ClassID)
	setIfPresent(props, "label", c.Label)
	setIfPresent(props, "labelhidden", c.LabelHidden)
	setIfPresent(props, "datafieldname", c.DataFieldName)
	setIfPresent(props, "visible", c.Visible)
	setIfPresent(props, "disabled", c.Disabled)
	setIfPresent(props, "tabindex", c.TabIndex)

	return &uitree.Node{
		ID:         fallback(c.ID, fmt.Sprintf("%s.control-%d", parentID, idx+1)),
		Type:       "control",
		Name:       c.Label,
		Properties: uitree.NewPropertyBag(props),
	}
}

func setIfPresent(props map[string]interface{}, name, value string) {
	if value != "" {
		props[name] = value
	}
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
