// Package domsnap parses HTML snapshots into UI trees.
package domsnap

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/a11yscan/a11yscan/pkg/uitree"
)

// Parse converts an HTML document into a UI tree rooted at the html
// element. Attributes become properties, the tag name becomes the
// node type, the id attribute (or a generated positional id) becomes
// the node ID, and immediate text content becomes Text.
func Parse(data []byte) (*uitree.Node, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	rootElem := findElement(doc, "html")
	if rootElem == nil {
		return nil, fmt.Errorf("document has no html element")
	}

	counter := 0
	return convert(rootElem, &counter), nil
}

// ParseFile reads and parses an HTML snapshot file.
func ParseFile(path string) (*uitree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func convert(elem *html.Node, counter *int) *uitree.Node {
	props := make(map[string]interface{}, len(elem.Attr))
	var id, role, name string
	for _, attr := range elem.Attr {
		props[attr.Key] = attr.Val
		switch strings.ToLower(attr.Key) {
		case "id":
			id = attr.Val
		case "role":
			role = attr.Val
		case "name":
			name = attr.Val
		}
	}

	*counter++
	if id == "" {
		id = fmt.Sprintf("%s-%d", elem.Data, *counter)
	}

	node := &uitree.Node{
		ID:         id,
		Type:       elem.Data,
		Name:       name,
		Role:       role,
		Text:       immediateText(elem),
		Properties: uitree.NewPropertyBag(props),
	}

	for c := elem.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		// Script and style bodies are not UI content.
		if c.Data == "script" || c.Data == "style" {
			continue
		}
		node.Children = append(node.Children, convert(c, counter))
	}
	return node
}

// immediateText joins the element's direct text children, collapsing
// whitespace. Descendant element text is not included: it belongs to
// the nodes that own it.
func immediateText(elem *html.Node) string {
	var parts []string
	for c := elem.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			if t := strings.TrimSpace(c.Data); t != "" {
				parts = append(parts, t)
			}
		}
	}
	return strings.Join(parts, " ")
}
