package compiler

import (
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// documentParts are the compilation inputs found in one parsed document,
// each slice in document order.
type documentParts struct {
	templates []*html.Node
	styles    []*html.Node
	scripts   []*html.Node
}

// collectParts walks the parsed tree and buckets the template, style and
// script elements. The lenient parser may have relocated them (style and
// script often end up in <head>), so the whole tree is scanned.
func collectParts(root *html.Node) documentParts {
	var parts documentParts

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Template:
				parts.templates = append(parts.templates, n)
			case atom.Style:
				parts.styles = append(parts.styles, n)
			case atom.Script:
				parts.scripts = append(parts.scripts, n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return parts
}

// templateRoot returns the single template element, or the typed error
// when the document has none or several.
func (p documentParts) templateRoot() (*html.Node, error) {
	switch len(p.templates) {
	case 0:
		return nil, ErrMissingTemplate
	case 1:
		return p.templates[0], nil
	default:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleTemplates, len(p.templates))
	}
}

// buildTemplate transforms the direct children of the template element
// into the compiler's node tree. The <template> wrapper itself is not
// re-emitted; its children become the fragment attached to the component.
func buildTemplate(tpl *html.Node) []Node {
	var nodes []Node
	for c := tpl.FirstChild; c != nil; c = c.NextSibling {
		if n, ok := buildNode(c); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// buildNode converts one parsed node. Comments and other non-content
// nodes have no case in the closed variant and are dropped.
func buildNode(n *html.Node) (Node, bool) {
	switch n.Type {
	case html.TextNode:
		return Text{Content: n.Data}, true
	case html.ElementNode:
		el := Element{Tag: n.Data}
		for _, a := range n.Attr {
			el.Attrs = el.Attrs.Set(a.Key, a.Val)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child, ok := buildNode(c); ok {
				el.Children = append(el.Children, child)
			}
		}
		return el, true
	default:
		return nil, false
	}
}
