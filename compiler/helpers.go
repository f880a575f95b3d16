package compiler

import (
	"strings"

	"golang.org/x/net/html"
)

// jsEscape makes text safe to embed inside a single-quoted JS string
// literal. Single left-to-right pass; each output character is decided
// independently, so already-emitted escapes are never re-scanned.
func jsEscape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\'':
			sb.WriteString(`\'`)
		case '\n':
			sb.WriteString(`\n`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// attrValue returns the value of the named attribute on n and whether it
// was present.
func attrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// innerText concatenates the direct text children of n. Script and style
// elements keep their contents as raw text children, so this recovers
// their bodies verbatim.
func innerText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}
