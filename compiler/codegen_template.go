package compiler

import "strings"

// writeNode emits the construction expression for one template node by
// depth-first descent. Text nodes become quoted, escaped literals;
// elements become $e calls carrying an attribute object and a child list,
// both in declaration order.
func writeNode(sb *strings.Builder, node Node) {
	switch n := node.(type) {
	case Text:
		sb.WriteString(`"`)
		sb.WriteString(jsEscape(n.Content))
		sb.WriteString(`"`)
	case Element:
		sb.WriteString("$e('")
		sb.WriteString(jsEscape(n.Tag))
		sb.WriteString("',{")
		for _, a := range n.Attrs {
			key := a.Key
			if key == "class" {
				// The host object exposes class as classList.
				key = "classList"
			}
			sb.WriteString("'")
			sb.WriteString(jsEscape(key))
			sb.WriteString("':'")
			sb.WriteString(jsEscape(a.Val))
			sb.WriteString("',")
		}
		sb.WriteString("},[")
		for _, c := range n.Children {
			writeNode(sb, c)
			sb.WriteString(",")
		}
		sb.WriteString("])")
	}
}
