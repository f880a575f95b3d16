package compiler

import (
	"sort"
	"strconv"
	"strings"
)

// generateClass renders the customElements.define statement for one
// component. Sections follow a fixed order; a section whose trigger is
// absent is omitted entirely, never emitted empty.
func generateClass(comp *component) string {
	var sb strings.Builder

	sb.WriteString("customElements.define('")
	sb.WriteString(comp.name)
	sb.WriteString("',class extends HTMLElement{")

	writeConstructor(&sb, comp)

	observed := observedAttributes(comp.scripts)
	if len(observed) > 0 {
		quoted := make([]string, len(observed))
		for i, name := range observed {
			quoted[i] = strconv.Quote(name)
		}
		sb.WriteString("static get observedAttributes(){return [")
		sb.WriteString(strings.Join(quoted, ", "))
		sb.WriteString("];}")
	}

	writeLifecycle(&sb, comp.scripts, roleConnected, "connectedCallback")
	writeLifecycle(&sb, comp.scripts, roleDisconnected, "disconnectedCallback")

	for _, s := range comp.scripts {
		if s.role == roleGetter {
			sb.WriteString("get ")
			sb.WriteString(s.name)
			sb.WriteString("(){")
			sb.WriteString(s.body)
			sb.WriteString("}")
		}
	}
	for _, s := range comp.scripts {
		if s.role == roleSetter {
			sb.WriteString("set ")
			sb.WriteString(s.name)
			sb.WriteString("(value){")
			sb.WriteString(s.body)
			sb.WriteString("}")
		}
	}

	if len(observed) > 0 {
		sb.WriteString("attributeChangedCallback(__attrName, oldValue, value){")
		for _, s := range comp.scripts {
			if s.role != roleAttr {
				continue
			}
			// Independent branches, not else-if: duplicate attr blocks
			// sharing a name all fire on a change.
			sb.WriteString("if (__attrName === '")
			sb.WriteString(jsEscape(s.attr))
			sb.WriteString("'){")
			sb.WriteString(s.body)
			sb.WriteString("}")
		}
		sb.WriteString("}")
	}

	sb.WriteString("});")
	return sb.String()
}

func writeConstructor(sb *strings.Builder, comp *component) {
	sb.WriteString("constructor(){")
	sb.WriteString("super();")
	sb.WriteString("this.shadow = this.attachShadow({'mode':'open'});")

	if comp.style != "" {
		sb.WriteString("this.shadow.append($e('style', {}, ['")
		sb.WriteString(jsEscape(comp.style))
		sb.WriteString("']));")
	}

	for _, node := range comp.template {
		sb.WriteString("this.shadow.append(")
		writeNode(sb, node)
		sb.WriteString(");")
	}

	for _, s := range comp.scripts {
		if s.role == roleConstructor {
			sb.WriteString(s.body)
		}
	}

	sb.WriteString("}")
}

// writeLifecycle emits one lifecycle hook containing every body of the
// given role, concatenated in source order. Nothing is written when no
// block carries the role.
func writeLifecycle(sb *strings.Builder, blocks []scriptBlock, role scriptRole, method string) {
	found := false
	for _, s := range blocks {
		if s.role == role {
			found = true
			break
		}
	}
	if !found {
		return
	}

	sb.WriteString(method)
	sb.WriteString("(){")
	for _, s := range blocks {
		if s.role == role {
			sb.WriteString(s.body)
		}
	}
	sb.WriteString("}")
}

// observedAttributes returns the distinct attr-block attribute names,
// sorted ascending for deterministic output.
func observedAttributes(blocks []scriptBlock) []string {
	seen := make(map[string]bool)
	var names []string
	for _, s := range blocks {
		if s.role == roleAttr && !seen[s.attr] {
			seen[s.attr] = true
			names = append(names, s.attr)
		}
	}
	sort.Strings(names)
	return names
}
