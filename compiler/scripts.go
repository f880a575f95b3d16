package compiler

import (
	"fmt"

	"golang.org/x/net/html"
)

// classifyScripts buckets script elements by their declared event
// attribute, preserving source order. Script elements without an event
// attribute are ordinary scripts and take no part in code generation; a
// non-empty unrecognized role is rejected rather than dropped.
func classifyScripts(scripts []*html.Node) ([]scriptBlock, error) {
	var blocks []scriptBlock

	for _, s := range scripts {
		event, ok := attrValue(s, "event")
		if !ok {
			continue
		}

		block := scriptBlock{body: innerText(s)}

		switch event {
		case "constructor":
			block.role = roleConstructor
		case "connected":
			block.role = roleConnected
		case "disconnected":
			block.role = roleDisconnected
		case "attr":
			name, ok := attrValue(s, "attr")
			if !ok || name == "" {
				return nil, fmt.Errorf(`%w: <script event="attr"> needs an attr attribute`, ErrMissingScriptName)
			}
			block.role = roleAttr
			block.attr = name
		case "getter", "setter":
			name, ok := attrValue(s, "name")
			if !ok || name == "" {
				return nil, fmt.Errorf("%w: <script event=%q> needs a name attribute", ErrMissingScriptName, event)
			}
			if event == "getter" {
				block.role = roleGetter
			} else {
				block.role = roleSetter
			}
			block.name = name
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownRole, event)
		}

		blocks = append(blocks, block)
	}

	return blocks, nil
}
