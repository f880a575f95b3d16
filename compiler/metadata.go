package compiler

import (
	"regexp"
	"strings"
)

// propertyLine matches one metadata comment. The first word is the
// property name; the rest of the line, up to the comment closer, is the
// value.
var propertyLine = regexp.MustCompile(`^<!-- (\w+) (.*) -->$`)

// parseProperties extracts key/value properties from the comment block at
// the top of a component file. Only lines before the first blank line are
// considered. Lines that do not match the pattern are skipped silently,
// and a repeated name overwrites the earlier value.
func parseProperties(src string) map[string]string {
	props := make(map[string]string)

	head, _, _ := strings.Cut(src, "\n\n")
	for _, line := range strings.Split(head, "\n") {
		if m := propertyLine.FindStringSubmatch(line); m != nil {
			props[m[1]] = m[2]
		}
	}

	return props
}
