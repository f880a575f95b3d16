package compiler

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// StyleCompiler turns concatenated stylesheet text into the CSS embedded
// in a generated class. The strategy is selected once at startup and
// injected into the Compiler; it is never re-probed per document.
type StyleCompiler interface {
	CompileStyle(style string) (string, error)
}

// Sassc compiles stylesheets through the external sassc executable. A
// failing or unreachable sassc fails the document's compilation.
type Sassc struct{}

func (Sassc) CompileStyle(style string) (string, error) {
	cmd := exec.Command("sassc", "-s", "-t", "compressed")
	cmd.Stdin = strings.NewReader(style)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("sassc: %w", err)
	}
	return strings.TrimSpace(out.String()), nil
}

// Passthrough returns stylesheet text unmodified apart from surrounding
// whitespace. It is the fallback when sassc is not installed.
type Passthrough struct{}

func (Passthrough) CompileStyle(style string) (string, error) {
	return strings.TrimSpace(style), nil
}

// DetectStyleCompiler probes for sassc and returns the strategy to inject
// into New. An absent sassc is not an error; the passthrough strategy
// takes over silently.
func DetectStyleCompiler() StyleCompiler {
	if err := exec.Command("sassc", "-h").Run(); err != nil {
		return Passthrough{}
	}
	return Sassc{}
}
