package compiler

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// prelude is the runtime element-construction helper every compiled class
// depends on. It is written once per output stream, ahead of the first
// class definition.
//
//go:embed prelude.js
var prelude string

// Compilation error taxonomy. Errors carry per-document context where it
// helps; match with errors.Is.
var (
	ErrMissingTemplate   = errors.New("component has no <template> element")
	ErrMultipleTemplates = errors.New("component has more than one <template> element")
	ErrMissingName       = errors.New(`component metadata is missing the "name" property`)
	ErrUnknownRole       = errors.New("unrecognized script event role")
	ErrMissingScriptName = errors.New("script block is missing required metadata")
)

// Compiler turns single-file component documents into custom element
// definitions on one combined output stream. It is fully synchronous and
// compiles documents strictly in call order.
type Compiler struct {
	w       io.Writer
	styles  StyleCompiler
	started bool
}

// New returns a Compiler writing to w. The style strategy is fixed for
// the Compiler's lifetime; DetectStyleCompiler gives the standard
// sassc-or-passthrough selection.
func New(w io.Writer, styles StyleCompiler) *Compiler {
	return &Compiler{w: w, styles: styles}
}

// EmitRuntime writes the $e helper to the output stream. The first call
// writes it; every later call, including the implicit one inside Compile,
// is a no-op.
func (c *Compiler) EmitRuntime() error {
	if c.started {
		return nil
	}
	c.started = true
	_, err := io.WriteString(c.w, prelude)
	return err
}

// Compile compiles one component document and appends its class
// definition to the output stream, emitting the runtime helper first if
// no earlier call has.
func (c *Compiler) Compile(src string) error {
	comp, err := c.build(src)
	if err != nil {
		return err
	}

	if err := c.EmitRuntime(); err != nil {
		return err
	}

	_, err = io.WriteString(c.w, generateClass(comp))
	return err
}

// build runs the front half of the pipeline: metadata extraction, markup
// parsing, template location, script classification and style
// preprocessing.
func (c *Compiler) build(src string) (*component, error) {
	props := parseProperties(src)

	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	parts := collectParts(root)

	tpl, err := parts.templateRoot()
	if err != nil {
		return nil, err
	}

	name, ok := props["name"]
	if !ok {
		return nil, ErrMissingName
	}

	scripts, err := classifyScripts(parts.scripts)
	if err != nil {
		return nil, err
	}

	var style strings.Builder
	for _, s := range parts.styles {
		style.WriteString(strings.TrimSpace(innerText(s)))
	}
	styleText := style.String()
	if styleText != "" {
		styleText, err = c.styles.CompileStyle(styleText)
		if err != nil {
			return nil, err
		}
	}

	return &component{
		name:     name,
		props:    props,
		template: buildTemplate(tpl),
		style:    styleText,
		scripts:  scripts,
	}, nil
}
