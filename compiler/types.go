package compiler

// component holds everything extracted from one source document. It is
// built fresh per Compile call and discarded once its class definition
// has been written.
type component struct {
	name     string
	props    map[string]string
	template []Node // direct children of the <template> wrapper
	style    string // concatenated, preprocessed stylesheet text
	scripts  []scriptBlock
}

// scriptRole classifies a script element by its declared event attribute.
type scriptRole int

const (
	roleConstructor scriptRole = iota
	roleConnected
	roleDisconnected
	roleAttr
	roleGetter
	roleSetter
)

// scriptBlock is one classified script element. The body is opaque text
// and reaches the generated class verbatim; it is never parsed or
// validated as JS.
type scriptBlock struct {
	role scriptRole
	attr string // observed attribute name, roleAttr only
	name string // accessor name, roleGetter and roleSetter only
	body string
}
