package compiler

// NodeType identifies the kind of a template node.
type NodeType int

const (
	NodeElement NodeType = iota
	NodeText
)

// Node is a node in the compiled template tree. The variant is closed:
// only elements and text survive the transform from parsed markup.
type Node interface {
	Type() NodeType
}

// Element is a markup element with its attributes and children in
// declaration order.
type Element struct {
	Tag      string
	Attrs    AttrList
	Children []Node
}

func (e Element) Type() NodeType { return NodeElement }

// Text is a literal text node. Whitespace is preserved as written.
type Text struct {
	Content string
}

func (t Text) Type() NodeType { return NodeText }

// Attr is a single key/value attribute.
type Attr struct {
	Key string
	Val string
}

// AttrList is an ordered attribute collection. Iteration follows
// declaration order. Set keeps the first position of a key and overwrites
// its value, so duplicate keys are last-wins.
type AttrList []Attr

func (l AttrList) Set(key, val string) AttrList {
	for i := range l {
		if l[i].Key == key {
			l[i].Val = val
			return l
		}
	}
	return append(l, Attr{Key: key, Val: val})
}

func (l AttrList) Get(key string) (string, bool) {
	for _, a := range l {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
