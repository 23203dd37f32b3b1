package ast

import (
	"fmt"
	"slices"
)

// Location is a codepoint range [Start, End) in the parsed source.
type Location struct {
	Start int `json:"start" yaml:"start" msgpack:"start"`
	End   int `json:"end" yaml:"end" msgpack:"end"`
}

// Meta is attached to every node: where it came from and the comment lines
// that preceded it.
type Meta struct {
	Location Location `json:"location" yaml:"location" msgpack:"location"`
	Comments []string `json:"comments" yaml:"comments" msgpack:"comments"`
}

func (m Meta) clone() Meta {
	m.Comments = slices.Clone(m.Comments)
	return m
}

// Node represents a leaf or a branch of the AST. The set of implementations
// is closed: *Number, *String, *Symbol and *List.
type Node interface {
	Type() NodeType
	Meta() Meta

	node()
}

// Number is a numeric literal.
type Number struct {
	v    float64
	meta Meta
}

// String is a decoded string literal.
type String struct {
	v    string
	meta Meta
}

// Symbol is any bare word, kept verbatim.
type Symbol struct {
	v    string
	meta Meta
}

// List is a parenthesized sequence of nodes.
type List struct {
	items []Node
	meta  Meta
}

// NewNumber creates and returns a node of type "Number"
func NewNumber(v float64, meta Meta) *Number {
	return &Number{v: v, meta: meta.clone()}
}

// NewString creates and returns a node of type "String"
func NewString(v string, meta Meta) *String {
	return &String{v: v, meta: meta.clone()}
}

// NewSymbol creates and returns a node of type "Symbol"
func NewSymbol(v string, meta Meta) *Symbol {
	return &Symbol{v: v, meta: meta.clone()}
}

// NewList creates and returns a node of type "List"
func NewList(items []Node, meta Meta) *List {
	return &List{items: slices.Clone(items), meta: meta.clone()}
}

func (n *Number) Type() NodeType { return NodeTypeNumber }
func (n *String) Type() NodeType { return NodeTypeString }
func (n *Symbol) Type() NodeType { return NodeTypeSymbol }
func (n *List) Type() NodeType   { return NodeTypeList }

func (n *Number) Meta() Meta { return n.meta.clone() }
func (n *String) Meta() Meta { return n.meta.clone() }
func (n *Symbol) Meta() Meta { return n.meta.clone() }
func (n *List) Meta() Meta   { return n.meta.clone() }

func (*Number) node() {}
func (*String) node() {}
func (*Symbol) node() {}
func (*List) node()   {}

// Value returns the value of the node
func (n *Number) Value() float64 {
	return n.v
}

// Value returns the value of the node
func (n *String) Value() string {
	return n.v
}

// Value returns the value of the node
func (n *Symbol) Value() string {
	return n.v
}

// Items returns all the children elements of the node
func (n *List) Items() []Node {
	return slices.Clone(n.items)
}

// Len returns the number of children.
func (n *List) Len() int {
	return len(n.items)
}

// At returns the i-th child.
func (n *List) At(i int) Node {
	return n.items[i]
}

func (n *Number) String() string {
	return fmt.Sprintf("(%v): %v", n.Type(), n.v)
}

func (n *String) String() string {
	return fmt.Sprintf("(%v): %q", n.Type(), n.v)
}

func (n *Symbol) String() string {
	return fmt.Sprintf("(%v): %v", n.Type(), n.v)
}

func (n *List) String() string {
	return fmt.Sprintf("(%v)[%d]", n.Type(), len(n.items))
}

var (
	_ = Node(&Number{})
	_ = Node(&String{})
	_ = Node(&Symbol{})
	_ = Node(&List{})
)
