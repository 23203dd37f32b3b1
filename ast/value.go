package ast

// Simplified is a tree stripped of locations and comments. It holds one of:
// float64 (numbers), string (symbols), StringLiteral (strings) or
// []Simplified (lists).
type Simplified = any

// StringLiteral wraps a decoded string so it can be told apart from a symbol
// in a simplified tree.
type StringLiteral struct {
	Value string `json:"$string" yaml:"$string" msgpack:"$string"`
}

type simplifier struct{}

func (simplifier) Number(v float64, _ Meta) Simplified { return v }
func (simplifier) String(v string, _ Meta) Simplified  { return StringLiteral{Value: v} }
func (simplifier) Symbol(v string, _ Meta) Simplified  { return v }
func (simplifier) List(items []Simplified, _ Meta) Simplified {
	return items
}

// Simplify collapses n into bare values, discarding Meta.
func Simplify(n Node) Simplified {
	return Fold[Simplified](n, simplifier{})
}
