package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplify(t *testing.T) {
	assert.Equal(t, 1.5, Simplify(NewNumber(1.5, Meta{})))
	assert.Equal(t, "x", Simplify(NewSymbol("x", Meta{})))
	assert.Equal(t, StringLiteral{Value: "x"}, Simplify(NewString("x", Meta{})))
	assert.Equal(t, []Simplified{}, Simplify(NewList(nil, Meta{})))

	assert.Equal(t, []Simplified{
		"define",
		[]Simplified{"sq", "x"},
		[]Simplified{"*", "x", "x", StringLiteral{Value: "sq"}},
	}, Simplify(sampleTree()))
}

func TestSimplifyDropsMeta(t *testing.T) {
	a := NewList([]Node{NewSymbol("a", Meta{Location: Location{Start: 1, End: 2}})}, Meta{Comments: []string{"; x"}})
	b := NewList([]Node{NewSymbol("a", Meta{Location: Location{Start: 7, End: 8}})}, Meta{})

	assert.Equal(t, Simplify(a), Simplify(b))
}
