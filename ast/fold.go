package ast

import (
	"fmt"
)

// Handler interprets a tree one node kind at a time. List receives the
// already interpreted children, in order.
type Handler[R any] interface {
	Number(v float64, meta Meta) R
	String(v string, meta Meta) R
	Symbol(v string, meta Meta) R
	List(items []R, meta Meta) R
}

// HandlerFuncs adapts four functions into a Handler.
type HandlerFuncs[R any] struct {
	NumberFunc func(v float64, meta Meta) R
	StringFunc func(v string, meta Meta) R
	SymbolFunc func(v string, meta Meta) R
	ListFunc   func(items []R, meta Meta) R
}

func (h HandlerFuncs[R]) Number(v float64, meta Meta) R { return h.NumberFunc(v, meta) }
func (h HandlerFuncs[R]) String(v string, meta Meta) R  { return h.StringFunc(v, meta) }
func (h HandlerFuncs[R]) Symbol(v string, meta Meta) R  { return h.SymbolFunc(v, meta) }
func (h HandlerFuncs[R]) List(items []R, meta Meta) R   { return h.ListFunc(items, meta) }

// Fold interprets n bottom-up with h. The tree is not modified, so any
// number of handlers can fold the same tree.
func Fold[R any](n Node, h Handler[R]) R {
	switch n := n.(type) {
	case *Number:
		return h.Number(n.v, n.Meta())
	case *String:
		return h.String(n.v, n.Meta())
	case *Symbol:
		return h.Symbol(n.v, n.Meta())
	case *List:
		items := make([]R, 0, len(n.items))
		for _, item := range n.items {
			items = append(items, Fold(item, h))
		}
		return h.List(items, n.Meta())
	}
	panic(fmt.Sprintf("ast: unknown node %T", n))
}

var _ = Handler[int](HandlerFuncs[int]{})
