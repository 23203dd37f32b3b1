// Package sexpr reads S-expressions: numbers, strings, symbols,
// parenthesized lists and the quote shorthands ', ` and , into a tree that
// keeps source locations and comments.
//
// Parse returns the simplified view of the input and ParseConcrete the
// tagged one. Both accept the same options as the parser package.
package sexpr

import (
	"bytes"
	"io"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"
)

// Reader parses the single expression held by an io.Reader.
type Reader struct {
	r    io.Reader
	opts []parser.Option
}

// NewReader creates a Reader on top of r.
func NewReader(r io.Reader, opts ...parser.Option) *Reader {
	return &Reader{r: r, opts: opts}
}

func (r *Reader) node() (ast.Node, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	return parser.Parse(in, r.opts...)
}

// Parse reads everything from the underlying reader and returns its
// simplified tree.
func (r *Reader) Parse() (ast.Simplified, error) {
	root, err := r.node()
	if err != nil {
		return nil, err
	}
	return ast.Simplify(root), nil
}

// ParseConcrete reads everything from the underlying reader and returns its
// concrete tree.
func (r *Reader) ParseConcrete() (*ast.Concrete, error) {
	root, err := r.node()
	if err != nil {
		return nil, err
	}
	return ast.ToConcrete(root), nil
}

// Parse returns the simplified tree of in: numbers become float64, symbols
// string, strings ast.StringLiteral and lists []ast.Simplified.
func Parse(in []byte, opts ...parser.Option) (ast.Simplified, error) {
	return NewReader(bytes.NewReader(in), opts...).Parse()
}

// ParseString is like Parse for a string.
func ParseString(in string, opts ...parser.Option) (ast.Simplified, error) {
	return Parse([]byte(in), opts...)
}

// ParseConcrete returns the concrete tree of in, with locations and comments
// on every node.
func ParseConcrete(in []byte, opts ...parser.Option) (*ast.Concrete, error) {
	return NewReader(bytes.NewReader(in), opts...).ParseConcrete()
}

// ParseConcreteString is like ParseConcrete for a string.
func ParseConcreteString(in string, opts ...parser.Option) (*ast.Concrete, error) {
	return ParseConcrete([]byte(in), opts...)
}
