package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/segmentio/encoding/json"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/lexer"
)

var sugarSymbols = map[lexer.TokenType]string{
	lexer.TokenQuote:      "quote",
	lexer.TokenQuasiquote: "quasiquote",
	lexer.TokenUnquote:    "unquote",
}

// Parser turns a source into a single top-level node.
type Parser struct {
	src  *lexer.Source
	opts parseOpts
}

// New creates a Parser for src.
func New(src *lexer.Source, opts ...Option) *Parser {
	return &Parser{
		src:  src,
		opts: newParseOpts(opts),
	}
}

// Parse tokenizes the whole source and then reads exactly one node from it.
// Tokenizer errors are always reported before any parser error.
func (p *Parser) Parse() (ast.Node, error) {
	tokens, err := lexer.Tokenize(p.src)
	if err != nil {
		return nil, err
	}
	p.opts.logger.Debug("tokenized", "tokens", len(tokens), "codepoints", p.src.Len())

	d := &descent{src: p.src, tokens: tokens, maxDepth: p.opts.maxDepth}

	if len(tokens) == 0 {
		return nil, newParseError(p.src, p.src.Len(), ErrUnexpectedEOF, "expected an expression")
	}

	node, next, err := d.parseNode(0, 0)
	if err != nil {
		return nil, err
	}

	if next < len(tokens) {
		start := tokens[next].Start()
		return nil, newParseError(p.src, start, ErrTrailingInput, "unexpected input after top-level expression")
	}

	p.opts.logger.Debug("parsed", "type", node.Type(), "end", node.Meta().Location.End)
	return node, nil
}

// descent holds the read-only inputs of one parse. The position in the
// token stream is threaded through parseNode explicitly.
type descent struct {
	src      *lexer.Source
	tokens   []lexer.Token
	maxDepth int
}

func metaOf(tok *lexer.Token) ast.Meta {
	start, end := tok.Span()
	return ast.Meta{
		Location: ast.Location{Start: start, End: end},
		Comments: tok.Comments(),
	}
}

func (d *descent) enter(tok *lexer.Token, depth int) error {
	if d.maxDepth > 0 && depth+1 > d.maxDepth {
		return newParseError(d.src, tok.Start(), ErrMaxDepth, fmt.Sprintf("nesting deeper than %d", d.maxDepth))
	}
	return nil
}

// parseNode reads the node starting at token i and returns it along with the
// index of the first token after it.
func (d *descent) parseNode(i int, depth int) (ast.Node, int, error) {
	tok := &d.tokens[i]
	meta := metaOf(tok)

	switch tok.Type() {
	case lexer.TokenNumber:
		v, err := strconv.ParseFloat(tok.Text(), 64)
		if err != nil {
			reason := "invalid number"
			if errors.Is(err, strconv.ErrRange) {
				reason = "number out of range"
			}
			return nil, i, newParseError(d.src, tok.Start(), ErrInvalidNumber, reason)
		}
		return ast.NewNumber(v, meta), i + 1, nil

	case lexer.TokenString:
		var v string
		if err := json.Unmarshal([]byte(tok.Text()), &v); err != nil {
			return nil, i, newParseError(d.src, tok.Start(), ErrInvalidString, fmt.Sprintf("invalid text: %s", tok.Text()))
		}
		return ast.NewString(v, meta), i + 1, nil

	case lexer.TokenSymbol:
		return ast.NewSymbol(tok.Text(), meta), i + 1, nil

	case lexer.TokenOpenParen:
		if err := d.enter(tok, depth); err != nil {
			return nil, i, err
		}
		nodes := []ast.Node{}
		for j := i + 1; j < len(d.tokens); {
			if d.tokens[j].Is(lexer.TokenCloseParen) {
				meta.Location.End = d.tokens[j].End()
				return ast.NewList(nodes, meta), j + 1, nil
			}
			node, next, err := d.parseNode(j, depth+1)
			if err != nil {
				return nil, i, err
			}
			nodes = append(nodes, node)
			j = next
		}
		return nil, i, newParseError(d.src, tok.Start(), ErrUnmatchedOpenParen, "missing matching paren for opening paren")

	case lexer.TokenQuote, lexer.TokenQuasiquote, lexer.TokenUnquote:
		if err := d.enter(tok, depth); err != nil {
			return nil, i, err
		}
		name := sugarSymbols[tok.Type()]
		if i+1 >= len(d.tokens) {
			return nil, i, newParseError(d.src, tok.Start(), ErrUnexpectedEOF, fmt.Sprintf("expected an expression after %s", name))
		}
		node, next, err := d.parseNode(i+1, depth+1)
		if err != nil {
			return nil, i, err
		}
		// The wrapper spans only the sugar character; the head symbol shares
		// that span but not the comments.
		head := ast.NewSymbol(name, ast.Meta{Location: meta.Location})
		return ast.NewList([]ast.Node{head, node}, meta), next, nil

	case lexer.TokenCloseParen:
		return nil, i, newParseError(d.src, tok.Start(), ErrUnexpectedCloseParen, "unexpected closing paren")
	}

	panic(fmt.Sprintf("parser: unknown token %v", tok.Type()))
}

// Parse takes an array of bytes and returns the single expression within it.
func Parse(in []byte, opts ...Option) (ast.Node, error) {
	return New(lexer.NewSource(string(in)), opts...).Parse()
}

// ParseString is like Parse for a string.
func ParseString(in string, opts ...Option) (ast.Node, error) {
	return New(lexer.NewSource(in), opts...).Parse()
}
