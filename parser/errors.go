package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/xiam/sexpr/lexer"
)

var (
	ErrUnexpectedEOF        = errors.New("unexpected end of input")
	ErrUnmatchedOpenParen   = errors.New("unmatched opening paren")
	ErrUnexpectedCloseParen = errors.New("unexpected closing paren")
	ErrInvalidString        = errors.New("invalid string literal")
	ErrInvalidNumber        = errors.New("invalid number literal")
	ErrTrailingInput        = errors.New("trailing input")
	ErrMaxDepth             = errors.New("maximum nesting depth exceeded")
)

const excerptLen = 10

// ParseError reports the codepoint offset of the token that could not be
// turned into a tree.
type ParseError struct {
	Err     error
	Offset  int
	Line    int
	Col     int
	Reason  string
	Excerpt string
}

func newParseError(src *lexer.Source, offset int, err error, reason string) *ParseError {
	line, col := src.LineCol(offset)
	return &ParseError{
		Err:     err,
		Offset:  offset,
		Line:    line,
		Col:     col,
		Reason:  reason,
		Excerpt: src.Excerpt(offset, excerptLen),
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d (line=%d, col=%d): %s", e.Reason, e.Offset, e.Line, e.Col, strconv.Quote(e.Excerpt))
}
