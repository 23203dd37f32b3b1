package lexer

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidNumber      = errors.New("malformed number")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrInvalidEscape      = errors.New("unrecognized escape sequence")
)

const excerptLen = 10

// TokenizeError reports the codepoint offset where the input could not be
// split into tokens.
type TokenizeError struct {
	Err     error
	Offset  int
	Line    int
	Col     int
	Reason  string
	Excerpt string
}

func newTokenizeError(src *Source, offset int, err error, reason string) *TokenizeError {
	line, col := src.LineCol(offset)
	return &TokenizeError{
		Err:     err,
		Offset:  offset,
		Line:    line,
		Col:     col,
		Reason:  reason,
		Excerpt: src.Excerpt(offset, excerptLen),
	}
}

func (e *TokenizeError) Unwrap() error {
	return e.Err
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("%s at offset %d (line=%d, col=%d): %s", e.Reason, e.Offset, e.Line, e.Col, strconv.Quote(e.Excerpt))
}
