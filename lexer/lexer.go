package lexer

import (
	"fmt"
)

const eof = -1

type lexState func(*Lexer) lexState

var (
	isOpenParen  = isTokenType(TokenOpenParen)
	isCloseParen = isTokenType(TokenCloseParen)
	isQuote      = isTokenType(TokenQuote)
	isQuasiquote = isTokenType(TokenQuasiquote)
	isUnquote    = isTokenType(TokenUnquote)
)

// Lexer represents a lexical analyzer. A Lexer is good for a single pass
// over its source; the pending comment buffer never outlives it.
type Lexer struct {
	src *Source

	tokens   []Token
	comments []string

	start  int
	offset int

	lastErr error
}

// New initializes a Lexer object
func New(src *Source) *Lexer {
	return &Lexer{
		src: src,
	}
}

// Scan splits the whole source into tokens. It stops at the first error.
func (lx *Lexer) Scan() ([]Token, error) {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	if lx.lastErr != nil {
		return nil, lx.lastErr
	}
	return lx.tokens, nil
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, *NewToken(tt, lx.src.Slice(lx.start, lx.offset), lx.start, lx.offset, lx.comments))
	lx.comments = nil
	lx.start = lx.offset
}

func (lx *Lexer) ignore() {
	lx.start = lx.offset
}

func (lx *Lexer) peek() rune {
	return lx.src.At(lx.offset)
}

func (lx *Lexer) peekAt(n int) rune {
	return lx.src.At(lx.offset + n)
}

func (lx *Lexer) next() rune {
	r := lx.src.At(lx.offset)
	if r != eof {
		lx.offset++
	}
	return r
}

func lexDefaultState(lx *Lexer) lexState {
	r := lx.peek()

	switch {
	case r == eof:
		return nil

	case isWhitespace(r):
		lx.next()
		lx.ignore()
		return lexDefaultState

	case r == runeComment:
		return lexComment

	case isDigit(r), r == runeMinus && isDigit(lx.peekAt(1)):
		return lexNumber

	case r == runeDoubleQuote:
		return lexString

	case isOpenParen(r):
		lx.next()
		return lexEmit(TokenOpenParen)
	case isCloseParen(r):
		lx.next()
		return lexEmit(TokenCloseParen)

	case isQuote(r):
		lx.next()
		return lexEmit(TokenQuote)
	case isQuasiquote(r):
		lx.next()
		return lexEmit(TokenQuasiquote)
	case isUnquote(r):
		lx.next()
		return lexEmit(TokenUnquote)

	default:
		return lexSymbol
	}
}

// lexComment collects a comment line up to, but not including, the next
// newline. It is attached to whatever token comes next.
func lexComment(lx *Lexer) lexState {
	for r := lx.peek(); r != eof && r != runeNewLine; r = lx.peek() {
		lx.next()
	}
	lx.comments = append(lx.comments, lx.src.Slice(lx.start, lx.offset))
	lx.ignore()
	return lexDefaultState
}

// lexNumber matches ["-"] ("0" | [1-9] digit*) ["." digit+]. A decimal point
// that is not followed by a digit is not part of the number.
func lexNumber(lx *Lexer) lexState {
	if lx.peek() == runeMinus {
		lx.next()
	}

	switch r := lx.next(); {
	case r == '0':
	case isDigit(r):
		for isDigit(lx.peek()) {
			lx.next()
		}
	default:
		return lexStateError(lx.start, ErrInvalidNumber, "failed to read number")
	}

	if lx.peek() == runeDecimalPoint && isDigit(lx.peekAt(1)) {
		lx.next()
		for isDigit(lx.peek()) {
			lx.next()
		}
	}

	return lexEmit(TokenNumber)
}

// lexString scans up to the closing quote. Escapes are only checked for
// shape here; the parser decodes the literal.
func lexString(lx *Lexer) lexState {
	lx.next()

	for {
		switch lx.next() {
		case eof:
			return lexStateError(lx.start, ErrUnterminatedString, "failed to read string")

		case runeDoubleQuote:
			return lexEmit(TokenString)

		case runeBackslash:
			esc := lx.offset - 1

			switch r := lx.next(); r {
			case 't', 'n', runeDoubleQuote, runeBackslash:
			case 'u':
				for i := 0; i < 4; i++ {
					if lx.next() == eof {
						return lexStateError(lx.start, ErrUnterminatedString, "failed to read string")
					}
				}
			case eof:
				return lexStateError(lx.start, ErrUnterminatedString, "failed to read string")
			default:
				return lexStateError(esc, ErrInvalidEscape, fmt.Sprintf("unrecognized escape \\%c in string", r))
			}
		}
	}
}

func lexSymbol(lx *Lexer) lexState {
	for r := lx.peek(); r != eof && !isDelimiter(r); r = lx.peek() {
		lx.next()
	}
	return lexEmit(TokenSymbol)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexStateError(offset int, err error, reason string) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = newTokenizeError(lx.src, offset, err, reason)
		return nil
	}
}

// Tokenize returns all the tokens within src, or an error if a token can't
// be identified.
func Tokenize(src *Source) ([]Token, error) {
	return New(src).Scan()
}

// TokenizeBytes takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func TokenizeBytes(in []byte) ([]Token, error) {
	return Tokenize(NewSource(string(in)))
}
