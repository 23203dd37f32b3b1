package lexer

import (
	"fmt"
	"slices"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	start int
	end   int

	comments []string
}

// NewToken creates a lexical unit spanning the codepoint range [start, end).
func NewToken(tt TokenType, lexeme string, start int, end int, comments []string) *Token {
	return &Token{
		tt:       tt,
		lexeme:   lexeme,
		start:    start,
		end:      end,
		comments: comments,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Span returns the codepoint range covered by the lexical unit
func (t Token) Span() (int, int) {
	return t.start, t.end
}

// Start returns the codepoint offset where the lexical unit begins
func (t Token) Start() int {
	return t.start
}

// End returns the codepoint offset right after the lexical unit
func (t Token) End() int {
	return t.end
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Comments returns the comment lines collected since the previous token, in
// source order and including their leading ';'.
func (t Token) Comments() []string {
	return slices.Clone(t.comments)
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.start, t.end)
}
