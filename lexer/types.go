package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenNumber               // Number literal: "-12.5"
	TokenString               // Quoted string literal: "\"abc\""
	TokenSymbol               // Any other run of non-delimiters: "define"
	TokenOpenParen            // Open parenthesis: "("
	TokenCloseParen           // Close parenthesis: ")"
	TokenQuote                // Single quote: "'"
	TokenQuasiquote           // Backtick: "`"
	TokenUnquote              // Comma: ","
)

var tokenValues = map[TokenType][]rune{
	TokenOpenParen:  {'('},
	TokenCloseParen: {')'},
	TokenQuote:      {'\''},
	TokenQuasiquote: {'`'},
	TokenUnquote:    {','},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "Invalid",
	TokenNumber:     "Number",
	TokenString:     "String",
	TokenSymbol:     "Symbol",
	TokenOpenParen:  "OpenParen",
	TokenCloseParen: "CloseParen",
	TokenQuote:      "Quote",
	TokenQuasiquote: "Quasiquote",
	TokenUnquote:    "Unquote",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

const (
	runeComment      = ';'
	runeDoubleQuote  = '"'
	runeBackslash    = '\\'
	runeNewLine      = '\n'
	runeMinus        = '-'
	runeDecimalPoint = '.'
)

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\r', ' ':
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isDelimiter reports whether r ends a symbol.
func isDelimiter(r rune) bool {
	if isWhitespace(r) {
		return true
	}
	switch r {
	case runeComment, runeDoubleQuote, '(', ')', '\'', '`', ',':
		return true
	}
	return false
}
