package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/xiam/sexpr/lexer"
	"github.com/xiam/sexpr/parser"
)

// syntaxError is the common shape of tokenizer and parser errors.
type syntaxError struct {
	line, col int
	reason    string
}

func asSyntaxError(err error) (syntaxError, bool) {
	var tkErr *lexer.TokenizeError
	if errors.As(err, &tkErr) {
		return syntaxError{line: tkErr.Line, col: tkErr.Col, reason: tkErr.Reason}, true
	}
	var pErr *parser.ParseError
	if errors.As(err, &pErr) {
		return syntaxError{line: pErr.Line, col: pErr.Col, reason: pErr.Reason}, true
	}
	return syntaxError{}, false
}

// caretPad returns the padding that puts a caret under the col-th codepoint
// of line, keeping tabs so terminals expand them the same way.
func caretPad(line string, col int) string {
	var buf strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			buf.WriteByte('\t')
		} else {
			buf.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		i++
	}
	return buf.String()
}

// reportSyntaxError prints err as
//
//	name:line:col: reason
//	<source line>
//	    ^
//
// and returns an error that carries the exit code.
func reportSyntaxError(w io.Writer, p *palette, in *input, err error) error {
	se, ok := asSyntaxError(err)
	if !ok {
		return err
	}

	src := lexer.NewSource(string(in.data))
	line := strings.TrimRight(src.Line(se.line), "\r")

	fmt.Fprintf(w, "%s %s\n",
		p.Location.Sprintf("%s:%d:%d:", in.name, se.line, se.col),
		p.Error.Sprint(se.reason),
	)
	fmt.Fprintf(w, "  %s\n", line)
	fmt.Fprintf(w, "  %s%s\n", caretPad(line, se.col), p.Caret.Sprint("^"))

	return &ExitError{Code: ExitSyntaxError, Err: err, Reported: true}
}
