package ast_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"
)

func encode(t *testing.T, in string, opts ...ast.PrintOption) string {
	t.Helper()
	node, err := parser.ParseString(in)
	require.NoError(t, err, "input: %q", in)
	return string(ast.Encode(node, opts...))
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`a`, "a\n"},
		{`  12.50 `, "12.5\n"},
		{`-0.25`, "-0.25\n"},
		{`"a\tb"`, "\"a\\tb\"\n"},
		{`"\u0001"`, "\"\\u0001\"\n"},
		{`()`, "()\n"},
		{"(a\n   b   ( c ))", "(a b (c))\n"},
		{`(quote x)`, "'x\n"},
		{`'(a ,b)`, "'(a ,b)\n"},
		{"`(,a b)", "`(,a b)\n"},
		{`(quote)`, "(quote)\n"},
		{`(quote a b)`, "(quote a b)\n"},
		{`("quote" a)`, "(\"quote\" a)\n"},
		{"; top\n(a)", "; top\n(a)\n"},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, encode(t, testCases[i].In), "input: %q", testCases[i].In)
	}
}

func TestEncodeWidth(t *testing.T) {
	assert.Equal(t, "(alpha beta gamma)\n", encode(t, `(alpha beta gamma)`))
	assert.Equal(t, "(alpha\n  beta\n  gamma)\n", encode(t, `(alpha beta gamma)`, ast.WithWidth(10)))
	assert.Equal(t, "(alpha\n    beta\n    gamma)\n", encode(t, `(alpha beta gamma)`, ast.WithWidth(10), ast.WithIndent(4)))
}

func TestEncodeComments(t *testing.T) {
	in := `
      ;;; fact (n): calculate the factorial n!
      (define (fact n)
          (if (< n 2)
              n
              ;; this isn't stack-safe tail-recursion
              (* n (fact (- n 1)))))
    `

	expected := `;;; fact (n): calculate the factorial n!
(define
  (fact n)
  (if
    (< n 2)
    n
    ;; this isn't stack-safe tail-recursion
    (* n (fact (- n 1)))))
`
	assert.Equal(t, expected, encode(t, in))
}

func TestEncodeRoundTrip(t *testing.T) {
	testCases := []string{
		`x`,
		`(a "b\n" 1.5 -2)`,
		"; c\n(a ; d\n b)",
		"'; c\nx",
		`''x`,
		"`(let ((a ,b)) (list 'a ,@c))",
		`("x\ty" 0.25 ("\\" "\""))`,
		"(define (fact n)\n  (if (< n 2)\n    n\n    ;; note\n    (* n (fact (- n 1)))))",
		"(\n ; head\n f x)",
		"(a '(b\n ; c\n c))",
	}

	for i := range testCases {
		first, err := parser.ParseString(testCases[i])
		require.NoError(t, err, "input: %q", testCases[i])

		for _, width := range []int{80, 8} {
			out := ast.Encode(first, ast.WithWidth(width))
			second, err := parser.Parse(out)
			require.NoError(t, err, "input: %q, encoded: %q", testCases[i], out)

			assert.Equal(t, ast.Simplify(first), ast.Simplify(second), "input: %q, encoded: %q", testCases[i], out)
			if diff := cmp.Diff(comments(first), comments(second)); diff != "" {
				t.Errorf("comments differ for %q (-first +second):\n%s", testCases[i], diff)
			}

			assert.Equal(t, string(out), string(ast.Encode(second, ast.WithWidth(width))))
		}
	}
}

func comments(n ast.Node) []string {
	out := []string{}
	ast.Fold[struct{}](n, ast.HandlerFuncs[struct{}]{
		NumberFunc: func(_ float64, m ast.Meta) struct{} { out = append(out, m.Comments...); return struct{}{} },
		StringFunc: func(_ string, m ast.Meta) struct{} { out = append(out, m.Comments...); return struct{}{} },
		SymbolFunc: func(_ string, m ast.Meta) struct{} { out = append(out, m.Comments...); return struct{}{} },
		ListFunc:   func(_ []struct{}, m ast.Meta) struct{} { out = append(out, m.Comments...); return struct{}{} },
	})
	return out
}

func TestFprint(t *testing.T) {
	node, err := parser.ParseString("; c\n(a 1 \"s\")")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ast.Fprint(&buf, node))

	expected := "; c\n" +
		"(List) [4 13]\n" +
		"    (Symbol): a [5 6]\n" +
		"    (Number): 1 [7 8]\n" +
		"    (String): \"s\" [9 12]\n"
	assert.Equal(t, expected, buf.String())
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"plain"`, ast.Quote("plain"))
	assert.Equal(t, `"a\"b\\c\nd\te"`, ast.Quote("a\"b\\c\nd\te"))
	assert.Equal(t, `"\u001b[0m"`, ast.Quote("\x1b[0m"))
	assert.Equal(t, `"été"`, ast.Quote("été"))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", ast.FormatNumber(0))
	assert.Equal(t, "12.34", ast.FormatNumber(12.34))
	assert.Equal(t, "-3.5", ast.FormatNumber(-3.5))
	assert.Equal(t, "100000000000000000000000", ast.FormatNumber(1e23))
}
