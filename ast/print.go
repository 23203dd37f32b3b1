package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	defaultWidth  = 80
	defaultIndent = 2
)

var sugar = map[string]string{
	"quote":      "'",
	"quasiquote": "`",
	"unquote":    ",",
}

type printOpts struct {
	width  int
	indent int
}

// PrintOption configures Encode.
type PrintOption func(*printOpts)

// WithWidth sets the display width a list may take before it is broken
// into one child per line.
func WithWidth(n int) PrintOption {
	return func(o *printOpts) { o.width = n }
}

// WithIndent sets how many spaces children of a broken list are indented.
func WithIndent(n int) PrintOption {
	return func(o *printOpts) { o.indent = n }
}

// fragment is a rendered node. Lines are indented relative to the node.
type fragment struct {
	comments []string
	lines    []string
	symbol   bool
}

func (f *fragment) flat() bool {
	return len(f.comments) == 0 && len(f.lines) == 1
}

type printer struct {
	opts printOpts
}

func (p printer) Number(v float64, meta Meta) *fragment {
	return &fragment{comments: meta.Comments, lines: []string{FormatNumber(v)}}
}

func (p printer) String(v string, meta Meta) *fragment {
	return &fragment{comments: meta.Comments, lines: []string{Quote(v)}}
}

func (p printer) Symbol(v string, meta Meta) *fragment {
	return &fragment{comments: meta.Comments, lines: []string{v}, symbol: true}
}

func (p printer) List(items []*fragment, meta Meta) *fragment {
	f := &fragment{comments: meta.Comments}

	if len(items) == 2 && items[0].symbol && items[0].flat() && len(items[1].comments) == 0 {
		if prefix, ok := sugar[items[0].lines[0]]; ok {
			f.lines = append(f.lines, prefix+items[1].lines[0])
			for _, line := range items[1].lines[1:] {
				f.lines = append(f.lines, " "+line)
			}
			return f
		}
	}

	if line, ok := p.flatList(items); ok {
		f.lines = []string{line}
		return f
	}

	pad := strings.Repeat(" ", p.opts.indent)
	rest := items

	switch head := items[0]; {
	case len(head.comments) > 0:
		f.lines = append(f.lines, "(")
	default:
		f.lines = append(f.lines, "("+head.lines[0])
		for _, line := range head.lines[1:] {
			f.lines = append(f.lines, " "+line)
		}
		rest = items[1:]
	}

	for _, item := range rest {
		for _, c := range item.comments {
			f.lines = append(f.lines, pad+c)
		}
		for _, line := range item.lines {
			f.lines = append(f.lines, pad+line)
		}
	}

	f.lines[len(f.lines)-1] += ")"
	return f
}

func (p printer) flatList(items []*fragment) (string, bool) {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if !item.flat() {
			return "", false
		}
		parts = append(parts, item.lines[0])
	}
	line := "(" + strings.Join(parts, " ") + ")"
	if len(items) > 0 && runewidth.StringWidth(line) > p.opts.width {
		return "", false
	}
	return line, true
}

// Encode transforms a node into its canonical text representation. Comments
// are kept on their own lines right before the node they belong to, and
// quote, quasiquote and unquote forms are written back as sugar.
func Encode(n Node, opts ...PrintOption) []byte {
	o := printOpts{width: defaultWidth, indent: defaultIndent}
	for _, f := range opts {
		f(&o)
	}

	f := Fold[*fragment](n, printer{opts: o})

	var buf strings.Builder
	for _, c := range f.comments {
		buf.WriteString(c)
		buf.WriteByte('\n')
	}
	for _, line := range f.lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return []byte(buf.String())
}

// FormatNumber writes v without exponent notation, which the lexer does not
// accept.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Quote returns v as a string literal that reads back to v.
func Quote(v string) string {
	var buf strings.Builder
	buf.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&buf, `\u%04x`, r)
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}

// Fprint writes a human-readable dump of n to w.
func Fprint(w io.Writer, n Node) error {
	return printLevel(w, n, 0)
}

func printLevel(w io.Writer, n Node, level int) error {
	indent := strings.Repeat("    ", level)
	if n == nil {
		_, err := fmt.Fprintf(w, "%s:nil\n", indent)
		return err
	}

	meta := n.Meta()
	for _, c := range meta.Comments {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, c); err != nil {
			return err
		}
	}

	loc := meta.Location
	switch n := n.(type) {
	case *List:
		if _, err := fmt.Fprintf(w, "%s(%s) [%d %d]\n", indent, n.Type(), loc.Start, loc.End); err != nil {
			return err
		}
		for _, item := range n.items {
			if err := printLevel(w, item, level+1); err != nil {
				return err
			}
		}
		return nil

	case *Number:
		_, err := fmt.Fprintf(w, "%s(%s): %s [%d %d]\n", indent, n.Type(), FormatNumber(n.v), loc.Start, loc.End)
		return err

	case *String:
		_, err := fmt.Fprintf(w, "%s(%s): %s [%d %d]\n", indent, n.Type(), Quote(n.v), loc.Start, loc.End)
		return err

	case *Symbol:
		_, err := fmt.Fprintf(w, "%s(%s): %s [%d %d]\n", indent, n.Type(), n.v, loc.Start, loc.End)
		return err
	}

	panic("unknown node type")
}
