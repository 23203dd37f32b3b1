package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"
)

// xmlLines renders each node as indented XML lines.
type xmlLines struct{}

func leaf(tag string, v interface{}) []string {
	return []string{fmt.Sprintf("<%s>%v</%s>", tag, v, tag)}
}

func (xmlLines) Number(v float64, _ ast.Meta) []string {
	return leaf(ast.NodeTypeNumber.String(), ast.FormatNumber(v))
}

func (xmlLines) String(v string, _ ast.Meta) []string {
	return leaf(ast.NodeTypeString.String(), v)
}

func (xmlLines) Symbol(v string, _ ast.Meta) []string {
	return leaf(ast.NodeTypeSymbol.String(), v)
}

func (xmlLines) List(items [][]string, _ ast.Meta) []string {
	tag := ast.NodeTypeList.String()
	lines := []string{"<" + tag + ">"}
	for _, item := range items {
		for _, line := range item {
			lines = append(lines, "  "+line)
		}
	}
	return append(lines, "</"+tag+">")
}

func main() {
	input := `(fn_a (fn_b '(89 :A :B (67 3.27))) (fn_c 66 3 53 "Hello world!" 😊))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	fmt.Println(strings.Join(ast.Fold[[]string](root, xmlLines{}), "\n"))
}
