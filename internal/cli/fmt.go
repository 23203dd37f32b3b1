package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/internal/logging"
	"github.com/xiam/sexpr/parser"
)

type fmtOptions struct {
	write bool
	diff  bool
}

func newFmtCommand(g *globals) *cobra.Command {
	var opts fmtOptions
	var width, indent int

	cmd := &cobra.Command{
		Use:   "fmt [file...]",
		Short: "Rewrite input in canonical form",
		Long: `Print each input in canonical form: one space between atoms, lists
broken one child per line when they do not fit the width, comments on
their own lines and quote forms written with ', ` + "`" + ` and ,.

With --write files are rewritten in place. With --diff a line diff is
printed instead and the command fails if any input is not formatted.`,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("width") {
				g.cfg.Width = width
			}
			if cmd.Flags().Changed("indent") {
				g.cfg.Indent = indent
			}
			if err := g.cfg.Validate(); err != nil {
				return usageError(err)
			}
			if opts.write && opts.diff {
				return usageError(fmt.Errorf("--write and --diff cannot be combined"))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}

			var failed error
			for _, arg := range args {
				err := g.formatOne(cmd, arg, opts)
				if err == nil {
					continue
				}
				if !Reported(err) {
					return err
				}
				failed = err
			}
			return failed
		},
	}

	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "write result to the source file instead of stdout")
	cmd.Flags().BoolVarP(&opts.diff, "diff", "d", false, "print a diff instead of the formatted input")
	cmd.Flags().IntVar(&width, "width", 0, "display width lists are kept within (default from config)")
	cmd.Flags().IntVar(&indent, "indent", 0, "spaces per indentation level (default from config)")

	return cmd
}

func (g *globals) formatOne(cmd *cobra.Command, arg string, opts fmtOptions) error {
	in, err := g.readInput(cmd, []string{arg})
	if err != nil {
		return err
	}

	root, err := parser.Parse(in.data, g.parserOptions(cmd)...)
	if err != nil {
		return reportSyntaxError(cmd.ErrOrStderr(), g.palette(cmd.ErrOrStderr()), in, err)
	}

	formatted := ast.Encode(root, ast.WithWidth(g.cfg.Width), ast.WithIndent(g.cfg.Indent))
	changed := !bytes.Equal(formatted, in.data)
	logging.FromContext(cmd.Context()).Debug("formatted",
		logging.FieldInput, in.name,
		logging.FieldWidth, g.cfg.Width,
		logging.FieldIndent, g.cfg.Indent,
		logging.FieldChanged, changed,
	)

	out := cmd.OutOrStdout()
	switch {
	case opts.diff:
		if !changed {
			return nil
		}
		writeDiff(out, g.palette(out), in.name, string(in.data), string(formatted))
		return ErrUnformatted

	case opts.write && in.path != "":
		if !changed {
			return nil
		}
		info, err := os.Stat(in.path)
		if err != nil {
			return ioError(err)
		}
		if err := os.WriteFile(in.path, formatted, info.Mode().Perm()); err != nil {
			return ioError(fmt.Errorf("write %s: %w", in.path, err))
		}
		logging.FromContext(cmd.Context()).Info("rewrote", logging.FieldPath, in.path)
		return nil
	}

	_, err = out.Write(formatted)
	return err
}

// writeDiff prints a line diff between before and after.
func writeDiff(w io.Writer, p *palette, name, before, after string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	p.Header.Fprintf(w, "--- %s\n", name)
	p.Header.Fprintf(w, "+++ %s (formatted)\n", name)

	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				p.Add.Fprintf(w, "+%s\n", line)
			case diffmatchpatch.DiffDelete:
				p.Remove.Fprintf(w, "-%s\n", line)
			case diffmatchpatch.DiffEqual:
				fmt.Fprintf(w, " %s\n", line)
			}
		}
	}
}
