package cli

import (
	"github.com/spf13/cobra"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/internal/logging"
	"github.com/xiam/sexpr/parser"
)

// parseInput reads and parses the input named by args, reporting syntax
// errors on stderr.
func (g *globals) parseInput(cmd *cobra.Command, args []string) (ast.Node, error) {
	in, err := g.readInput(cmd, args)
	if err != nil {
		return nil, err
	}

	root, err := parser.Parse(in.data, g.parserOptions(cmd)...)
	if err != nil {
		return nil, reportSyntaxError(cmd.ErrOrStderr(), g.palette(cmd.ErrOrStderr()), in, err)
	}
	return root, nil
}

func outputFlag(cmd *cobra.Command, g *globals, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", "", "output format: json, yaml, msgpack (default from config)")
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("output") {
			g.cfg.Output = *output
		}
		if err := g.cfg.Validate(); err != nil {
			return usageError(err)
		}
		return nil
	}
}

func newParseCommand(g *globals) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the simplified tree of the input",
		Long: `Print the input as bare values: numbers, symbols as strings, string
literals as {"$string": ...} and lists as arrays. Locations and comments
are dropped.`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := g.parseInput(cmd, args)
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Debug("encoding", logging.FieldOutput, g.cfg.Output)
			return encode(cmd.OutOrStdout(), g.cfg.Output, ast.Simplify(root))
		},
	}
	outputFlag(cmd, g, &output)

	return cmd
}

func newConcreteCommand(g *globals) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "concrete [file]",
		Short: "Print the concrete tree of the input",
		Long: `Print every node as {"type", "value", "meta"} where meta holds the
codepoint location of the node and the comments that preceded it.`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := g.parseInput(cmd, args)
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Debug("encoding", logging.FieldOutput, g.cfg.Output)
			return encode(cmd.OutOrStdout(), g.cfg.Output, ast.ToConcrete(root))
		},
	}
	outputFlag(cmd, g, &output)

	return cmd
}
