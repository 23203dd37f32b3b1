package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/sexpr/internal/logging"
	"github.com/xiam/sexpr/lexer"
)

func newTokensCommand(g *globals) *cobra.Command {
	var withComments bool

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of the input",
		Long: `Print one token per line as line:col, type and text. With --comments
the comment lines attached to each token are printed above it.`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := g.readInput(cmd, args)
			if err != nil {
				return err
			}

			src := lexer.NewSource(string(in.data))
			tokens, err := lexer.Tokenize(src)
			if err != nil {
				return reportSyntaxError(cmd.ErrOrStderr(), g.palette(cmd.ErrOrStderr()), in, err)
			}
			logging.FromContext(cmd.Context()).Debug("tokenized", logging.FieldTokens, len(tokens))

			out := cmd.OutOrStdout()
			p := g.palette(out)
			for _, tok := range tokens {
				if withComments {
					for _, c := range tok.Comments() {
						fmt.Fprintf(out, "\t%s\n", c)
					}
				}
				line, col := src.LineCol(tok.Start())
				fmt.Fprintf(out, "%d:%d\t%s\t%s\n", line, col, p.Type.Sprint(tok.Type()), tok.Text())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withComments, "comments", false, "print attached comments")

	return cmd
}
