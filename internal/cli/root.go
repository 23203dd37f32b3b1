// Package cli provides the Cobra command structure for sexpr.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/xiam/sexpr/internal/config"
	"github.com/xiam/sexpr/internal/logging"
	"github.com/xiam/sexpr/parser"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globals holds the persistent flags and the settings resolved from them.
type globals struct {
	configPath string
	debug      bool
	color      string
	normalize  string
	maxDepth   int

	cfg *config.Config
}

func (g *globals) resolve(cmd *cobra.Command) error {
	result, err := config.Resolve(cmd.Context(), config.LoadOptions{ExplicitPath: g.configPath})
	if err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}
	cfg := result.Config

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color = g.color
	}
	if flags.Changed("normalize") {
		cfg.Normalize = g.normalize
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = g.maxDepth
	}
	if g.debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return usageError(err)
	}

	g.cfg = cfg
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)
	logging.SetDefault(logger)
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

	if result.LoadedFrom != "" {
		logger.Debug("loaded config", logging.FieldConfig, result.LoadedFrom)
	}
	return nil
}

func (g *globals) parserOptions(cmd *cobra.Command) []parser.Option {
	return []parser.Option{
		parser.WithLogger(logging.FromContext(cmd.Context())),
		parser.WithMaxDepth(g.cfg.MaxDepth),
	}
}

// NewRootCommand creates the root sexpr command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "sexpr",
		Short: "Read, inspect and format S-expressions",
		Long: `sexpr reads a single S-expression and shows it as tokens, as a
simplified tree, or as a concrete tree carrying source locations and
comments. It can also rewrite input in canonical form.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.resolve(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	// Global flags.
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&g.color, "color", config.ColorAuto,
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&g.normalize, "normalize", config.NormalizeNone,
		"unicode normalization of input: none, nfc, nfd")
	rootCmd.PersistentFlags().IntVar(&g.maxDepth, "max-depth", 0, "maximum nesting depth (0 = unlimited)")

	rootCmd.AddCommand(newTokensCommand(g))
	rootCmd.AddCommand(newParseCommand(g))
	rootCmd.AddCommand(newConcreteCommand(g))
	rootCmd.AddCommand(newFmtCommand(g))
	rootCmd.AddCommand(newEnvCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// maxArgs is cobra.MaximumNArgs reporting failures as usage errors.
func maxArgs(n int) cobra.PositionalArgs {
	check := cobra.MaximumNArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}
