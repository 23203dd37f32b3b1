package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/xiam/sexpr/internal/config"
	"github.com/xiam/sexpr/internal/logging"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of sexpr.`,
		Args:  maxArgs(0),
		Run: func(cmd *cobra.Command, _ []string) {
			logger := log.NewWithOptions(cmd.OutOrStdout(), log.Options{
				ReportTimestamp: false,
				ReportCaller:    false,
			})
			logger.SetLevel(log.InfoLevel)

			logger.Info("sexpr",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
			)
		},
	}

	return cmd
}

func newEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables sexpr reads",
		Args:  maxArgs(0),
		Run: func(cmd *cobra.Command, _ []string) {
			for _, v := range config.ListEnvVars() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", v[0], v[1])
			}
		},
	}
}
