// Command schemactl validates normalized location files and exports the
// published JSON Schema documents.
package main

import (
	"os"

	"vaccine-feed-ingest-schema/internal/logging"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:          "schemactl",
		Short:        "Validate vaccine location records against the normalized schema",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return logging.SetupWriter(cmd.ErrOrStderr(), logLevel, "console")
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug|info|warn|error")

	cmd.AddCommand(validateCmd())
	cmd.AddCommand(exportSchemaCmd())
	return cmd
}
