package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"vaccine-feed-ingest-schema/internal/jsonschema"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func exportSchemaCmd() *cobra.Command {
	var out string
	var names []string

	c := &cobra.Command{
		Use:   "export-schema",
		Short: "Write the JSON Schema documents to a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(names) == 0 {
				names = jsonschema.Names()
			}

			if err := os.MkdirAll(out, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}

			for _, name := range names {
				if !slices.Contains(jsonschema.Names(), name) {
					return fmt.Errorf("unknown schema %q (expected one of %v)", name, jsonschema.Names())
				}

				doc, err := jsonschema.Marshal(name)
				if err != nil {
					return err
				}

				path := filepath.Join(out, jsonschema.FileName(name))
				if err := os.WriteFile(path, doc, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}

				log.Info().Str("schema", name).Str("path", path).Msg("schema exported")
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&out, "out", "o", ".", "Output directory")
	c.Flags().StringSliceVar(&names, "name", nil, "Schema names to export (default all)")
	return c
}
