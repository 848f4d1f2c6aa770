package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"strings"

	"vaccine-feed-ingest-schema/internal/batch"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type fileResult struct {
	File   string        `json:"file"`
	Report *batch.Report `json:"report"`
}

func validateCmd() *cobra.Command {
	var kind string
	var useSchema bool
	var concurrency int
	var format string

	c := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Validate NDJSON or YAML record files (use - for stdin)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := batch.ParseKind(kind)
			if err != nil {
				return err
			}
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q (expected text|json)", format)
			}

			results, err := validateFiles(cmd.Context(), cmd.InOrStdin(), args, batch.Options{
				Kind:       k,
				JSONSchema: useSchema,
			}, concurrency)
			if err != nil {
				return err
			}

			if err := printResults(cmd.OutOrStdout(), results, format); err != nil {
				return err
			}

			invalid := 0
			for _, r := range results {
				invalid += len(r.Report.Invalid)
			}
			if invalid > 0 {
				return fmt.Errorf("validation failed (%d invalid record(s))", invalid)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&kind, "kind", "k", string(batch.KindLocation), "Record kind: location|import")
	c.Flags().BoolVar(&useSchema, "jsonschema", false, "Also check records against the published JSON Schema")
	c.Flags().IntVarP(&concurrency, "concurrency", "j", runtime.NumCPU(), "Number of files validated in parallel")
	c.Flags().StringVar(&format, "format", "text", "Output format: text|json")
	return c
}

// errStdinTwice is returned when "-" is given more than once.
var errStdinTwice = errors.New("stdin (-) may be given only once")

// validateFiles validates every path with at most concurrency files in
// flight. Results keep the order of paths.
func validateFiles(ctx context.Context, stdin io.Reader, paths []string, opts batch.Options, concurrency int) ([]fileResult, error) {
	if slices.Index(paths, "-") != slices.LastIndex(paths, "-") {
		return nil, errStdinTwice
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]fileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		g.Go(func() error {
			report, err := validateFile(ctx, stdin, path, opts)
			if err != nil {
				return err
			}
			results[i] = fileResult{File: path, Report: report}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func validateFile(ctx context.Context, stdin io.Reader, path string, opts batch.Options) (*batch.Report, error) {
	log.Debug().Str("file", path).Msg("validating file")

	rd := stdin
	opts.Format = batch.FormatNDJSON
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		rd = f
		opts.Format = batch.FormatFromPath(path)
	}

	report, err := batch.Validate(ctx, rd, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().Str("file", path).Int("total", report.Total).Int("invalid", len(report.Invalid)).Msg("file validated")
	return report, nil
}

func printResults(w io.Writer, results []fileResult, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		fmt.Fprintf(w, "%s: %d record(s), %d valid, %d invalid\n",
			r.File, r.Report.Total, r.Report.Valid, len(r.Report.Invalid))
		for _, re := range r.Report.Invalid {
			msg := strings.ReplaceAll(re.Message, "\n", "\n    ")
			fmt.Fprintf(w, "  line %d: %s\n", re.Line, msg)
		}
	}
	return nil
}
