// Package batch validates streams of records: newline-delimited JSON or a
// YAML document stream.
package batch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"vaccine-feed-ingest-schema/internal/jsonschema"
	"vaccine-feed-ingest-schema/internal/validate"
	"vaccine-feed-ingest-schema/load"
	"vaccine-feed-ingest-schema/location"

	"gopkg.in/yaml.v3"
)

// DefaultMaxLineBytes bounds a single NDJSON line.
const DefaultMaxLineBytes = 1 << 20

// Kind selects the record type each entry of a stream is parsed as.
type Kind string

const (
	KindLocation Kind = "location"
	KindImport   Kind = "import"
)

// ErrUnknownKind is returned by ParseKind for unsupported kinds.
var ErrUnknownKind = errors.New("unknown record kind")

// ParseKind converts a user-supplied kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindLocation, KindImport:
		return k, nil
	default:
		return "", fmt.Errorf("batch: %w: %q", ErrUnknownKind, s)
	}
}

// SchemaName is the JSON Schema document covering records of kind k.
func (k Kind) SchemaName() string {
	if k == KindImport {
		return jsonschema.ImportSourceLocation
	}
	return jsonschema.NormalizedLocation
}

func (k Kind) model() string {
	if k == KindImport {
		return "ImportSourceLocation"
	}
	return "NormalizedLocation"
}

// Format is the framing of a record stream.
type Format string

const (
	FormatNDJSON Format = "ndjson"
	FormatYAML   Format = "yaml"
)

// FormatFromPath guesses the framing from a file extension. Anything that is
// not .yaml or .yml is read as NDJSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatNDJSON
	}
}

// Options controls a single Validate run.
type Options struct {
	Kind   Kind
	Format Format
	// JSONSchema also checks every record against the published JSON Schema
	// before parsing it.
	JSONSchema   bool
	MaxLineBytes int
	// Observe, when set, is called once per record with its outcome.
	Observe func(err error)
}

// RecordError describes one invalid record. Line is the NDJSON line or the
// YAML document number, both starting at 1.
type RecordError struct {
	Line    int                   `json:"line"`
	Message string                `json:"message"`
	Errors  []validate.FieldError `json:"errors,omitempty"`
}

// Report summarizes a stream.
type Report struct {
	Total   int           `json:"total"`
	Valid   int           `json:"valid"`
	Invalid []RecordError `json:"invalid"`
}

// OK reports whether every record was valid.
func (r *Report) OK() bool {
	return len(r.Invalid) == 0
}

// Validate reads records from rd until EOF. Invalid records are collected in
// the report; the returned error is reserved for unreadable input and
// context cancellation, in which case the partial report is still returned.
func Validate(ctx context.Context, rd io.Reader, opts Options) (*Report, error) {
	if opts.Kind == "" {
		opts.Kind = KindLocation
	}
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = DefaultMaxLineBytes
	}

	report := &Report{Invalid: []RecordError{}}
	check := func(line int, data []byte, err error) {
		if err == nil {
			err = checkRecord(opts.Kind, opts.JSONSchema, data)
		}
		report.Total++
		if opts.Observe != nil {
			opts.Observe(err)
		}
		if err == nil {
			report.Valid++
			return
		}
		report.Invalid = append(report.Invalid, newRecordError(line, err))
	}

	switch opts.Format {
	case FormatYAML:
		return report, readYAML(ctx, rd, opts.Kind, check)
	case FormatNDJSON, "":
		return report, readNDJSON(ctx, rd, opts.Kind, opts.MaxLineBytes, check)
	default:
		return report, fmt.Errorf("batch: unsupported format %q", opts.Format)
	}
}

func readNDJSON(ctx context.Context, rd io.Reader, kind Kind, maxLine int, check func(int, []byte, error)) error {
	br := bufio.NewReader(rd)

	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, tooLong, err := readLine(br, maxLine)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("batch: failed to read line %d: %w", line, err)
		}

		switch {
		case tooLong:
			check(line, nil, &validate.Error{Model: kind.model(), Errors: []validate.FieldError{{
				Field:   validate.RootField,
				Rule:    "json",
				Message: fmt.Sprintf("line exceeds %d bytes", maxLine),
			}}})
		case len(bytes.TrimSpace(data)) > 0:
			check(line, data, nil)
		}

		if err != nil {
			return nil
		}
	}
}

// readLine returns the next line without its line ending. A line longer than
// maxLine is consumed and discarded, and reported through tooLong.
func readLine(br *bufio.Reader, maxLine int) (line []byte, tooLong bool, err error) {
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if len(bytes.TrimRight(line, "\r\n")) > maxLine {
				line, tooLong = nil, true
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return bytes.TrimRight(line, "\r\n"), tooLong, err
	}
}

func readYAML(ctx context.Context, rd io.Reader, kind Kind, check func(int, []byte, error)) error {
	dec := yaml.NewDecoder(rd)

	for doc := 1; ; doc++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("batch: failed to decode YAML document %d: %w", doc, err)
		}
		if v == nil {
			continue
		}

		data, err := json.Marshal(v)
		if err != nil {
			// Non-string map keys have no JSON form.
			err = &validate.Error{Model: kind.model(), Errors: []validate.FieldError{{
				Field:   validate.RootField,
				Rule:    "yaml",
				Message: "document is not representable as JSON",
			}}}
		}
		check(doc, data, err)
	}
}

func checkRecord(kind Kind, withSchema bool, data []byte) error {
	if withSchema {
		if err := jsonschema.Validate(kind.SchemaName(), data); err != nil {
			return err
		}
	}

	var err error
	switch kind {
	case KindImport:
		_, err = load.ParseImportSourceLocation(data)
	default:
		_, err = location.ParseNormalizedLocation(data)
	}
	return err
}

func newRecordError(line int, err error) RecordError {
	re := RecordError{Line: line, Message: err.Error()}

	var verr *validate.Error
	if errors.As(err, &verr) {
		re.Errors = verr.Errors
	}
	return re
}
