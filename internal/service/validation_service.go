package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"vaccine-feed-ingest-schema/internal/batch"
	"vaccine-feed-ingest-schema/internal/jsonschema"
	"vaccine-feed-ingest-schema/internal/metrics"
	"vaccine-feed-ingest-schema/internal/validate"
	"vaccine-feed-ingest-schema/load"
	"vaccine-feed-ingest-schema/location"
)

// ErrEmptyBody is returned when there is no record to validate.
var ErrEmptyBody = errors.New("service: request body cannot be empty")

// Recorder receives validation outcomes, normally *metrics.Metrics.
type Recorder interface {
	RecordValidation(kind, result string)
	RecordDuration(operation string, d time.Duration)
	RecordBatchSize(kind string, records int)
}

// ValidationService contains the validation use cases exposed over HTTP
type ValidationService struct {
	recorder Recorder
}

// NewValidationService creates a new validation service
func NewValidationService(recorder Recorder) *ValidationService {
	return &ValidationService{recorder: recorder}
}

// ValidateLocation parses and validates a normalized location document
func (s *ValidationService) ValidateLocation(ctx context.Context, body []byte) (*location.NormalizedLocation, error) {
	defer s.observe("validate_location", time.Now())

	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loc, err := location.ParseNormalizedLocation(body)
	s.record(batch.KindLocation, err)
	if err != nil {
		return nil, fmt.Errorf("service: invalid location: %w", err)
	}

	return loc, nil
}

// ValidateImportLocation parses and validates an import record
func (s *ValidationService) ValidateImportLocation(ctx context.Context, body []byte) (*load.ImportSourceLocation, error) {
	defer s.observe("validate_import_location", time.Now())

	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec, err := load.ParseImportSourceLocation(body)
	s.record(batch.KindImport, err)
	if err != nil {
		return nil, fmt.Errorf("service: invalid import location: %w", err)
	}

	return rec, nil
}

// DeriveImportLocation validates a normalized location and builds the import
// record for it
func (s *ValidationService) DeriveImportLocation(ctx context.Context, body []byte) (*load.ImportSourceLocation, error) {
	defer s.observe("derive_import_location", time.Now())

	loc, err := s.ValidateLocation(ctx, body)
	if err != nil {
		return nil, err
	}

	rec, err := load.NewImportSourceLocation(*loc)
	if err != nil {
		return nil, fmt.Errorf("service: failed to derive import location: %w", err)
	}

	return rec, nil
}

// ValidateBatch validates an NDJSON stream of records of the given kind
func (s *ValidationService) ValidateBatch(ctx context.Context, body io.Reader, kind batch.Kind, maxLineBytes int) (*batch.Report, error) {
	defer s.observe("validate_batch", time.Now())

	report, err := batch.Validate(ctx, body, batch.Options{
		Kind:         kind,
		Format:       batch.FormatNDJSON,
		MaxLineBytes: maxLineBytes,
		Observe:      func(err error) { s.record(kind, err) },
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to read batch: %w", err)
	}

	if report.Total == 0 {
		return nil, ErrEmptyBody
	}

	s.recorder.RecordBatchSize(string(kind), report.Total)
	return report, nil
}

// Schema returns the JSON Schema document called name
func (s *ValidationService) Schema(name string) ([]byte, error) {
	b, err := jsonschema.Marshal(name)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return b, nil
}

func (s *ValidationService) record(kind batch.Kind, err error) {
	result := metrics.ResultValid
	switch {
	case err == nil:
	case errors.Is(err, validate.ErrInvalidRecord):
		result = metrics.ResultInvalid
	default:
		result = metrics.ResultError
	}
	s.recorder.RecordValidation(string(kind), result)
}

func (s *ValidationService) observe(operation string, start time.Time) {
	s.recorder.RecordDuration(operation, time.Since(start))
}
