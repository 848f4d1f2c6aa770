package location

import (
	"reflect"

	"vaccine-feed-ingest-schema/internal/validate"
)

// ValidationError lists every violation found while constructing a record.
// It matches ErrInvalidRecord with errors.Is.
type ValidationError = validate.Error

// FieldError is one violation inside a ValidationError.
type FieldError = validate.FieldError

// ErrInvalidRecord is matched by every ValidationError.
var ErrInvalidRecord = validate.ErrInvalidRecord

// Record is any schema record.
type Record interface {
	Validate() error
}

// Parse strictly decodes JSON into r and validates it. Unknown fields and
// wrong-typed values fail just like missing required fields.
func Parse(data []byte, r Record) error {
	if err := validate.DecodeJSON(modelName(r), data, r); err != nil {
		return err
	}
	return r.Validate()
}

// ParseNormalizedLocation decodes and validates a normalized location.
func ParseNormalizedLocation(data []byte) (*NormalizedLocation, error) {
	var l NormalizedLocation
	if err := Parse(data, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ParseSource decodes and validates a source record.
func ParseSource(data []byte) (*Source, error) {
	var s Source
	if err := Parse(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseContact decodes and validates a contact entry.
func ParseContact(data []byte) (*Contact, error) {
	var c Contact
	if err := Parse(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func modelName(r Record) string {
	t := reflect.TypeOf(r)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
