package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
)

const unknownFieldPrefix = `json: unknown field "`

// DecodeJSON strictly decodes one JSON document into v. Unknown fields,
// wrong-typed values, trailing data and empty input are all reported as an
// *Error for model.
func DecodeJSON(model string, data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return decodeError(model, err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return &Error{Model: model, Errors: []FieldError{{
			Field:   RootField,
			Rule:    "json",
			Message: "unexpected data after the end of the document",
		}}}
	}

	return nil
}

func decodeError(model string, err error) error {
	var (
		verr   *Error
		typErr *json.UnmarshalTypeError
		synErr *json.SyntaxError
	)

	switch {
	case errors.As(err, &verr):
		verr.Model = model
		return verr
	case errors.As(err, &typErr):
		field := typErr.Field
		if field == "" {
			field = RootField
		}
		return &Error{Model: model, Errors: []FieldError{{
			Field:   field,
			Rule:    "type",
			Message: fmt.Sprintf("value is not a valid %s", kindName(typErr.Type)),
		}}}
	case errors.As(err, &synErr):
		return &Error{Model: model, Errors: []FieldError{{
			Field:   RootField,
			Rule:    "json",
			Message: fmt.Sprintf("invalid JSON at offset %d: %v", synErr.Offset, synErr),
		}}}
	case errors.Is(err, io.EOF):
		return &Error{Model: model, Errors: []FieldError{{
			Field:   RootField,
			Rule:    "json",
			Message: "empty document",
		}}}
	case strings.HasPrefix(err.Error(), unknownFieldPrefix):
		name := strings.TrimSuffix(strings.TrimPrefix(err.Error(), unknownFieldPrefix), `"`)
		return &Error{Model: model, Errors: []FieldError{{
			Field:   name,
			Rule:    "extra",
			Message: "extra fields not permitted",
		}}}
	default:
		return &Error{Model: model, Errors: []FieldError{{
			Field:   RootField,
			Rule:    "json",
			Message: err.Error(),
		}}}
	}
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Slice, reflect.Array:
		return "list"
	default:
		return t.String()
	}
}
