// Package jsonschema publishes the record schema as JSON Schema (draft-07)
// documents, so pipelines written in other languages can check records
// against the same contract, and validates raw JSON against them.
//
// The documents cover every field-level rule. Two cross-field rules cannot
// be expressed in JSON Schema and are only enforced by the Go types: an id
// prefixed with its source name, and closing dates/times after opening ones.
package jsonschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"vaccine-feed-ingest-schema/internal/validate"
	"vaccine-feed-ingest-schema/location"

	"github.com/xeipuuv/gojsonschema"
)

const (
	// NormalizedLocation names the schema of location.NormalizedLocation.
	NormalizedLocation = "normalized_location"
	// ImportSourceLocation names the schema of load.ImportSourceLocation.
	ImportSourceLocation = "import_source_location"

	draft07 = "http://json-schema.org/draft-07/schema#"
	version = "v1"
)

// ErrUnknownSchema is returned for names other than the exported ones.
var ErrUnknownSchema = errors.New("unknown schema")

var (
	compileOnce sync.Once
	compiled    map[string]*gojsonschema.Schema
	compileErr  error
)

// Names returns the names of every published schema.
func Names() []string {
	return []string{NormalizedLocation, ImportSourceLocation}
}

// FileName is the conventional file name of a schema document.
func FileName(name string) string {
	return fmt.Sprintf("%s.%s.json", name, version)
}

// Document builds the JSON Schema document for name.
func Document(name string) (map[string]any, error) {
	var root string
	switch name {
	case NormalizedLocation:
		root = "NormalizedLocation"
	case ImportSourceLocation:
		root = "ImportSourceLocation"
	default:
		return nil, fmt.Errorf("jsonschema: %w: %q", ErrUnknownSchema, name)
	}

	defs := definitions()
	doc := maps.Clone(defs[root].(map[string]any))
	doc["$schema"] = draft07
	doc["$id"] = FileName(name)
	doc["title"] = root
	doc["definitions"] = defs
	return doc, nil
}

// Marshal renders the schema document for name as indented JSON.
func Marshal(name string) ([]byte, error) {
	doc, err := Document(name)
	if err != nil {
		return nil, err
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("jsonschema: failed to encode %s: %w", name, err)
	}
	return append(b, '\n'), nil
}

// Validate checks a raw JSON document against the schema called name. A
// document that breaks the schema yields a *validate.Error.
func Validate(name string, doc []byte) error {
	schema, err := compiledSchema(name)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return &validate.Error{Model: name, Errors: []validate.FieldError{{
			Field:   validate.RootField,
			Rule:    "json",
			Message: err.Error(),
		}}}
	}

	if result.Valid() {
		return nil
	}

	out := &validate.Error{Model: name}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, validate.FieldError{
			Field:   fieldPath(desc.Field()),
			Rule:    desc.Type(),
			Message: desc.Description(),
		})
	}
	return out
}

func compiledSchema(name string) (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled = make(map[string]*gojsonschema.Schema, len(Names()))
		for _, n := range Names() {
			doc, err := Document(n)
			if err != nil {
				compileErr = err
				return
			}
			// Relative ids are not resolvable by the loader.
			delete(doc, "$id")
			s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
			if err != nil {
				compileErr = fmt.Errorf("jsonschema: failed to compile %s: %w", n, err)
				return
			}
			compiled[n] = s
		}
	})
	if compileErr != nil {
		return nil, compileErr
	}

	s, ok := compiled[name]
	if !ok {
		return nil, fmt.Errorf("jsonschema: %w: %q", ErrUnknownSchema, name)
	}
	return s, nil
}

// fieldPath converts gojsonschema's "(root)" and "contact.0.phone" paths to
// the bracketed form used by the Go validators.
func fieldPath(field string) string {
	if field == "(root)" || field == "" {
		return validate.RootField
	}

	parts := strings.Split(field, ".")
	var b strings.Builder
	for i, p := range parts {
		if isIndex(p) {
			fmt.Fprintf(&b, "[%s]", p)
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func definitions() map[string]any {
	return map[string]any{
		"Address": object(nil, map[string]any{
			"street1": nullable(str(location.ValueMaxLength, "")),
			"street2": nullable(str(location.ValueMaxLength, "")),
			"city":    nullable(str(location.ValueMaxLength, "")),
			"state":   nullable(enum(location.StateValues())),
			"zip":     nullable(str(0, location.ZipcodeRE.String())),
		}),
		"LatLng": object([]string{"latitude", "longitude"}, map[string]any{
			"latitude":  map[string]any{"type": "number", "minimum": -90, "maximum": 90},
			"longitude": map[string]any{"type": "number", "minimum": -180, "maximum": 180},
		}),
		"Contact": withOneOf(object(nil, map[string]any{
			"contact_type": nullable(enum(location.ContactTypeValues())),
			"phone":        nullable(str(0, location.USPhoneRE.String())),
			"website":      nullable(map[string]any{"type": "string", "format": "uri", "pattern": "^[hH][tT][tT][pP][sS]?://"}),
			"email":        nullable(map[string]any{"type": "string", "format": "email"}),
			"other":        nullable(str(location.NoteMaxLength, "")),
		}), "phone", "website", "email", "other"),
		"OpenDate": object(nil, map[string]any{
			"opens":  nullable(str(0, datePattern)),
			"closes": nullable(str(0, datePattern)),
		}),
		"OpenHour": object([]string{"day", "opens", "closes"}, map[string]any{
			"day":    enum(location.DayOfWeekValues()),
			"opens":  str(0, timePattern),
			"closes": str(0, timePattern),
		}),
		"Availability": object(nil, map[string]any{
			"drop_in":      nullable(boolean()),
			"appointments": nullable(boolean()),
		}),
		"Vaccine": object([]string{"vaccine"}, map[string]any{
			"vaccine":      enum(location.VaccineTypeValues()),
			"supply_level": nullable(enum(location.VaccineSupplyValues())),
		}),
		"Access": object(nil, map[string]any{
			"walk":       nullable(boolean()),
			"drive":      nullable(boolean()),
			"wheelchair": nullable(enum(location.WheelchairAccessLevelValues())),
		}),
		"Organization": object(nil, map[string]any{
			"id":   nullable(str(location.EnumMaxLength, location.EnumValueRE.String())),
			"name": nullable(str(location.ValueMaxLength, "")),
		}),
		"Link": object(nil, map[string]any{
			"authority": nullable(str(location.EnumMaxLength, location.EnumValueRE.String())),
			"id":        nullable(str(location.IDMaxLength, location.SourceIDRE.String())),
			"uri":       nullable(map[string]any{"type": "string", "format": "uri"}),
		}),
		"Source": object([]string{"source", "id", "data"}, map[string]any{
			"source":           str(location.EnumMaxLength, location.EnumValueRE.String()),
			"id":               str(location.IDMaxLength, location.SourceIDRE.String()),
			"fetched_from_uri": nullable(map[string]any{"type": "string", "format": "uri"}),
			"fetched_at":       nullable(datetime()),
			"published_at":     nullable(datetime()),
			"data":             map[string]any{"type": "object"},
		}),
		"NormalizedLocation": object([]string{"id", "source"}, map[string]any{
			"id":                  str(location.IDMaxLength, location.LocationIDRE.String()),
			"name":                nullable(str(location.ValueMaxLength, "")),
			"address":             nullable(ref("Address")),
			"location":            nullable(ref("LatLng")),
			"contact":             nullable(array(ref("Contact"))),
			"languages":           nullable(array(map[string]any{"type": "string"})),
			"opening_dates":       nullable(array(ref("OpenDate"))),
			"opening_hours":       nullable(array(ref("OpenHour"))),
			"availability":        nullable(ref("Availability")),
			"inventory":           nullable(array(ref("Vaccine"))),
			"access":              nullable(ref("Access")),
			"parent_organization": nullable(ref("Organization")),
			"links":               nullable(array(ref("Link"))),
			"notes":               nullable(array(map[string]any{"type": "string"})),
			"active":              nullable(boolean()),
			"source":              ref("Source"),
		}),
		"ImportMatchAction": object([]string{"action"}, map[string]any{
			"id":     nullable(map[string]any{"type": "string"}),
			"action": map[string]any{"type": "string", "minLength": 1},
		}),
		"ImportSourceLocation": object([]string{"source_uid", "source_name", "import_json"}, map[string]any{
			"source_uid":   map[string]any{"type": "string", "minLength": 1},
			"source_name":  map[string]any{"type": "string", "minLength": 1},
			"name":         nullable(map[string]any{"type": "string"}),
			"latitude":     nullable(map[string]any{"type": "number"}),
			"longitude":    nullable(map[string]any{"type": "number"}),
			"import_json":  ref("NormalizedLocation"),
			"content_hash": nullable(map[string]any{"type": "string"}),
			"match":        nullable(ref("ImportMatchAction")),
		}),
	}
}

const (
	datePattern = `^[0-9]{4}-[0-9]{1,2}-[0-9]{1,2}$`
	timePattern = `^[0-9]{1,2}:[0-9]{2}(:[0-9]{2}(\.[0-9]{1,9})?)?(Z|[+-][0-9]{2}(:?[0-9]{2})?)?$`
)

func object(required []string, props map[string]any) map[string]any {
	m := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		m["required"] = required
	}
	return m
}

// withOneOf requires exactly one of fields to be present and non-null.
func withOneOf(m map[string]any, fields ...string) map[string]any {
	var alternatives []any
	for _, f := range fields {
		alternatives = append(alternatives, map[string]any{
			"required":   []string{f},
			"properties": map[string]any{f: map[string]any{"not": map[string]any{"type": "null"}}},
		})
	}
	m["oneOf"] = alternatives
	return m
}

func str(maxLength int, pattern string) map[string]any {
	m := map[string]any{"type": "string"}
	if maxLength > 0 {
		m["maxLength"] = maxLength
	}
	if pattern != "" {
		m["pattern"] = pattern
	}
	return m
}

func enum[T ~string](values []T) map[string]any {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	slices.Sort(out)
	return map[string]any{"type": "string", "enum": out}
}

func boolean() map[string]any {
	return map[string]any{"type": "boolean"}
}

func datetime() map[string]any {
	return map[string]any{"type": []string{"string", "number"}}
}

func array(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}

func ref(def string) map[string]any {
	return map[string]any{"$ref": "#/definitions/" + def}
}

func nullable(m map[string]any) map[string]any {
	return map[string]any{"anyOf": []any{m, map[string]any{"type": "null"}}}
}
