package jsonschema

import (
	"encoding/json"
	"testing"

	"vaccine-feed-ingest-schema/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalLocation = `{"id": "source:id", "source": {"source": "source", "id": "id", "data": {"id": "id"}}}`

func TestDocument(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			// Execute
			doc, err := Document(name)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, draft07, doc["$schema"])
			assert.Equal(t, name+".v1.json", doc["$id"])

			defs, ok := doc["definitions"].(map[string]any)
			require.True(t, ok)
			assert.Contains(t, defs, "NormalizedLocation")
			assert.Contains(t, defs, "ImportSourceLocation")
		})
	}

	_, err := Document("bogus")
	assert.ErrorIs(t, err, ErrUnknownSchema)
}

func TestMarshal(t *testing.T) {
	b, err := Marshal(NormalizedLocation)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "NormalizedLocation", doc["title"])
	assert.Equal(t, "object", doc["type"])
	assert.Contains(t, doc["required"], "source")
}

func TestValidate_NormalizedLocation(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectError   bool
		expectedField string
		expectedRule  string
	}{
		{
			name:  "minimal record",
			input: minimalLocation,
		},
		{
			name: "full record",
			input: `{
				"id": "source:id",
				"name": "name",
				"address": {"street1": "1991 Mountain Boulevard", "city": "Oakland", "state": "CA", "zip": "94611"},
				"location": {"latitude": 37.8273167, "longitude": -122.2105179},
				"contact": [{"contact_type": "booking", "phone": "(916) 445-2841"}, {"website": "https://example.com"}],
				"opening_dates": [{"opens": "2021-04-01", "closes": "2021-04-01"}],
				"opening_hours": [{"day": "monday", "opens": "08:00", "closes": "14:00"}],
				"inventory": [{"vaccine": "moderna", "supply_level": "in_stock"}],
				"access": {"walk": true, "drive": null, "wheelchair": "partial"},
				"links": [{"authority": "google_places", "id": "abc123"}],
				"active": true,
				"source": {"source": "source", "id": "id", "fetched_at": 1617278400, "data": {}}
			}`,
		},
		{
			name:          "missing id",
			input:         `{"source": {"source": "source", "id": "id", "data": {}}}`,
			expectError:   true,
			expectedField: validate.RootField,
			expectedRule:  "required",
		},
		{
			name:          "id does not match pattern",
			input:         `{"id": "Bad ID", "source": {"source": "source", "id": "id", "data": {}}}`,
			expectError:   true,
			expectedField: "id",
			expectedRule:  "pattern",
		},
		{
			name:          "extra field",
			input:         `{"id": "source:id", "nickname": "x", "source": {"source": "source", "id": "id", "data": {}}}`,
			expectError:   true,
			expectedField: validate.RootField,
			expectedRule:  "additional_property_not_allowed",
		},
		{
			name:        "contact with two values",
			input:       `{"id": "source:id", "contact": [{"phone": "(916) 445-2841", "website": "https://example.com"}], "source": {"source": "source", "id": "id", "data": {}}}`,
			expectError: true,
		},
		{
			name:        "contact without a value",
			input:       `{"id": "source:id", "contact": [{"contact_type": "general"}], "source": {"source": "source", "id": "id", "data": {}}}`,
			expectError: true,
		},
		{
			name:        "unknown state",
			input:       `{"id": "source:id", "address": {"state": "ZZ"}, "source": {"source": "source", "id": "id", "data": {}}}`,
			expectError: true,
		},
		{
			name:  "opening hours with offsets",
			input: `{"id": "source:id", "opening_hours": [{"day": "monday", "opens": "08:00+05:00", "closes": "14:00Z"}], "source": {"source": "source", "id": "id", "data": {}}}`,
		},
		{
			name:        "missing longitude",
			input:       `{"id": "source:id", "location": {"latitude": 1.5}, "source": {"source": "source", "id": "id", "data": {}}}`,
			expectError: true,
		},
		{
			name:        "latitude out of range",
			input:       `{"id": "source:id", "location": {"latitude": 91, "longitude": 0}, "source": {"source": "source", "id": "id", "data": {}}}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			input:       `{"id": `,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Execute
			err := Validate(NormalizedLocation, []byte(tt.input))

			// Assert
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, validate.ErrInvalidRecord)

			var verr *validate.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, NormalizedLocation, verr.Model)
			if tt.expectedRule != "" {
				assert.Contains(t, verr.Errors, validateFieldError(verr.Errors, tt.expectedField, tt.expectedRule))
			}
		})
	}
}

func TestValidate_ImportSourceLocation(t *testing.T) {
	valid := `{
		"source_uid": "source:id",
		"source_name": "source",
		"latitude": 37.8,
		"longitude": -122.2,
		"import_json": ` + minimalLocation + `,
		"match": {"action": "new"}
	}`

	assert.NoError(t, Validate(ImportSourceLocation, []byte(valid)))

	err := Validate(ImportSourceLocation, []byte(`{"source_uid": "source:id", "source_name": "source"}`))
	assert.ErrorIs(t, err, validate.ErrInvalidRecord)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("bogus", []byte(minimalLocation))

	assert.ErrorIs(t, err, ErrUnknownSchema)
}

func TestFieldPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(root)", validate.RootField},
		{"", validate.RootField},
		{"id", "id"},
		{"source.data", "source.data"},
		{"contact.0.phone", "contact[0].phone"},
		{"contact.12", "contact[12]"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, fieldPath(tt.input))
		})
	}
}

// validateFieldError returns the entry of errs matching field and rule, or a
// placeholder that fails the Contains assertion when there is none.
func validateFieldError(errs []validate.FieldError, field, rule string) validate.FieldError {
	for _, e := range errs {
		if e.Field == field && e.Rule == rule {
			return e
		}
	}
	return validate.FieldError{Field: field, Rule: rule, Message: "<missing>"}
}
