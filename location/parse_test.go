package location

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalJSON = `{"id": "source:id", "source": {"source": "source", "id": "id", "data": {"id": "id"}}}`

func TestParseNormalizedLocation(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedRule string
		expectedPath string
	}{
		{
			name:  "minimal record",
			input: minimalJSON,
		},
		{
			name: "full record with string enums",
			input: `{
				"id": "source:id",
				"name": "name",
				"address": {"street1": "1991 Mountain Boulevard", "street2": "#1", "city": "Oakland", "state": "CA", "zip": "94611"},
				"location": {"latitude": 37.8273167, "longitude": -122.2105179},
				"contact": [{"contact_type": "booking", "phone": "(916) 445-2841"}],
				"languages": ["en"],
				"opening_dates": [{"opens": "2021-04-01", "closes": "2021-04-01"}],
				"opening_hours": [{"day": "monday", "opens": "08:00", "closes": "14:00"}],
				"availability": {"drop_in": false, "appointments": true},
				"inventory": [{"vaccine": "moderna", "supply_level": "in_stock"}],
				"access": {"walk": true, "drive": false, "wheelchair": "partial"},
				"parent_organization": {"id": "rite_aid", "name": "Rite Aid"},
				"links": [{"authority": "google_places", "id": "abc123"}],
				"notes": ["note"],
				"active": true,
				"source": {"source": "source", "id": "id", "fetched_at": 1617278400, "data": {"id": "id"}}
			}`,
		},
		{
			name:         "empty object",
			input:        `{}`,
			expectError:  true,
			expectedRule: "required",
			expectedPath: "id",
		},
		{
			name:         "empty document",
			input:        ``,
			expectError:  true,
			expectedRule: "json",
			expectedPath: "__root__",
		},
		{
			name:         "extra field",
			input:        `{"id": "source:id", "nickname": "x", "source": {"source": "source", "id": "id", "data": {}}}`,
			expectError:  true,
			expectedRule: "extra",
			expectedPath: "nickname",
		},
		{
			name:         "wrong type",
			input:        `{"id": 7, "source": {"source": "source", "id": "id", "data": {}}}`,
			expectError:  true,
			expectedRule: "type",
			expectedPath: "id",
		},
		{
			name:         "data is not an object",
			input:        `{"id": "source:id", "source": {"source": "source", "id": "id", "data": []}}`,
			expectError:  true,
			expectedRule: "type",
			expectedPath: "source.data",
		},
		{
			name:         "missing longitude",
			input:        `{"id": "source:id", "location": {"latitude": 1.5}, "source": {"source": "source", "id": "id", "data": {}}}`,
			expectError:  true,
			expectedRule: "required",
			expectedPath: "location.longitude",
		},
		{
			name:         "trailing document",
			input:        minimalJSON + minimalJSON,
			expectError:  true,
			expectedRule: "json",
			expectedPath: "__root__",
		},
		{
			name:         "id not prefixed with source name",
			input:        `{"id": "invalid:id", "source": {"source": "source", "id": "id", "data": {}}}`,
			expectError:  true,
			expectedRule: "source_prefix",
			expectedPath: "id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Execute
			result, err := ParseNormalizedLocation([]byte(tt.input))

			// Assert
			if !tt.expectError {
				require.NoError(t, err)
				assert.Equal(t, "source:id", result.ID)
				return
			}

			assert.Nil(t, result)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err)
			assert.Equal(t, "NormalizedLocation", verr.Model)
			require.NotEmpty(t, verr.Errors)
			assert.Equal(t, tt.expectedRule, verr.Errors[0].Rule)
			assert.Equal(t, tt.expectedPath, verr.Errors[0].Field)
		})
	}
}

func TestParseNormalizedLocation_WrongTypeInsideLatLng(t *testing.T) {
	input := `{"id": "source:id", "location": {"latitude": "north", "longitude": 1}, "source": {"source": "source", "id": "id", "data": {}}}`

	_, err := ParseNormalizedLocation([]byte(input))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "type", verr.Errors[0].Rule)
	assert.Equal(t, "location.latitude", verr.Errors[0].Field)
}

func TestParseNormalizedLocation_MissingCoordinateReportedWithOtherViolations(t *testing.T) {
	// Setup
	input := `{"id": "other:id", "location": {"latitude": 1.5}, "source": {"source": "source", "id": "id", "data": {}}}`

	// Execute
	_, err := ParseNormalizedLocation([]byte(input))

	// Assert
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{"location.longitude", "id"}, verr.Fields())
}

func TestParseNormalizedLocation_CanonicalizesTimestamps(t *testing.T) {
	input := `{
		"id": "source:id",
		"opening_hours": [{"day": "tuesday", "opens": "9:00:00", "closes": "17:30"}],
		"source": {"source": "source", "id": "id", "fetched_at": 1617278400000, "published_at": "2021-04-01T12:00:00Z", "data": {}}
	}`

	result, err := ParseNormalizedLocation([]byte(input))

	require.NoError(t, err)
	assert.Equal(t, LocalTime("09:00"), result.OpeningHours[0].Opens)
	assert.Equal(t, Datetime("2021-04-01T12:00:00+00:00"), result.Source.FetchedAt)
	assert.Equal(t, Datetime("2021-04-01T12:00:00+00:00"), result.Source.PublishedAt)
}

func TestNormalizedLocation_JSONRoundTripKeepsAbsentFieldsAbsent(t *testing.T) {
	l := minimalLocation()
	require.NoError(t, l.Validate())

	b, err := json.Marshal(l)
	require.NoError(t, err)

	assert.JSONEq(t, minimalJSON, string(b))
}

func TestParseContact(t *testing.T) {
	c, err := ParseContact([]byte(`{"contact_type": "general", "website": " https://example.com "}`))

	require.NoError(t, err)
	assert.Equal(t, ContactTypeGeneral, c.ContactType)
	assert.Equal(t, "https://example.com", c.Website)

	_, err = ParseContact([]byte(`{"contact_type": "general"}`))
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestParseSource(t *testing.T) {
	_, err := ParseSource([]byte(`{"source": "source", "id": "has space", "data": {}}`))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Source", verr.Model)
	assert.Equal(t, []string{"id"}, verr.Fields())
}
