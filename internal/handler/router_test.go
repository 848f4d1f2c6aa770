package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vaccine-feed-ingest-schema/internal/metrics"
	"vaccine-feed-ingest-schema/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routerLocation = `{"id": "source:id", "source": {"source": "source", "id": "id", "data": {"id": "id"}}}`

func newTestRouter(maxBody int64, maxLine int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	registry := metrics.NewRegistry()
	svc := service.NewValidationService(registry.Metrics)

	return NewRouter(Router{
		Validation:   NewValidationHandler(svc),
		Batch:        NewBatchHandler(svc, maxLine),
		Schema:       NewSchemaHandler(svc),
		Metrics:      registry.Handler(),
		MaxBodyBytes: maxBody,
	})
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedInBody string
	}{
		{
			name:           "health",
			method:         http.MethodGet,
			path:           "/health",
			expectedStatus: http.StatusOK,
			expectedInBody: `"status":"ok"`,
		},
		{
			name:           "valid location",
			method:         http.MethodPost,
			path:           "/v1/locations/validate",
			body:           routerLocation,
			expectedStatus: http.StatusOK,
			expectedInBody: `"valid":true`,
		},
		{
			name:           "location with whitespace is normalized",
			method:         http.MethodPost,
			path:           "/v1/locations/validate",
			body:           `{"id": "source:id", "name": "  Pharmacy  ", "source": {"source": "source", "id": "id", "data": {}}}`,
			expectedStatus: http.StatusOK,
			expectedInBody: `"name":"Pharmacy"`,
		},
		{
			name:           "invalid location",
			method:         http.MethodPost,
			path:           "/v1/locations/validate",
			body:           `{"id": "other:id", "source": {"source": "source", "id": "id", "data": {}}}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedInBody: `"rule":"source_prefix"`,
		},
		{
			name:           "unknown field",
			method:         http.MethodPost,
			path:           "/v1/locations/validate",
			body:           `{"id": "source:id", "extra": 1, "source": {"source": "source", "id": "id", "data": {}}}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedInBody: `"rule":"extra"`,
		},
		{
			name:           "empty body",
			method:         http.MethodPost,
			path:           "/v1/locations/validate",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "import location",
			method:         http.MethodPost,
			path:           "/v1/import-locations/validate",
			body:           `{"source_uid": "source:id", "source_name": "source", "import_json": ` + routerLocation + `}`,
			expectedStatus: http.StatusOK,
			expectedInBody: `"source_uid":"source:id"`,
		},
		{
			name:           "derive import location",
			method:         http.MethodPost,
			path:           "/v1/import-locations",
			body:           routerLocation,
			expectedStatus: http.StatusOK,
			expectedInBody: `"content_hash":`,
		},
		{
			name:           "batch",
			method:         http.MethodPost,
			path:           "/v1/locations/validate-batch",
			body:           routerLocation + "\n" + `{"id": "x"}` + "\n",
			expectedStatus: http.StatusUnprocessableEntity,
			expectedInBody: `"total":2`,
		},
		{
			name:           "schema",
			method:         http.MethodGet,
			path:           "/v1/schemas/normalized_location",
			expectedStatus: http.StatusOK,
			expectedInBody: `"$schema": "http://json-schema.org/draft-07/schema#"`,
		},
		{
			name:           "unknown schema",
			method:         http.MethodGet,
			path:           "/v1/schemas/bogus",
			expectedStatus: http.StatusNotFound,
		},
	}

	r := newTestRouter(1<<20, 0)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Execute
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedInBody)

			_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
			assert.NoError(t, err)
		})
	}

	t.Run("metrics count validations", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `vaccine_schema_validation_records_total{kind="location",result="invalid"}`)
		assert.Contains(t, w.Body.String(), `vaccine_schema_validation_records_total{kind="import",result="valid"} 1`)
	})
}

func TestRouter_BodyLimit(t *testing.T) {
	r := newTestRouter(16, 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/locations/validate", strings.NewReader(routerLocation)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRouter_BatchLineLimit(t *testing.T) {
	// Setup
	r := newTestRouter(1<<20, 100)
	body := routerLocation + "\n" + `{"id": "` + strings.Repeat("x", 250) + `"}` + "\n"

	// Execute
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/locations/validate-batch", strings.NewReader(body)))

	// Assert
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var report struct {
		Total   int `json:"total"`
		Valid   int `json:"valid"`
		Invalid []struct {
			Line   int `json:"line"`
			Errors []struct {
				Rule    string `json:"rule"`
				Message string `json:"message"`
			} `json:"errors"`
		} `json:"invalid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Valid)
	require.Len(t, report.Invalid, 1)
	assert.Equal(t, 2, report.Invalid[0].Line)
	require.Len(t, report.Invalid[0].Errors, 1)
	assert.Equal(t, "json", report.Invalid[0].Errors[0].Rule)
	assert.Equal(t, "line exceeds 100 bytes", report.Invalid[0].Errors[0].Message)
}

func TestRouter_KeepsCallerRequestID(t *testing.T) {
	r := newTestRouter(0, 0)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, id, w.Header().Get(RequestIDHeader))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
