package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vaccine-feed-ingest-schema/internal/jsonschema"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSchemaService is a mock implementation of the SchemaService interface
type MockSchemaService struct {
	mock.Mock
}

func (m *MockSchemaService) Schema(name string) ([]byte, error) {
	args := m.Called(name)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func TestSchemaHandler_GetSchema(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		schema         string
		mockDoc        []byte
		mockError      error
		expectedStatus int
		expectedType   string
	}{
		{
			name:           "known schema",
			schema:         jsonschema.NormalizedLocation,
			mockDoc:        []byte(`{"title": "NormalizedLocation"}`),
			expectedStatus: http.StatusOK,
			expectedType:   "application/schema+json",
		},
		{
			name:           "unknown schema",
			schema:         "bogus",
			mockError:      fmt.Errorf("service: %w", jsonschema.ErrUnknownSchema),
			expectedStatus: http.StatusNotFound,
			expectedType:   "application/json; charset=utf-8",
		},
		{
			name:           "service error",
			schema:         jsonschema.ImportSourceLocation,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedType:   "application/json; charset=utf-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockSchemaService)
			mockSvc.On("Schema", tt.schema).Return(tt.mockDoc, tt.mockError)
			handler := NewSchemaHandler(mockSvc)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/v1/schemas/"+tt.schema, nil)
			c.Params = gin.Params{{Key: "name", Value: tt.schema}}

			// Execute
			handler.GetSchema(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedType, w.Header().Get("Content-Type"))
			if tt.mockDoc != nil {
				assert.Equal(t, string(tt.mockDoc), w.Body.String())
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestSchemaHandler_ListSchemas(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/schemas", nil)

	NewSchemaHandler(new(MockSchemaService)).ListSchemas(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"schemas": ["normalized_location", "import_source_location"]}`, w.Body.String())
}
