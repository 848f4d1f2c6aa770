package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vaccine-feed-ingest-schema/internal/batch"
	"vaccine-feed-ingest-schema/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBatchService is a mock implementation of the BatchService interface
type MockBatchService struct {
	mock.Mock
}

func (m *MockBatchService) ValidateBatch(ctx context.Context, body io.Reader, kind batch.Kind, maxLineBytes int) (*batch.Report, error) {
	args := m.Called(ctx, body, kind, maxLineBytes)
	return args.Get(0).(*batch.Report), args.Error(1)
}

func TestBatchHandler_ValidateBatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		expectedKind   batch.Kind
		mockReport     *batch.Report
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "invalid kind",
			query:          "?kind=vaccine",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "invalid query parameter 'kind'"}`,
		},
		{
			name:           "all records valid",
			expectedKind:   batch.KindLocation,
			mockReport:     &batch.Report{Total: 2, Valid: 2, Invalid: []batch.RecordError{}},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"total": 2, "valid": 2, "invalid": []}`,
		},
		{
			name:         "some records invalid",
			query:        "?kind=import",
			expectedKind: batch.KindImport,
			mockReport: &batch.Report{Total: 2, Valid: 1, Invalid: []batch.RecordError{
				{Line: 2, Message: "1 validation error for ImportSourceLocation"},
			}},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"total": 2, "valid": 1, "invalid": [{"line": 2, "message": "1 validation error for ImportSourceLocation"}]}`,
		},
		{
			name:           "empty batch",
			expectedKind:   batch.KindLocation,
			mockError:      service.ErrEmptyBody,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "request body cannot be empty"}`,
		},
		{
			name:           "body too large",
			expectedKind:   batch.KindLocation,
			mockError:      fmt.Errorf("service: failed to read batch: %w", &http.MaxBytesError{Limit: 10}),
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedBody:   `{"error": "request body too large"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockBatchService)
			handler := NewBatchHandler(mockSvc, 4096)

			if tt.expectedKind != "" {
				mockSvc.On("ValidateBatch", mock.Anything, mock.Anything, tt.expectedKind, 4096).Return(tt.mockReport, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/locations/validate-batch"+tt.query, strings.NewReader("{}\n{}\n"))
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.ValidateBatch(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
