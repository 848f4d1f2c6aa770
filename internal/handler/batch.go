package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"vaccine-feed-ingest-schema/internal/batch"
	"vaccine-feed-ingest-schema/internal/service"

	"github.com/gin-gonic/gin"
)

// BatchHandler handles NDJSON batch validation requests
type BatchHandler struct {
	service      BatchService
	maxLineBytes int
}

// BatchService interface for dependency injection
type BatchService interface {
	ValidateBatch(context.Context, io.Reader, batch.Kind, int) (*batch.Report, error)
}

// NewBatchHandler creates a new batch handler. maxLineBytes bounds a single
// record; zero selects the batch package default.
func NewBatchHandler(svc BatchService, maxLineBytes int) *BatchHandler {
	return &BatchHandler{service: svc, maxLineBytes: maxLineBytes}
}

// ValidateBatch handles POST /v1/locations/validate-batch requests. The
// optional "kind" query parameter selects location (default) or import
// records. Any invalid record turns the response into a 422 carrying the
// full report.
func (h *BatchHandler) ValidateBatch(c *gin.Context) {
	kind, err := batch.ParseKind(c.DefaultQuery("kind", string(batch.KindLocation)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameter 'kind'"})
		return
	}

	report, err := h.service.ValidateBatch(c.Request.Context(), c.Request.Body, kind, h.maxLineBytes)
	if err != nil {
		if errors.Is(err, service.ErrEmptyBody) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "request body cannot be empty"})
			return
		}
		writeError(c, err)
		return
	}

	status := http.StatusOK
	if !report.OK() {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, report)
}
