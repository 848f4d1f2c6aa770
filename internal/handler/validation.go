package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"vaccine-feed-ingest-schema/internal/validate"
	"vaccine-feed-ingest-schema/load"
	"vaccine-feed-ingest-schema/location"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ValidationHandler handles single record validation requests
type ValidationHandler struct {
	service ValidationService
}

// ValidationService interface for dependency injection
type ValidationService interface {
	ValidateLocation(context.Context, []byte) (*location.NormalizedLocation, error)
	ValidateImportLocation(context.Context, []byte) (*load.ImportSourceLocation, error)
	DeriveImportLocation(context.Context, []byte) (*load.ImportSourceLocation, error)
}

// NewValidationHandler creates a new validation handler
func NewValidationHandler(svc ValidationService) *ValidationHandler {
	return &ValidationHandler{service: svc}
}

// ValidateLocation handles POST /v1/locations/validate requests
func (h *ValidationHandler) ValidateLocation(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	loc, err := h.service.ValidateLocation(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "record": loc})
}

// ValidateImportLocation handles POST /v1/import-locations/validate requests
func (h *ValidationHandler) ValidateImportLocation(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	rec, err := h.service.ValidateImportLocation(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "record": rec})
}

// DeriveImportLocation handles POST /v1/import-locations requests. The body is
// a normalized location; the response is the import record built from it.
func (h *ValidationHandler) DeriveImportLocation(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	rec, err := h.service.DeriveImportLocation(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

func readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body cannot be empty"})
		return nil, false
	}
	return body, true
}

// writeError maps service errors to responses. Invalid records are 422 with
// every violation listed.
func writeError(c *gin.Context, err error) {
	var (
		verr    *validate.Error
		tooLong *http.MaxBytesError
	)

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"valid":  false,
			"model":  verr.Model,
			"errors": verr.Errors,
		})
	case errors.As(err, &tooLong):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
	case errors.Is(err, context.Canceled):
		c.AbortWithStatus(499)
	default:
		_ = c.Error(err)
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
