package handler

import (
	"errors"
	"net/http"

	"vaccine-feed-ingest-schema/internal/jsonschema"

	"github.com/gin-gonic/gin"
)

// SchemaHandler serves the published JSON Schema documents
type SchemaHandler struct {
	service SchemaService
}

// SchemaService interface for dependency injection
type SchemaService interface {
	Schema(name string) ([]byte, error)
}

// NewSchemaHandler creates a new schema handler
func NewSchemaHandler(svc SchemaService) *SchemaHandler {
	return &SchemaHandler{service: svc}
}

// ListSchemas handles GET /v1/schemas requests
func (h *SchemaHandler) ListSchemas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"schemas": jsonschema.Names()})
}

// GetSchema handles GET /v1/schemas/:name requests
func (h *SchemaHandler) GetSchema(c *gin.Context) {
	doc, err := h.service.Schema(c.Param("name"))
	if err != nil {
		if errors.Is(err, jsonschema.ErrUnknownSchema) {
			c.JSON(http.StatusNotFound, gin.H{"error": "schema not found"})
			return
		}
		writeError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/schema+json", doc)
}
