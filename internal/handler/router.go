package handler

import (
	"net/http"

	"vaccine-feed-ingest-schema/internal/logging"

	"github.com/gin-gonic/gin"
)

// Router bundles what NewRouter wires together.
type Router struct {
	Validation   *ValidationHandler
	Batch        *BatchHandler
	Schema       *SchemaHandler
	Metrics      http.Handler
	MaxBodyBytes int64
}

// NewRouter builds the gin engine with every route registered. Metrics is
// optional.
func NewRouter(rt Router) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), logging.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	if rt.Metrics != nil {
		r.GET("/metrics", gin.WrapH(rt.Metrics))
	}

	v1 := r.Group("/v1")
	if rt.MaxBodyBytes > 0 {
		v1.Use(LimitBody(rt.MaxBodyBytes))
	}

	v1.POST("/locations/validate", rt.Validation.ValidateLocation)
	v1.POST("/locations/validate-batch", rt.Batch.ValidateBatch)
	v1.POST("/import-locations", rt.Validation.DeriveImportLocation)
	v1.POST("/import-locations/validate", rt.Validation.ValidateImportLocation)
	v1.GET("/schemas", rt.Schema.ListSchemas)
	v1.GET("/schemas/:name", rt.Schema.GetSchema)

	return r
}
