package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonsphere/service-booking/internal/application"
	"github.com/salonsphere/service-booking/internal/response"
)

// CatalogHandler exposes the public service listings.
type CatalogHandler struct {
	catalog *application.CatalogService
	logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *application.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// RegisterRoutes registers the public catalog routes.
func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/services", h.ListServices)
}

// ListServices handles GET /services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	listings, err := h.catalog.ServiceListings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, listings)
}
