package handler

import (
	"github.com/gin-gonic/gin"

	rosterapp "github.com/gestiserv/backend/internal/application/roster"
	"github.com/gestiserv/backend/internal/domain/roster"
)

// ProviderHandler serves one roster's CRUD endpoints. The server mounts
// two instances, one per provider kind.
type ProviderHandler struct {
	BaseHandler
	service *rosterapp.ProviderService
	kind    roster.Kind
}

// NewProviderHandler creates a provider handler for a roster
func NewProviderHandler(service *rosterapp.ProviderService, kind roster.Kind) *ProviderHandler {
	return &ProviderHandler{
		service: service,
		kind:    kind,
	}
}

// RegisterRoutes registers the roster routes, e.g. /instrumentadoras
func (h *ProviderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/" + h.kind.String() + "s")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List returns every provider of the roster ordered by name
func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.service.List(c.Request.Context(), h.kind)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, providers)
}

// Get returns a single provider
func (h *ProviderHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}

	provider, err := h.service.GetByID(c.Request.Context(), h.kind, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, provider)
}

// Create registers a new provider
func (h *ProviderHandler) Create(c *gin.Context) {
	var req rosterapp.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	provider, err := h.service.Create(c.Request.Context(), h.kind, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, provider)
}

// Update replaces a provider's contact information
func (h *ProviderHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}

	var req rosterapp.UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	provider, err := h.service.Update(c.Request.Context(), h.kind, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, provider)
}

// Delete removes a provider. Responds 409 when service records still
// reference it.
func (h *ProviderHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), h.kind, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
