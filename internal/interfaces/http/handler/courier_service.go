package handler

import (
	"github.com/gin-gonic/gin"

	billingapp "github.com/gestiserv/backend/internal/application/billing"
)

// CourierServiceHandler serves the courier record endpoints
type CourierServiceHandler struct {
	BaseHandler
	service *billingapp.CourierRecordService
}

// NewCourierServiceHandler creates a new CourierServiceHandler
func NewCourierServiceHandler(service *billingapp.CourierRecordService) *CourierServiceHandler {
	return &CourierServiceHandler{service: service}
}

// RegisterRoutes registers the record routes under /servicios/mensajeros
func (h *CourierServiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/servicios/mensajeros")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/batch/plan", h.PlanBatch)
	g.POST("/batch/execute", h.ExecuteBatch)
	g.GET("/totales", h.Totals)
}

// List returns the filtered listing
func (h *CourierServiceHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Get returns a single record
func (h *CourierServiceHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}

	record, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Create records a new courier delivery
func (h *CourierServiceHandler) Create(c *gin.Context) {
	var req billingapp.CreateCourierServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	record, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// Update replaces a record's fields
func (h *CourierServiceHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}

	var req billingapp.UpdateCourierServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	record, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete removes a record
func (h *CourierServiceHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// PlanBatch returns the confirmation plan for a bulk status transition
func (h *CourierServiceHandler) PlanBatch(c *gin.Context) {
	var req billingapp.BatchPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	plan, err := h.service.PlanBatch(c.Request.Context(), c.Request.URL.Query(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, plan)
}

// ExecuteBatch runs a confirmed bulk status transition
func (h *CourierServiceHandler) ExecuteBatch(c *gin.Context) {
	var req billingapp.BatchExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.service.ExecuteBatch(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Totals returns the per-provider totals report for the filtered view
func (h *CourierServiceHandler) Totals(c *gin.Context) {
	totals, err := h.service.Totals(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, totals)
}
