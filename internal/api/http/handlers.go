package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solvekit/numerics/internal/api/middleware"
	"github.com/solvekit/numerics/internal/infrastructure/monitoring"
	"github.com/solvekit/numerics/internal/service"
	"github.com/solvekit/numerics/internal/shared/types"
	"github.com/solvekit/numerics/internal/shared/utils"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "SolveKit Numerics (Go)",
		"version": "0.2.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	if categoryStr != "" {
		if err := utils.ValidateCategory(categoryStr, false); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// DiscoverServices discovers relevant services for a query
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateQuery(req.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	services := h.registry.Discover(req.Query, limit)

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"services": services,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := &types.Context{SessionID: req.SessionID}
	if rid := middleware.GetRequestID(c); rid != "" {
		ctx.RequestID = &rid
	}

	timer := monitoring.NewTimer(h.metrics, req.ToolID)
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, ctx)
	if err != nil {
		timer.Stop("error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := "success"
	if !result.Success {
		status = "failure"
	}
	timer.Stop(status)

	c.JSON(http.StatusOK, result)
}
