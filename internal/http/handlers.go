package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/calder-math/dualgrad/internal/infrastructure/monitoring"
	"github.com/calder-math/dualgrad/internal/service"
	"github.com/calder-math/dualgrad/internal/types"
	"github.com/calder-math/dualgrad/internal/utils"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry    *service.Registry
	metrics     *monitoring.Metrics
	familyCount func() int
}

// NewHandlers creates a new handler set. familyCount reports the number of
// defined families for health and metrics output; it may be nil.
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, familyCount func() int) *Handlers {
	return &Handlers{
		registry:    registry,
		metrics:     metrics,
		familyCount: familyCount,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Dualgrad Calculus Service",
		"version": "0.1.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	resp := gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	}
	if h.familyCount != nil {
		resp["families_defined"] = h.familyCount()
	}
	c.JSON(http.StatusOK, resp)
}

// ListServices lists registered services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	// Validate category if provided
	if categoryStr != "" {
		if err := utils.ValidateCategory(categoryStr, false); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
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
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateQuery(req.Query); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	services := h.registry.Discover(req.Query, 5)

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"services": services,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateParamsDepth(req.Params, utils.MaxParamsDepth); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, req.Context)
	if err != nil {
		h.metrics.RecordToolCall("calculus", req.ToolID, "error", time.Since(start))
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	status := "success"
	if !result.Success {
		status = "failure"
	}
	h.metrics.RecordToolCall("calculus", req.ToolID, status, time.Since(start))

	if h.familyCount != nil {
		h.metrics.SetFamiliesDefined(h.familyCount())
	}

	c.JSON(http.StatusOK, result)
}

// MetricsSummary reports aggregated metrics as JSON
func (h *Handlers) MetricsSummary(c *gin.Context) {
	snap := h.metrics.Snapshot()

	avgDuration := 0.0
	if snap.RequestCount > 0 {
		avgDuration = snap.TotalDuration / float64(snap.RequestCount)
	}

	c.JSON(http.StatusOK, gin.H{
		"total_requests":       snap.TotalRequests,
		"total_errors":         snap.TotalErrors,
		"families_defined":     snap.FamiliesActive,
		"avg_request_duration": avgDuration,
		"uptime_seconds":       h.metrics.UptimeSeconds(),
	})
}
