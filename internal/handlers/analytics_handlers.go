package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles dashboard reporting
type AnalyticsHandler struct {
	common *CommonServices
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(common *CommonServices) *AnalyticsHandler {
	return &AnalyticsHandler{common: common}
}

// @Summary Dashboard metrics
// @Description Clinic counts plus revenue figures derived from every invoice ledger
// @Tags analytics
// @Produce json
// @Success 200 {object} services.DashboardMetrics
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	metrics, err := h.common.Analytics.GetDashboardMetrics(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to compute dashboard metrics", err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
