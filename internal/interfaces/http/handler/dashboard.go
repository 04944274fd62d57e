package handler

import (
	"github.com/gemba/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles the fiscal-period dashboard endpoints
type DashboardHandler struct {
	BaseHandler
	dashboardService *report.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *report.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get assembles the dashboard for the requested period and scope
func (h *DashboardHandler) Get(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	var query report.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}

	dashboard, err := h.dashboardService.Get(c.Request.Context(), tenantID, userID, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dashboard)
}

// ListPeriods returns every selectable fiscal period up to the current one
func (h *DashboardHandler) ListPeriods(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}

	periods, err := h.dashboardService.ListPeriods(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, periods)
}
