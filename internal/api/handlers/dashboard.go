package handlers

import (
	"net/http"

	"inspection-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin overview
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard handles GET /api/admin/dashboard
// @Summary Admin dashboard
// @Description Counts of users per flag, buildings, this week's assignments, pending requests and inspector responses
// @Tags admin
// @Produce json
// @Success 200 {object} service.DashboardResponse
// @Security BearerAuth
// @Router /api/admin/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.dashboardService.Get()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
