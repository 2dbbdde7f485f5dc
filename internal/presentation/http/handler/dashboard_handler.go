package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/application/service"
	"github.com/platemate/platemate-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetBranchStats handles getting a branch's operational statistics
func (h *DashboardHandler) GetBranchStats(c *gin.Context) {
	branchID, err := uuid.Parse(c.Query("branch_id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID format")
		return
	}

	stats, err := h.dashboardService.GetBranchStats(c.Request.Context(), branchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
