package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nasibcs/uniadmin/internal/app/models/dto"
	"github.com/nasibcs/uniadmin/internal/app/services"
	"github.com/nasibcs/uniadmin/internal/middleware"
)

// DashboardController handles dashboard aggregates
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetSummary retrieves record counts per collection
// @Summary Get dashboard summary
// @Description Retrieves the number of records in each collection
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardSummary} "Summary retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard/summary [get]
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	summary, err := c.dashboardService.GetSummary(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      summary,
		Timestamp: time.Now(),
	})
}
