package handlers

import (
	"net/http"
	"time"

	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	portssvc "github.com/budgetbuddy/bb_backend/internal/core/ports/services"
	"github.com/budgetbuddy/bb_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for aggregate reporting.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: ds,
	}
}

// registerDashboardRoutes registers all dashboard-related routes.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.getStats)
		dashboard.GET("/charts", h.getCharts)
	}
}

// getStats godoc
// @Summary Dashboard statistics
// @Description Aggregates all of the user's transactions into totals, category breakdowns and the most recent records
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.DashboardStatsResponse}
// @Failure 401 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context(), userID, 0)
	if err != nil {
		respondError(c, err, "Failed to compute dashboard statistics")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToDashboardStatsResponse(*stats)))
}

// getCharts godoc
// @Summary Dashboard chart series
// @Description Buckets the user's transactions into daily, monthly or yearly periods for charting
// @Tags dashboard
// @Produce json
// @Param period query string false "Bucketing granularity (daily, monthly, yearly)" default(monthly)
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.Envelope{data=dto.ChartSeriesResponse}
// @Failure 400 {object} dto.ErrorEnvelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /dashboard/charts [get]
func (h *dashboardHandler) getCharts(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ChartParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	startDate, endDate, err := parseDateRange(params.StartDate, params.EndDate)
	if err != nil {
		respondBindError(c, err)
		return
	}

	granularity := domain.Granularity(params.Period)
	series, err := h.dashboardService.GetChartSeries(c.Request.Context(), userID, granularity, startDate, endDate)
	if err != nil {
		respondError(c, err, "Failed to compute chart series")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToChartSeriesResponse(granularity, series)))
}

// parseDateRange converts optional YYYY-MM-DD bounds into times. The binding
// layer already validated the format; errors here are a safety net.
func parseDateRange(start, end string) (*time.Time, *time.Time, error) {
	const layout = "2006-01-02"
	var startDate, endDate *time.Time

	if start != "" {
		t, err := time.Parse(layout, start)
		if err != nil {
			return nil, nil, err
		}
		startDate = &t
	}
	if end != "" {
		t, err := time.Parse(layout, end)
		if err != nil {
			return nil, nil, err
		}
		endDate = &t
	}
	return startDate, endDate, nil
}
