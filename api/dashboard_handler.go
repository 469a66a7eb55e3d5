package api

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/coachdesk/dashboard/analytics"
	"github.com/coachdesk/dashboard/charts"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=dashboard_handler.go -destination=mocks/mock_dashboard_handler.go -package=mock_api

type DashboardService interface {
	Dashboard(ctx context.Context) analytics.Dashboard
	Projections(ctx context.Context) analytics.Projection
	Calendar(ctx context.Context, year int, month time.Month) ([]analytics.CalendarDay, error)
}

type DashboardHandler struct {
	service DashboardService
	charts  charts.Config
}

func NewDashboardHandler(service DashboardService, config charts.Config) *DashboardHandler {
	return &DashboardHandler{service: service, charts: config}
}

func (h *DashboardHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.Overview)
	rg.GET("/projections", h.Projections)
	rg.GET("/calendar", h.Calendar)
	rg.GET("/charts/earnings", h.EarningsChart)
	rg.GET("/charts/leads", h.LeadsChart)
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.Dashboard(c.Request.Context()))
}

func (h *DashboardHandler) Projections(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.Projections(c.Request.Context()))
}

// Calendar expects ?month=YYYY-MM.
func (h *DashboardHandler) Calendar(c *gin.Context) {
	month, err := time.Parse("2006-01", c.Query("month"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse month"})
		return
	}

	days, err := h.service.Calendar(c.Request.Context(), month.Year(), month.Month())

	if err != nil {
		respondError(c, err, "failed to build calendar")
		return
	}

	c.IndentedJSON(http.StatusOK, days)
}

func (h *DashboardHandler) EarningsChart(c *gin.Context) {
	d := h.service.Dashboard(c.Request.Context())

	var buf bytes.Buffer
	if err := charts.RenderEarnings(&buf, d.YearToDate, h.charts); err != nil {
		respondError(c, err, "failed to render chart")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *DashboardHandler) LeadsChart(c *gin.Context) {
	d := h.service.Dashboard(c.Request.Context())

	var buf bytes.Buffer
	if err := charts.RenderLeadSources(&buf, d.LeadSources, h.charts); err != nil {
		respondError(c, err, "failed to render chart")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
