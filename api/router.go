package api

import (
	"net/http"

	"github.com/coachdesk/dashboard/charts"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Services is everything the HTTP surface needs from the dashboard.
type Services interface {
	BookingService
	ClientService
	LeadService
	ReminderService
	TestimonialService
	DashboardService
	WorkspaceService
}

type RouterConfig struct {
	Metrics bool
	Charts  charts.Config
}

func NewRouter(svc Services, log *zap.Logger, config RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	if config.Metrics {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := r.Group("/api/v1")

	NewDashboardHandler(svc, config.Charts).Register(v1.Group("/dashboard"))
	NewBookingHandler(svc).Register(v1.Group("/bookings"))
	NewClientHandler(svc).Register(v1.Group("/clients"))
	NewLeadHandler(svc).Register(v1.Group("/leads"))
	NewReminderHandler(svc).Register(v1.Group("/reminders"))
	NewTestimonialHandler(svc).Register(v1.Group("/testimonials"))
	NewWorkspaceHandler(svc).Register(v1.Group("/workspace"))

	return r
}
