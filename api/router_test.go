package api_test

import (
	"testing"

	"github.com/coachdesk/dashboard/api"
	mock_api "github.com/coachdesk/dashboard/api/mocks"
	"github.com/coachdesk/dashboard/charts"
	"github.com/coachdesk/dashboard/coaching"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type services struct {
	*mock_api.MockBookingService
	*mock_api.MockClientService
	*mock_api.MockLeadService
	*mock_api.MockReminderService
	*mock_api.MockTestimonialService
	*mock_api.MockDashboardService
	*mock_api.MockWorkspaceService
}

func newServices(ctrl *gomock.Controller) services {
	return services{
		MockBookingService:     mock_api.NewMockBookingService(ctrl),
		MockClientService:      mock_api.NewMockClientService(ctrl),
		MockLeadService:        mock_api.NewMockLeadService(ctrl),
		MockReminderService:    mock_api.NewMockReminderService(ctrl),
		MockTestimonialService: mock_api.NewMockTestimonialService(ctrl),
		MockDashboardService:   mock_api.NewMockDashboardService(ctrl),
		MockWorkspaceService:   mock_api.NewMockWorkspaceService(ctrl),
	}
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("health", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := api.NewRouter(newServices(ctrl), zap.NewNop(), api.RouterConfig{Charts: charts.DefaultConfig()})

		w := serve(router, "GET", "/health", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("routes to services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := newServices(ctrl)
		router := api.NewRouter(svc, zap.NewNop(), api.RouterConfig{Charts: charts.DefaultConfig()})

		svc.MockReminderService.EXPECT().ListReminders(gomock.Any()).Return([]coaching.Reminder{}).Times(1)

		w := serve(router, "GET", "/api/v1/reminders", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("metrics enabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := api.NewRouter(newServices(ctrl), zap.NewNop(), api.RouterConfig{Metrics: true})

		serve(router, "GET", "/health", nil)
		w := serve(router, "GET", "/metrics", nil)

		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `coachdesk_http_requests_total{route="/health",status="200"}`)
	})

	t.Run("metrics disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := api.NewRouter(newServices(ctrl), zap.NewNop(), api.RouterConfig{})

		w := serve(router, "GET", "/metrics", nil)

		assert.Equal(t, 404, w.Code)
	})
}
