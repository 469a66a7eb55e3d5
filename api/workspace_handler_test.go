package api_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/coachdesk/dashboard/api"
	mock_api "github.com/coachdesk/dashboard/api/mocks"
	"github.com/coachdesk/dashboard/coaching"
	"github.com/coachdesk/dashboard/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupWorkspaceRouter(t *testing.T) (*gin.Engine, *mock_api.MockWorkspaceService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	mockService := mock_api.NewMockWorkspaceService(ctrl)
	api.NewWorkspaceHandler(mockService).Register(router.Group("/api/v1/workspace"))

	return router, mockService
}

func TestNotes(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		router, mockService := setupWorkspaceRouter(t)

		mockService.EXPECT().Notes(gomock.Any()).Return(coaching.Notes{Availability: "Weeknights", General: "Raise prices in May"}).Times(1)

		w := serve(router, "GET", "/api/v1/workspace/notes", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"availability":"Weeknights","general":"Raise prices in May"}`, w.Body.String())
	})

	t.Run("update", func(t *testing.T) {
		router, mockService := setupWorkspaceRouter(t)

		notes := coaching.Notes{Availability: "Weekends"}
		mockService.EXPECT().UpdateNotes(gomock.Any(), notes).Return(notes, nil).Times(1)

		w := serve(router, "PUT", "/api/v1/workspace/notes", []byte(`{"availability":"Weekends"}`))

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"availability":"Weekends","general":""}`, w.Body.String())
	})
}

func TestSettings(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		router, mockService := setupWorkspaceRouter(t)

		settings := coaching.DefaultSettings()
		settingsJson, _ := json.Marshal(settings)
		mockService.EXPECT().Settings(gomock.Any()).Return(settings).Times(1)

		w := serve(router, "GET", "/api/v1/workspace/settings", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(settingsJson), w.Body.String())
	})

	t.Run("update rejected", func(t *testing.T) {
		router, mockService := setupWorkspaceRouter(t)

		err := fmt.Errorf("%w: weeklyGoal must be at most 168", coaching.ErrInvalidInput)
		mockService.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Return(coaching.Settings{}, err).Times(1)

		w := serve(router, "PUT", "/api/v1/workspace/settings", []byte(`{"weeklyGoal":200}`))

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid input: weeklyGoal must be at most 168"}`, w.Body.String())
	})
}

func TestExport(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, mockService := setupWorkspaceRouter(t)

		raw := []byte(`{"bookings":[]}`)
		mockService.EXPECT().Export(gomock.Any()).Return(raw, "coaching-data-2026-03-18.json", nil).Times(1)

		w := serve(router, "GET", "/api/v1/workspace/export", nil)

		assert.Equal(t, 200, w.Code)
		assert.Equal(t, `attachment; filename="coaching-data-2026-03-18.json"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, string(raw), w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		router, mockService := setupWorkspaceRouter(t)

		mockService.EXPECT().Export(gomock.Any()).Return(nil, "", assert.AnError).Times(1)

		w := serve(router, "GET", "/api/v1/workspace/export", nil)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to export data"}`, w.Body.String())
	})
}

func TestImport(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, mockService := setupWorkspaceRouter(t)

		raw := []byte(`{"bookings":[],"clients":[]}`)
		mockService.EXPECT().Import(gomock.Any(), raw).Return(nil).Times(1)

		w := serve(router, "POST", "/api/v1/workspace/import", raw)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"data imported"}`, w.Body.String())
	})

	t.Run("malformed", func(t *testing.T) {
		router, mockService := setupWorkspaceRouter(t)

		err := fmt.Errorf("%w: expected a JSON object", storage.ErrMalformedBlob)
		mockService.EXPECT().Import(gomock.Any(), []byte(`[1,2]`)).Return(err).Times(1)

		w := serve(router, "POST", "/api/v1/workspace/import", []byte(`[1,2]`))

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"malformed data file: expected a JSON object"}`, w.Body.String())
	})
}
