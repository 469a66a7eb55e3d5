package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coachdesk/dashboard/coaching"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=workspace_handler.go -destination=mocks/mock_workspace_handler.go -package=mock_api

type WorkspaceService interface {
	Notes(ctx context.Context) coaching.Notes
	UpdateNotes(ctx context.Context, notes coaching.Notes) (coaching.Notes, error)
	Settings(ctx context.Context) coaching.Settings
	UpdateSettings(ctx context.Context, in coaching.SettingsInput) (coaching.Settings, error)
	Export(ctx context.Context) ([]byte, string, error)
	Import(ctx context.Context, raw []byte) error
}

type WorkspaceHandler struct {
	service WorkspaceService
}

func NewWorkspaceHandler(service WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{service: service}
}

func (h *WorkspaceHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/notes", h.GetNotes)
	rg.PUT("/notes", h.UpdateNotes)
	rg.GET("/settings", h.GetSettings)
	rg.PUT("/settings", h.UpdateSettings)
	rg.GET("/export", h.Export)
	rg.POST("/import", h.Import)
}

func (h *WorkspaceHandler) GetNotes(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.Notes(c.Request.Context()))
}

func (h *WorkspaceHandler) UpdateNotes(c *gin.Context) {
	var notes coaching.Notes

	if !bindJSON(c, &notes) {
		return
	}

	saved, err := h.service.UpdateNotes(c.Request.Context(), notes)

	if err != nil {
		respondError(c, err, "failed to save notes")
		return
	}

	c.IndentedJSON(http.StatusOK, saved)
}

func (h *WorkspaceHandler) GetSettings(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.Settings(c.Request.Context()))
}

func (h *WorkspaceHandler) UpdateSettings(c *gin.Context) {
	var in coaching.SettingsInput

	if !bindJSON(c, &in) {
		return
	}

	saved, err := h.service.UpdateSettings(c.Request.Context(), in)

	if err != nil {
		respondError(c, err, "failed to save settings")
		return
	}

	c.IndentedJSON(http.StatusOK, saved)
}

// Export answers with the whole state as a downloadable JSON file.
func (h *WorkspaceHandler) Export(c *gin.Context) {
	raw, name, err := h.service.Export(c.Request.Context())

	if err != nil {
		respondError(c, err, "failed to export data")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/json", raw)
}

// Import replaces the whole state with the JSON document in the body.
func (h *WorkspaceHandler) Import(c *gin.Context) {
	raw, err := c.GetRawData()

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	if err := h.service.Import(c.Request.Context(), raw); err != nil {
		respondError(c, err, "failed to import data")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "data imported"})
}
