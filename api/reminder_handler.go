package api

import (
	"context"
	"net/http"

	"github.com/coachdesk/dashboard/coaching"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=reminder_handler.go -destination=mocks/mock_reminder_handler.go -package=mock_api

type ReminderService interface {
	ListReminders(ctx context.Context) []coaching.Reminder
	CreateReminder(ctx context.Context, in coaching.ReminderInput) (coaching.Reminder, error)
	ToggleReminder(ctx context.Context, id coaching.ID) (coaching.Reminder, error)
	DeleteReminder(ctx context.Context, id coaching.ID) error
}

type ReminderHandler struct {
	service ReminderService
}

func NewReminderHandler(service ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

func (h *ReminderHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PUT("/:id/toggle", h.Toggle)
	rg.DELETE("/:id", h.Delete)
}

func (h *ReminderHandler) List(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.ListReminders(c.Request.Context()))
}

func (h *ReminderHandler) Create(c *gin.Context) {
	var in coaching.ReminderInput

	if !bindJSON(c, &in) {
		return
	}

	created, err := h.service.CreateReminder(c.Request.Context(), in)

	if err != nil {
		respondError(c, err, "failed to create reminder")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ReminderHandler) Toggle(c *gin.Context) {
	reminder, err := h.service.ToggleReminder(c.Request.Context(), idParam(c))

	if err != nil {
		respondError(c, err, "failed to update reminder")
		return
	}

	c.IndentedJSON(http.StatusOK, reminder)
}

func (h *ReminderHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteReminder(c.Request.Context(), idParam(c)); err != nil {
		respondError(c, err, "failed to delete reminder")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "reminder deleted"})
}
