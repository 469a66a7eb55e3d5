package api

import (
	"context"
	"net/http"

	"github.com/coachdesk/dashboard/coaching"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=booking_handler.go -destination=mocks/mock_booking_handler.go -package=mock_api

type BookingService interface {
	ListBookings(ctx context.Context, view coaching.BookingView) ([]coaching.Booking, error)
	FindBooking(ctx context.Context, id coaching.ID) (coaching.Booking, error)
	PackageProgress(ctx context.Context, id coaching.ID) (int, error)
	CreateBooking(ctx context.Context, in coaching.BookingInput) (coaching.Booking, error)
	UpdateBooking(ctx context.Context, id coaching.ID, in coaching.BookingInput) (coaching.Booking, error)
	ToggleBookingComplete(ctx context.Context, id coaching.ID) (coaching.Booking, error)
	DeleteBooking(ctx context.Context, id coaching.ID, confirmed bool) error
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.GET("/:id/progress", h.Progress)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.PUT("/:id/complete", h.ToggleComplete)
	rg.DELETE("/:id", h.Delete)
}

func (h *BookingHandler) List(c *gin.Context) {
	view := coaching.BookingView(c.Query("view"))

	if bookings, err := h.service.ListBookings(c.Request.Context(), view); err != nil {
		respondError(c, err, "failed to retrieve bookings")
	} else {
		c.IndentedJSON(http.StatusOK, bookings)
	}
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	booking, err := h.service.FindBooking(c.Request.Context(), idParam(c))

	if err != nil {
		respondError(c, err, "failed to fetch booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Progress(c *gin.Context) {
	completed, err := h.service.PackageProgress(c.Request.Context(), idParam(c))

	if err != nil {
		respondError(c, err, "failed to fetch package progress")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"completed": completed,
		"total":     coaching.MaxPackageSessions,
	})
}

func (h *BookingHandler) Create(c *gin.Context) {
	var in coaching.BookingInput

	if !bindJSON(c, &in) {
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), in)

	if err != nil {
		respondError(c, err, "failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) Update(c *gin.Context) {
	var in coaching.BookingInput

	if !bindJSON(c, &in) {
		return
	}

	updated, err := h.service.UpdateBooking(c.Request.Context(), idParam(c), in)

	if err != nil {
		respondError(c, err, "failed to update booking")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *BookingHandler) ToggleComplete(c *gin.Context) {
	booking, err := h.service.ToggleBookingComplete(c.Request.Context(), idParam(c))

	if err != nil {
		respondError(c, err, "failed to update booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	err := h.service.DeleteBooking(c.Request.Context(), idParam(c), confirmed(c))

	if err != nil {
		respondError(c, err, "failed to delete booking")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking deleted"})
}
