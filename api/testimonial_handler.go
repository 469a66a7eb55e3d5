package api

import (
	"context"
	"net/http"

	"github.com/coachdesk/dashboard/coaching"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=testimonial_handler.go -destination=mocks/mock_testimonial_handler.go -package=mock_api

type TestimonialService interface {
	ListTestimonials(ctx context.Context) []coaching.Testimonial
	CreateTestimonial(ctx context.Context, in coaching.TestimonialInput) (coaching.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id coaching.ID, confirmed bool) error
}

type TestimonialHandler struct {
	service TestimonialService
}

func NewTestimonialHandler(service TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

func (h *TestimonialHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.DELETE("/:id", h.Delete)
}

func (h *TestimonialHandler) List(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.ListTestimonials(c.Request.Context()))
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var in coaching.TestimonialInput

	if !bindJSON(c, &in) {
		return
	}

	created, err := h.service.CreateTestimonial(c.Request.Context(), in)

	if err != nil {
		respondError(c, err, "failed to create testimonial")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	err := h.service.DeleteTestimonial(c.Request.Context(), idParam(c), confirmed(c))

	if err != nil {
		respondError(c, err, "failed to delete testimonial")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "testimonial deleted"})
}
