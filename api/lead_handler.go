package api

import (
	"context"
	"net/http"

	"github.com/coachdesk/dashboard/coaching"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=lead_handler.go -destination=mocks/mock_lead_handler.go -package=mock_api

type LeadService interface {
	ListLeads(ctx context.Context) []coaching.Lead
	CreateLead(ctx context.Context, in coaching.LeadInput) (coaching.Lead, error)
	UpdateLead(ctx context.Context, id coaching.ID, in coaching.LeadInput) (coaching.Lead, error)
	ConvertLead(ctx context.Context, id coaching.ID) (coaching.Client, error)
	DeleteLead(ctx context.Context, id coaching.ID, confirmed bool) error
}

type LeadHandler struct {
	service LeadService
}

func NewLeadHandler(service LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

func (h *LeadHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.POST("/:id/convert", h.Convert)
	rg.DELETE("/:id", h.Delete)
}

func (h *LeadHandler) List(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.ListLeads(c.Request.Context()))
}

func (h *LeadHandler) Create(c *gin.Context) {
	var in coaching.LeadInput

	if !bindJSON(c, &in) {
		return
	}

	created, err := h.service.CreateLead(c.Request.Context(), in)

	if err != nil {
		respondError(c, err, "failed to create lead")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *LeadHandler) Update(c *gin.Context) {
	var in coaching.LeadInput

	if !bindJSON(c, &in) {
		return
	}

	updated, err := h.service.UpdateLead(c.Request.Context(), idParam(c), in)

	if err != nil {
		respondError(c, err, "failed to update lead")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

// Convert turns the lead into a client and answers with the new client.
func (h *LeadHandler) Convert(c *gin.Context) {
	client, err := h.service.ConvertLead(c.Request.Context(), idParam(c))

	if err != nil {
		respondError(c, err, "failed to convert lead")
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *LeadHandler) Delete(c *gin.Context) {
	err := h.service.DeleteLead(c.Request.Context(), idParam(c), confirmed(c))

	if err != nil {
		respondError(c, err, "failed to delete lead")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "lead deleted"})
}
