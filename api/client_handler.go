package api

import (
	"context"
	"net/http"

	"github.com/coachdesk/dashboard/analytics"
	"github.com/coachdesk/dashboard/coaching"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=client_handler.go -destination=mocks/mock_client_handler.go -package=mock_api

type ClientService interface {
	ListClients(ctx context.Context) []analytics.ClientSummary
	FindClient(ctx context.Context, id coaching.ID) (analytics.ClientSummary, error)
	CreateClient(ctx context.Context, in coaching.ClientInput) (coaching.Client, error)
	UpdateClient(ctx context.Context, id coaching.ID, in coaching.ClientInput) (coaching.Client, error)
	AddRankUpdate(ctx context.Context, id coaching.ID, in coaching.RankUpdateInput) (coaching.Client, error)
	DeleteClient(ctx context.Context, id coaching.ID, confirmed bool) error
}

type ClientHandler struct {
	service ClientService
}

func NewClientHandler(service ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

func (h *ClientHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.POST("/:id/ranks", h.AddRank)
	rg.DELETE("/:id", h.Delete)
}

func (h *ClientHandler) List(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.ListClients(c.Request.Context()))
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	client, err := h.service.FindClient(c.Request.Context(), idParam(c))

	if err != nil {
		respondError(c, err, "failed to fetch client")
		return
	}

	c.IndentedJSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var in coaching.ClientInput

	if !bindJSON(c, &in) {
		return
	}

	created, err := h.service.CreateClient(c.Request.Context(), in)

	if err != nil {
		respondError(c, err, "failed to create client")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var in coaching.ClientInput

	if !bindJSON(c, &in) {
		return
	}

	updated, err := h.service.UpdateClient(c.Request.Context(), idParam(c), in)

	if err != nil {
		respondError(c, err, "failed to update client")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *ClientHandler) AddRank(c *gin.Context) {
	var in coaching.RankUpdateInput

	if !bindJSON(c, &in) {
		return
	}

	updated, err := h.service.AddRankUpdate(c.Request.Context(), idParam(c), in)

	if err != nil {
		respondError(c, err, "failed to record rank update")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	err := h.service.DeleteClient(c.Request.Context(), idParam(c), confirmed(c))

	if err != nil {
		respondError(c, err, "failed to delete client")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "client deleted"})
}
