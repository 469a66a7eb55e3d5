package api

import (
	"errors"
	"net/http"

	"github.com/coachdesk/dashboard/coaching"
	"github.com/coachdesk/dashboard/storage"
	"github.com/gin-gonic/gin"
)

var notFound = []error{
	coaching.ErrBookingNotFound,
	coaching.ErrClientNotFound,
	coaching.ErrLeadNotFound,
	coaching.ErrReminderNotFound,
	coaching.ErrTestimonialNotFound,
}

var conflicts = []error{
	coaching.ErrDuplicateClient,
	coaching.ErrAlreadyClient,
}

var badRequests = []error{
	coaching.ErrInvalidInput,
	coaching.ErrInvalidDiscount,
	coaching.ErrInvalidService,
	coaching.ErrPriceMismatch,
	storage.ErrMalformedBlob,
}

// respondError records err on the context and writes the matching status.
// Anything unknown is answered with a 500 and the fallback message so
// storage details do not leak to the client.
func respondError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	for _, target := range notFound {
		if errors.Is(err, target) {
			c.JSON(http.StatusNotFound, gin.H{"error": target.Error()})
			return
		}
	}

	for _, target := range conflicts {
		if errors.Is(err, target) {
			c.JSON(http.StatusConflict, gin.H{"error": target.Error()})
			return
		}
	}

	for _, target := range badRequests {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if errors.Is(err, coaching.ErrConfirmationRequired) {
		c.JSON(http.StatusPreconditionRequired, gin.H{"error": "confirmation required, repeat with ?confirm=true"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return false
	}
	return true
}

func confirmed(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}

func idParam(c *gin.Context) coaching.ID {
	return coaching.ID(c.Param("id"))
}
