package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tzsched/internal/models"
	"github.com/joshua-takyi/tzsched/internal/timeconv"
)

// respondError writes 4xx responses for caller mistakes. Anything else is
// attached to the context for middleware.ErrorHandler, which logs it and
// answers with a generic 500.
func respondError(c *gin.Context, err error) {
	requestID, _ := c.Get("request_id")
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrInvalidTimeRange),
		errors.Is(err, models.ErrDuplicateName),
		errors.Is(err, timeconv.ErrInvalidTimezone),
		errors.Is(err, timeconv.ErrInvalidDateTime):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error(), requestID))
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(err.Error(), requestID))
	default:
		_ = c.Error(err)
	}
}

func badRequest(c *gin.Context, message string) {
	requestID, _ := c.Get("request_id")
	c.JSON(http.StatusBadRequest, models.ErrorResponse(message, requestID))
}
