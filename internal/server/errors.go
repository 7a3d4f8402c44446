package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mraditya/warungo/internal/apperr"
	"github.com/mraditya/warungo/internal/logging"
)

// statusForError maps the error taxonomy onto HTTP status codes: validation
// failures 400, missing entities 404, stock shortfalls 409, everything else
// (storage faults, rolled-back transactions) 500.
func statusForError(err error) int {
	var validationErr *apperr.ValidationError
	var stockErr *apperr.InsufficientStockError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &stockErr):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs the failure and turns it into an error response; no
// handler swallows an error or substitutes a default payload.
func (s *Server) respondError(c *gin.Context, op string, err error) {
	logging.Log(logging.Fields{
		Service: "warungo",
		Op:      op,
		Status:  "error",
		Message: err.Error(),
	})

	status := statusForError(err)

	var stockErr *apperr.InsufficientStockError
	if errors.As(err, &stockErr) {
		c.JSON(status, gin.H{
			"error":     stockErr.Error(),
			"product":   stockErr.ProductName,
			"available": stockErr.Available,
			"requested": stockErr.Requested,
		})
		return
	}

	if status == http.StatusInternalServerError {
		// Internal details stay in the log.
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func (s *Server) bindError(c *gin.Context, op string, err error) {
	s.respondError(c, op, &apperr.ValidationError{Message: err.Error()})
}
