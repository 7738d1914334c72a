// Package handler exposes the HTTP surface. Handlers bind and validate
// requests, delegate to the service layer and translate its sentinel
// errors into status codes.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gil10101/sokin-sub000/internal/finance"
	"github.com/gil10101/sokin-sub000/internal/middleware"
)

// respondServiceError maps service-layer sentinel errors onto HTTP
// status codes. Anything unrecognized is a 500 with a generic message
// so internal details never leak to clients.
func respondServiceError(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case msg == "forbidden":
		middleware.RespondWithError(c, http.StatusForbidden, "You can only access your own records")
	case strings.HasSuffix(msg, "not found"):
		middleware.RespondWithError(c, http.StatusNotFound, msg)
	case msg == "invalid credentials" || msg == "invalid token":
		middleware.RespondWithError(c, http.StatusUnauthorized, msg)
	case msg == "email already registered":
		middleware.RespondWithError(c, http.StatusConflict, msg)
	case errors.Is(err, finance.ErrInsufficientShares) || isValidationMessage(msg):
		middleware.RespondWithError(c, http.StatusBadRequest, msg)
	default:
		middleware.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func isValidationMessage(msg string) bool {
	switch {
	case strings.HasPrefix(msg, "invalid "),
		strings.HasPrefix(msg, "no position in "),
		strings.Contains(msg, "must be"),
		strings.Contains(msg, "cannot be"),
		strings.Contains(msg, "require"),
		msg == "bill already paid":
		return true
	}
	return false
}
