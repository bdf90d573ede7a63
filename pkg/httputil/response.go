package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-console/pkg/errors"
)

// Envelope is the wire shape of every successful API response.
type Envelope struct {
	Data json.RawMessage `json:"data"`
}

// ErrorBody is the wire shape of every failed API response.
type ErrorBody struct {
	Message string `json:"message"`
}

// RespondWithData sends payload wrapped in the data envelope.
func RespondWithData(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, gin.H{"data": payload})
}

// RespondWithError maps an error to an HTTP status and error body.
func RespondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	if appErr, ok := err.(*errors.AppError); ok {
		status = statusFor(appErr.Code)
		message = appErr.Message
	}

	c.JSON(status, ErrorBody{Message: message})
}

func statusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrBadRequest:
		return http.StatusBadRequest
	case errors.ErrUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
