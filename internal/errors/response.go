package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body. Message carries the raw
// underlying failure message; there is no finer-grained classification.
type ErrorResponse struct {
	Error   string `json:"error"`   // error code (codes.go)
	Message string `json:"message"` // underlying failure detail
}

func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

// InternalError reports an operation failure with the underlying error
// message attached as the detail.
func InternalError(c *gin.Context, err error) {
	message := "internal server error"
	if err != nil {
		message = err.Error()
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}
