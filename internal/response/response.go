package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorDetail is the error payload shape shared by all content endpoints.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// ErrorResponseWithMessage sends an error response with a short text detail
func ErrorResponseWithMessage(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorDetail{
		Detail: message,
	})
}

// NotFoundError sends a 404 error
func NotFoundError(c *gin.Context, message string) {
	ErrorResponseWithMessage(c, http.StatusNotFound, message)
}

// InternalServerError sends a 500 error
func InternalServerError(c *gin.Context, message string) {
	ErrorResponseWithMessage(c, http.StatusInternalServerError, message)
}
