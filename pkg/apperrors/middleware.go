package apperrors

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenericMessage is sent for internal and unrecognized failures. The
// real message is never leaked to the client, regardless of
// environment.
const GenericMessage = "An unexpected error occurred, please try again later."

type errorResponse struct {
	Message   string  `json:"message"`
	ErrorCode string  `json:"errorCode,omitempty"`
	Stack     *string `json:"stack"`
}

// ErrorHandler is the terminal stage of every request pipeline: it maps
// the first propagated error to its fixed status code and response
// body. Unrecognized errors become 500s with a generic message. The
// stack field is a string outside production and null in production.
func ErrorHandler(logger *zap.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		status := http.StatusInternalServerError
		resp := errorResponse{Message: GenericMessage}

		var appErr *Error
		if errors.As(last.Err, &appErr) {
			status = appErr.Status
			if status != http.StatusInternalServerError {
				resp.Message = appErr.Message
				resp.ErrorCode = appErr.ErrorCode
			}
		}

		if !production {
			logger.Error("request failed",
				zap.Int("status", status),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(last.Err),
			)
			stack := string(debug.Stack())
			resp.Stack = &stack
		}

		c.JSON(status, resp)
	}
}

// NoRoute responds 404 for any path the router does not know.
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
}
