package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-api/internal/shared/response"
)

// InternalErrorMessage is the 500 message when the error is not exposed.
const InternalErrorMessage = "Internal server error"

// AbortWithError records err (with the current stack) for ErrorHandler and
// stops the handler chain. Handlers use it for every unexpected error.
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err).SetMeta(string(debug.Stack()))
	c.Abort()
}

// ErrorHandler is the centralized 500 responder. It runs after the handlers
// and answers only when nothing has been written yet.
//
// Outside production the body carries the error message and the stack
// captured by AbortWithError; in production both are hidden.
func ErrorHandler(exposeStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		stack, _ := last.Meta.(string)

		log.Error().
			Str("request_id", c.GetString(ContextKeyRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Err(last.Err).
			Msg("request failed")

		if c.Writer.Written() {
			return
		}

		if !exposeStack {
			response.InternalServerError(c, InternalErrorMessage, "")
			return
		}
		response.InternalServerError(c, last.Err.Error(), stack)
	}
}
