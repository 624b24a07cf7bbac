package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-api/internal/shared/response"
)

// Recovery chuyển panic thành 500 {success:false, message, stack?}
func Recovery(exposeStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := string(debug.Stack())

				log.Error().
					Str("request_id", c.GetString(ContextKeyRequestID)).
					Interface("error", rec).
					Str("stack", stack).
					Msg("Panic recovered")

				message := InternalErrorMessage
				if exposeStack {
					message = fmt.Sprintf("%v", rec)
				} else {
					stack = ""
				}

				c.Abort()
				if !c.Writer.Written() {
					response.InternalServerError(c, message, stack)
				}
			}
		}()

		c.Next()
	}
}
