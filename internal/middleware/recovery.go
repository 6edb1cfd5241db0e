package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fxpulse/internal/domain/dto"
	"github.com/guttosm/fxpulse/internal/logger"
)

// RecoveryMiddleware returns a Gin middleware that recovers from panics,
// logs the panic value with its stack trace, and returns a standardized JSON
// error response.
//
// The panic value only goes to the log. Clients get the request id so the
// log entry can be found.
//
// Example:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RecoveryMiddleware())
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			rid := c.GetString(RequestIDKey)
			logger.L().Error().
				Str("request_id", rid).
				Str("route", c.FullPath()).
				Str("panic", fmt.Sprintf("%v", r)).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			resp := dto.NewErrorResponse("Internal server error", nil)
			if rid != "" {
				resp.ErrorDetails = "request_id=" + rid
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
		}()

		c.Next()
	}
}
