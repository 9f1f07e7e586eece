// README: Admission control; rejects over-limit clients with 429.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikbakhtenb4/task-stak-travel/internal/modules/ratelimit"
)

// RateLimit admits requests per client IP. Excess load is rejected outright,
// never queued.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context(), c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
