// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikbakhtenb4/task-stak-travel/internal/http/handlers"
	"github.com/nikbakhtenb4/task-stak-travel/internal/http/middleware"
	"github.com/nikbakhtenb4/task-stak-travel/internal/modules/itinerary"
	"github.com/nikbakhtenb4/task-stak-travel/internal/modules/ratelimit"
)

// NewRouter wires middleware and routes. CORS (and therefore OPTIONS
// handling) applies to every response; rate limiting guards only job
// creation.
func NewRouter(itinerarySvc *itinerary.Service, limiter ratelimit.Limiter) http.Handler {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.Recovery())
	r.Use(middleware.Logging())
	r.Use(middleware.CORS())

	h := handlers.NewItineraryHandler(itinerarySvc)
	r.POST("/", middleware.RateLimit(limiter), h.Create)
	r.GET("/status", h.Status)
	r.GET("/health", handlers.Health)

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	return r
}
