// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

// writeStoreError maps store failures for the public status route without
// leaking internal error text.
func writeStoreError(c *gin.Context) {
	writeError(c, http.StatusInternalServerError, "Failed to retrieve job")
}
