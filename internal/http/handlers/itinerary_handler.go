// README: Itinerary job creation and status handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nikbakhtenb4/task-stak-travel/internal/modules/itinerary"
)

// maxBodyBytes caps creation request bodies.
const maxBodyBytes = 1024

type ItineraryHandler struct {
	itinerary *itinerary.Service
}

func NewItineraryHandler(svc *itinerary.Service) *ItineraryHandler {
	return &ItineraryHandler{itinerary: svc}
}

// Create handles POST /. It validates synchronously, responds 202 with the
// new job id, and hands the job to the background orchestrator without
// waiting for it.
func (h *ItineraryHandler) Create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var body map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		writeError(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if violations := itinerary.ValidateCreate(body); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": violations,
		})
		return
	}

	// Safe after validation.
	destination := strings.TrimSpace(body["destination"].(string))
	durationDays := int(body["durationDays"].(float64))

	jobID := h.itinerary.Submit(destination, durationDays)
	c.JSON(http.StatusAccepted, gin.H{"jobId": jobID})
}

// Status handles GET /status?jobId=. It reads the store directly; there is no
// interaction with the orchestrator and no mutation on read.
func (h *ItineraryHandler) Status(c *gin.Context) {
	raw := c.Query("jobId")
	if raw == "" {
		writeError(c, http.StatusBadRequest, "jobId query parameter is required")
		return
	}

	// A malformed id can never match a stored job.
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(c, http.StatusNotFound, "Job not found")
		return
	}

	job, err := h.itinerary.Get(c.Request.Context(), id)
	if errors.Is(err, itinerary.ErrNotFound) {
		writeError(c, http.StatusNotFound, "Job not found")
		return
	}
	if err != nil {
		writeStoreError(c)
		return
	}
	c.JSON(http.StatusOK, job)
}
