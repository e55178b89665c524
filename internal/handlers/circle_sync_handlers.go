package handlers

import (
	"net/http"

	"github.com/cyphera/cyphera-circles/internal/interfaces"
	"github.com/gin-gonic/gin"
)

// CircleSyncHandler exposes operator-triggered reconciliation of cached circles
type CircleSyncHandler struct {
	sync  interfaces.CircleSyncService
	queue interfaces.SyncQueue
}

// NewCircleSyncHandler creates the handler. queue may be nil when no SQS queue is configured.
func NewCircleSyncHandler(sync interfaces.CircleSyncService, queue interfaces.SyncQueue) *CircleSyncHandler {
	return &CircleSyncHandler{sync: sync, queue: queue}
}

// SyncCircleResponse reports whether a single circle was refreshed
type SyncCircleResponse struct {
	CircleID string `json:"circle_id"`
	Synced   bool   `json:"synced"`
}

// EnqueueSyncResponse is returned when a sync was handed to the queue
type EnqueueSyncResponse struct {
	CircleID  string `json:"circle_id"`
	MessageID string `json:"message_id"`
}

// SyncCircle godoc
// @Summary      Sync one circle
// @Description  Refreshes a cached circle from the SavingsCircle contract. synced is false when the circle is not deployed or not readable.
// @Tags         admin
// @Produce      json
// @Security     AdminKey
// @Param        circle_id  path  string  true  "Circle ID"
// @Success      200  {object}  SyncCircleResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/circles/{circle_id}/sync [post]
func (h *CircleSyncHandler) SyncCircle(c *gin.Context) {
	circleID, ok := parseUUIDParam(c, "circle_id")
	if !ok {
		return
	}

	synced, err := h.sync.SyncCircle(c.Request.Context(), circleID)
	if err != nil {
		handleDBError(c, err, "Circle not found")
		return
	}

	c.JSON(http.StatusOK, SyncCircleResponse{CircleID: circleID.String(), Synced: synced})
}

// SyncAll godoc
// @Summary      Sync all circles
// @Description  Refreshes every deployed circle that has not completed
// @Tags         admin
// @Produce      json
// @Security     AdminKey
// @Success      200  {object}  interfaces.SyncResults
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/circles/sync [post]
func (h *CircleSyncHandler) SyncAll(c *gin.Context) {
	results, err := h.sync.SyncAllCircles(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to sync circles", err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// EnqueueSync godoc
// @Summary      Queue a circle sync
// @Description  Hands a single-circle sync to the async processor
// @Tags         admin
// @Produce      json
// @Security     AdminKey
// @Param        circle_id  path  string  true  "Circle ID"
// @Success      202  {object}  EnqueueSyncResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /admin/circles/{circle_id}/sync/enqueue [post]
func (h *CircleSyncHandler) EnqueueSync(c *gin.Context) {
	circleID, ok := parseUUIDParam(c, "circle_id")
	if !ok {
		return
	}

	if h.queue == nil {
		sendError(c, http.StatusServiceUnavailable, "Sync queue is not configured", nil)
		return
	}

	messageID, err := h.queue.EnqueueCircleSync(c.Request.Context(), circleID)
	if err != nil {
		sendError(c, http.StatusBadGateway, "Failed to enqueue circle sync", err)
		return
	}

	c.JSON(http.StatusAccepted, EnqueueSyncResponse{CircleID: circleID.String(), MessageID: messageID})
}
