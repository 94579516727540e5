package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/services"
)

// SyncHandler handles pushing snapshots to the configured remote store.
type SyncHandler struct {
	syncService services.SyncServicer
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(syncService services.SyncServicer) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// SyncAll handles pushing every collection to the remote store.
func (h *SyncHandler) SyncAll(c *gin.Context) {
	results, err := h.syncService.SyncAll(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// PingRemote handles checking remote store connectivity.
func (h *SyncHandler) PingRemote(c *gin.Context) {
	if err := h.syncService.PingRemote(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Remote store reachable"})
}
