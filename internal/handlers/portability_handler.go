package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/services"
)

// PortabilityHandler handles export, import, wipe, and storage usage.
type PortabilityHandler struct {
	portabilityService services.PortabilityServicer
}

// NewPortabilityHandler creates a new PortabilityHandler.
func NewPortabilityHandler(portabilityService services.PortabilityServicer) *PortabilityHandler {
	return &PortabilityHandler{portabilityService: portabilityService}
}

// Export handles snapshotting all data as one JSON document.
func (h *PortabilityHandler) Export(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="pocketledger-export.json"`)
	c.JSON(http.StatusOK, h.portabilityService.Export())
}

// Import handles restoring a previously exported document.
func (h *PortabilityHandler) Import(c *gin.Context) {
	var doc services.ImportDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.portabilityService.Import(doc); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data imported successfully"})
}

// ClearAll handles wiping every stored collection.
func (h *PortabilityHandler) ClearAll(c *gin.Context) {
	if err := h.portabilityService.ClearAll(); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All data cleared"})
}

// StorageInfo handles reporting usage against the storage quota.
func (h *PortabilityHandler) StorageInfo(c *gin.Context) {
	info, err := h.portabilityService.StorageInfo()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"storage": info})
}
