package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skumar/kirana-api/internal/services"
)

// SyncHandler triggers a catalog sync on demand.
type SyncHandler struct {
	svc *services.CatalogSyncService
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(svc *services.CatalogSyncService) *SyncHandler {
	return &SyncHandler{svc: svc}
}

// @Summary Run a catalog sync now
// @Tags Sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.SyncStats
// @Failure 400 {object} map[string]string
// @Router /sync/catalog [post]
func (h *SyncHandler) Run(c *gin.Context) {
	stats, err := h.svc.SyncOnce(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
