package api

import (
	"net/http"

	resdto "catalog-sync/internal/handler/dto/response"
	"catalog-sync/internal/handler/httperr"
	"catalog-sync/internal/usecase/productsync"
	"catalog-sync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	dispatcher productsync.Dispatcher
	q          queries.SyncQueries
}

func NewSyncHandler(dispatcher productsync.Dispatcher, q queries.SyncQueries) *SyncHandler {
	return &SyncHandler{dispatcher: dispatcher, q: q}
}

// @Summary Run one sync batch
// @Description Dispatch one batch of pending queue entries for the shop now
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Success 200 {object} resdto.BatchResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/shops/{shopId}/sync [post]
func (h *SyncHandler) RunBatch(c *gin.Context) {
	res, err := h.dispatcher.Dispatch(c.Request.Context(), c.Param("shopId"))
	if err != nil {
		httperr.AbortWithError(c, httperr.StatusOf(err), err, "Sync batch failed", resdto.FromBatchResult(res))
		return
	}
	c.JSON(http.StatusOK, resdto.FromBatchResult(res))
}

// @Summary Queue statistics
// @Description Count queue entries per status for the shop
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Success 200 {object} resdto.QueueStatsResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/shops/{shopId}/queue [get]
func (h *SyncHandler) QueueStats(c *gin.Context) {
	stats, err := h.q.QueueStats(c.Request.Context(), c.Param("shopId"))
	if err != nil {
		httperr.Abort(c, err, "Failed to load queue statistics")
		return
	}
	c.JSON(http.StatusOK, resdto.FromQueueStats(stats))
}

// @Summary Get catalog snapshot
// @Description Show the last synced storefront mirror of one retailer item
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Param stockId path string true "Retailer stock ID"
// @Success 200 {object} resdto.SnapshotResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/shops/{shopId}/snapshots/{stockId} [get]
func (h *SyncHandler) Snapshot(c *gin.Context) {
	view, err := h.q.Snapshot(c.Request.Context(), c.Param("shopId"), c.Param("stockId"))
	if err != nil {
		httperr.Abort(c, err, "Snapshot not available")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshotView(view))
}
