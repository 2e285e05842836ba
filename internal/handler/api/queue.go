package api

import (
	"net/http"

	reqdto "catalog-sync/internal/handler/dto/request"
	resdto "catalog-sync/internal/handler/dto/response"
	"catalog-sync/internal/handler/httperr"
	"catalog-sync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type QueueHandler struct {
	cmds commands.IntakeCommands
}

func NewQueueHandler(cmds commands.IntakeCommands) *QueueHandler {
	return &QueueHandler{cmds: cmds}
}

// @Summary Enqueue a change
// @Description Queue one create, update or delete for a retailer item
// @Tags queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Param request body reqdto.EnqueueRequest true "Enqueue request"
// @Success 202 {object} resdto.EnqueueResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/shops/{shopId}/queue [post]
func (h *QueueHandler) Enqueue(c *gin.Context) {
	var req reqdto.EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	stockID, action, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Enqueue(c.Request.Context(), c.Param("shopId"), stockID, action)
	if err != nil {
		httperr.Abort(c, err, "Enqueue failed")
		return
	}
	c.JSON(http.StatusAccepted, resdto.FromEntryID(id))
}

// @Summary Import retailer catalog
// @Description Queue a create for every retailer item whose brand the shop lists
// @Tags queue
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Success 202 {object} resdto.ImportResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/shops/{shopId}/import [post]
func (h *QueueHandler) Import(c *gin.Context) {
	res, err := h.cmds.Import(c.Request.Context(), c.Param("shopId"))
	if err != nil {
		httperr.Abort(c, err, "Import failed")
		return
	}
	c.JSON(http.StatusAccepted, resdto.FromImportResult(res))
}

// @Summary Requeue synced items
// @Description Queue an update for every synced item matching the scope after a settings change
// @Tags queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Param request body reqdto.RequeueRequest true "Requeue request"
// @Success 202 {object} resdto.RequeueResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/shops/{shopId}/requeue [post]
func (h *QueueHandler) Requeue(c *gin.Context) {
	var req reqdto.RequeueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	scope, values := req.ToDomain()
	n, err := h.cmds.Requeue(c.Request.Context(), c.Param("shopId"), scope, values)
	if err != nil {
		httperr.Abort(c, err, "Requeue failed")
		return
	}
	c.JSON(http.StatusAccepted, resdto.RequeueResponse{Scope: string(scope), Enqueued: n})
}
