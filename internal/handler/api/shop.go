package api

import (
	"net/http"

	resdto "catalog-sync/internal/handler/dto/response"
	"catalog-sync/internal/handler/httperr"
	"catalog-sync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	cmds commands.MaintenanceCommands
}

func NewShopHandler(cmds commands.MaintenanceCommands) *ShopHandler {
	return &ShopHandler{cmds: cmds}
}

// @Summary Create metafield definitions
// @Description Create the retailer metafield definitions on the storefront; existing ones are kept
// @Tags shops
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Success 200 {object} resdto.MetafieldResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/shops/{shopId}/metafield-definitions [post]
func (h *ShopHandler) EnsureMetafieldDefinitions(c *gin.Context) {
	res, err := h.cmds.EnsureMetafieldDefinitions(c.Request.Context(), c.Param("shopId"))
	if err != nil {
		httperr.Abort(c, err, "Metafield definitions failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromMetafieldResult(res))
}

// @Summary Uninstall shop
// @Description Remove every queue entry, snapshot and product identity of the shop
// @Tags shops
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Success 200 {object} resdto.UninstallResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/shops/{shopId} [delete]
func (h *ShopHandler) Uninstall(c *gin.Context) {
	res, err := h.cmds.Uninstall(c.Request.Context(), c.Param("shopId"))
	if err != nil {
		httperr.Abort(c, err, "Uninstall failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUninstallResult(res))
}
