package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"catalog-sync/internal/handler/api"
	"catalog-sync/internal/handler/middleware"
	"catalog-sync/internal/pkg/config"
	"catalog-sync/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Sync  *api.SyncHandler
	Queue *api.QueueHandler
	Shop  *api.ShopHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operator := authMiddleware.RequireRoleAtLeast(jwt.RoleOperator)
	admin := authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin)

	shops := engine.Group("/api/shops/:shopId")
	shops.Use(authMiddleware.RequireAuth())
	{
		addRoutes(shops, []route{
			{Method: http.MethodGet, Path: "/queue", Handler: h.Sync.QueueStats},
			{Method: http.MethodGet, Path: "/snapshots/:stockId", Handler: h.Sync.Snapshot},

			{Method: http.MethodPost, Path: "/sync", Handler: h.Sync.RunBatch, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodPost, Path: "/queue", Handler: h.Queue.Enqueue, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodPost, Path: "/import", Handler: h.Queue.Import, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodPost, Path: "/requeue", Handler: h.Queue.Requeue, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodPost, Path: "/metafield-definitions", Handler: h.Shop.EnsureMetafieldDefinitions, Mw: []gin.HandlerFunc{operator}},

			{Method: http.MethodDelete, Path: "", Handler: h.Shop.Uninstall, Mw: []gin.HandlerFunc{admin}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
