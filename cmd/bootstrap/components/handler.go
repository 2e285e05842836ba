package components

import (
	"catalog-sync/internal/handler"
	"catalog-sync/internal/handler/api"
	"catalog-sync/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSyncHandler,
		api.NewQueueHandler,
		api.NewShopHandler,
		middleware.NewAuthMiddleware,
		func(s *api.SyncHandler, q *api.QueueHandler, sh *api.ShopHandler) handler.Handlers {
			return handler.Handlers{Sync: s, Queue: q, Shop: sh}
		},
	),
	fx.Invoke(handler.NewRouter),
)
