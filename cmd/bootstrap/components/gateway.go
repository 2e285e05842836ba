package components

import (
	"log/slog"

	"catalog-sync/internal/infra/retailer"
	"catalog-sync/internal/infra/storefront"
	"catalog-sync/internal/pkg/config"
	"catalog-sync/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewStorefrontClient,
			fx.As(new(shared.Storefront)),
		),
		fx.Annotate(
			NewRetailerClient,
			fx.As(new(shared.Retailer)),
		),
	),
)

func NewStorefrontClient(cfg config.Config, logger *slog.Logger) *storefront.Client {
	return storefront.NewClient(cfg.Storefront, logger.With(slog.String("component", "storefront")))
}

func NewRetailerClient(cfg config.Config, logger *slog.Logger) *retailer.Client {
	return retailer.NewClient(cfg.Retailer, logger.With(slog.String("component", "retailer")))
}
