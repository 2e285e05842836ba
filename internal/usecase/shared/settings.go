package shared

import (
	"context"

	"catalog-sync/internal/domain/settings"
)

// SettingsReader is the read-only view of per-shop settings. Getters return
// nil without error when a setting has never been saved.
type SettingsReader interface {
	Shop(ctx context.Context, shopID string) (*settings.Shop, error)
	ActiveShopIDs(ctx context.Context) ([]string, error)
	BrandFilter(ctx context.Context, shopID string) (settings.BrandFilter, error)
	CategoryMappings(ctx context.Context, shopID string) (settings.CategoryMappings, error)
	AttributeMapping(ctx context.Context, shopID string) (settings.AttributeMapping, error)
	GeneralSetting(ctx context.Context, shopID string) (*settings.GeneralSetting, error)
	SyncSetting(ctx context.Context, shopID string) (*settings.SyncSetting, error)
}
