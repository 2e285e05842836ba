package readstore

import (
	"context"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/settings"
	"catalog-sync/internal/infra"
	"catalog-sync/internal/infra/repository"
	"catalog-sync/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
)

// SettingsReadStore reads the per-shop settings maintained by the admin app.
type SettingsReadStore struct {
	db repository.DBTX
}

func NewSettingsReadStore(db repository.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: db}
}

func (s *SettingsReadStore) Shop(ctx context.Context, shopID string) (*settings.Shop, error) {
	var shop settings.Shop
	err := s.db.QueryRow(ctx, `SELECT id, domain, access_token, retailer_api_key, enabled
		FROM shops WHERE id = $1`, shopID).
		Scan(&shop.ID, &shop.Domain, &shop.AccessToken, &shop.RetailerAPIKey, &shop.Enabled)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find shop", err)
	}
	return &shop, nil
}

func (s *SettingsReadStore) ActiveShopIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT id FROM shops
		WHERE enabled AND domain <> '' AND access_token <> ''
		ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active shops", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan active shops", err)
	}
	return ids, nil
}

func (s *SettingsReadStore) BrandFilter(ctx context.Context, shopID string) (settings.BrandFilter, error) {
	rows, err := s.db.Query(ctx, `SELECT brand FROM brand_filters WHERE shop_id = $1 ORDER BY brand`, shopID)
	if err != nil {
		return settings.BrandFilter{}, infra.WrapRepoErr("failed to load brand filter", err)
	}
	brands, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return settings.BrandFilter{}, infra.WrapRepoErr("failed to scan brand filter", err)
	}
	return settings.NewBrandFilter(brands), nil
}

func (s *SettingsReadStore) CategoryMappings(ctx context.Context, shopID string) (settings.CategoryMappings, error) {
	rows, err := s.db.Query(ctx, `SELECT retailer_id, drop_shipper_id, margin
		FROM category_mappings WHERE shop_id = $1 ORDER BY retailer_id`, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load category mappings", err)
	}
	mappings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (settings.CategoryMapping, error) {
		var m settings.CategoryMapping
		err := row.Scan(&m.RetailerID, &m.DropShipperID, &m.Margin)
		return m, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan category mappings", err)
	}
	return mappings, nil
}

func (s *SettingsReadStore) AttributeMapping(ctx context.Context, shopID string) (settings.AttributeMapping, error) {
	rows, err := s.db.Query(ctx, `SELECT retailer_option_name, dropshipper_option_name
		FROM attribute_mappings WHERE shop_id = $1 ORDER BY position`, shopID)
	if err != nil {
		return settings.AttributeMapping{}, infra.WrapRepoErr("failed to load attribute mapping", err)
	}
	options, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (settings.OptionOverride, error) {
		var o settings.OptionOverride
		err := row.Scan(&o.RetailerOptionName, &o.DropshipperOptionName)
		return o, err
	})
	if err != nil {
		return settings.AttributeMapping{}, infra.WrapRepoErr("failed to scan attribute mapping", err)
	}
	return settings.AttributeMapping{Options: options}, nil
}

func (s *SettingsReadStore) GeneralSetting(ctx context.Context, shopID string) (*settings.GeneralSetting, error) {
	var (
		g        settings.GeneralSetting
		rounding string
	)
	err := s.db.QueryRow(ctx, `SELECT include_brand, delete_out_stock, product_as_draft,
			prices_rounding, currency, currency_rate
		FROM general_settings WHERE shop_id = $1`, shopID).
		Scan(&g.IncludeBrand, &g.DeleteOutStock, &g.ProductAsDraft, &rounding, &g.Currency, &g.CurrencyRate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load general setting", err)
	}
	policy, err := catalog.ParseRoundingPolicy(rounding)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid prices rounding", err)
	}
	g.PricesRounding = policy
	return &g, nil
}

func (s *SettingsReadStore) SyncSetting(ctx context.Context, shopID string) (*settings.SyncSetting, error) {
	var ss settings.SyncSetting
	err := s.db.QueryRow(ctx, `SELECT title, description, images, categories, metafields
		FROM sync_settings WHERE shop_id = $1`, shopID).
		Scan(&ss.Title, &ss.Description, &ss.Images, &ss.Categories, &ss.Metafields)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load sync setting", err)
	}
	return &ss, nil
}
