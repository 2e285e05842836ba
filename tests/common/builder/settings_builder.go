//go:build unit || e2e

package builder

import (
	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/settings"
)

type SyncContextBuilder struct {
	Input settings.SyncContextInput
}

func NewSyncContextBuilder() *SyncContextBuilder {
	return &SyncContextBuilder{
		Input: settings.SyncContextInput{
			Shop: &settings.Shop{
				ID:             "shop-1",
				Domain:         "shop-1.myshopify.com",
				AccessToken:    "shpat_test",
				RetailerAPIKey: "retailer-key",
				Enabled:        true,
			},
			Brands: settings.NewBrandFilter([]string{"Acme"}),
			Categories: settings.CategoryMappings{
				{RetailerID: "cat-shoes", DropShipperID: "gid://shopify/Collection/10", Margin: 1.2},
			},
			General: &settings.GeneralSetting{
				IncludeBrand:   true,
				PricesRounding: catalog.RoundingNone,
				Currency:       "EUR",
				CurrencyRate:   1,
			},
			LocationID:    "gid://shopify/Location/1",
			PublicationID: "gid://shopify/Publication/1",
		},
	}
}

func (b *SyncContextBuilder) With(mutate func(*settings.SyncContextInput)) *SyncContextBuilder {
	mutate(&b.Input)
	return b
}

func (b *SyncContextBuilder) WithDeleteOutStock() *SyncContextBuilder {
	g := *b.Input.General
	g.DeleteOutStock = true
	b.Input.General = &g
	return b
}

func (b *SyncContextBuilder) WithBrands(brands ...string) *SyncContextBuilder {
	b.Input.Brands = settings.NewBrandFilter(brands)
	return b
}

func (b *SyncContextBuilder) Build() (*settings.SyncContext, error) {
	return settings.NewSyncContext(b.Input)
}

// MustBuild panics on invalid input; for fixtures only.
func (b *SyncContextBuilder) MustBuild() *settings.SyncContext {
	sc, err := b.Build()
	if err != nil {
		panic(err)
	}
	return sc
}
