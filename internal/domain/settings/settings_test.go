//go:build unit

package settings_test

import (
	"testing"

	"catalog-sync/internal/domain/settings"
	"catalog-sync/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeMapping_Resolve(t *testing.T) {
	m := settings.AttributeMapping{Options: []settings.OptionOverride{
		{RetailerOptionName: "XL", DropshipperOptionName: "Extra Large"},
		{RetailerOptionName: "XL", DropshipperOptionName: "X-Large"},
		{RetailerOptionName: "S", DropshipperOptionName: "  "},
	}}

	assert.Equal(t, "Extra Large", m.Resolve("XL"))
	assert.Equal(t, "S", m.Resolve("S"))
	assert.Equal(t, "M", m.Resolve("M"))
}

func TestBrandFilter(t *testing.T) {
	f := settings.NewBrandFilter([]string{" Acme ", "acme", "Globex", ""})

	assert.True(t, f.Allows("ACME"))
	assert.True(t, f.Allows("globex"))
	assert.False(t, f.Allows("Initech"))
	assert.Equal(t, []string{"Acme", "Globex"}, f.Brands())
	assert.True(t, settings.NewBrandFilter(nil).IsEmpty())
}

func TestNewSyncContext(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*settings.SyncContextInput)
		errIs  error
	}{
		{name: "complete settings", mutate: func(*settings.SyncContextInput) {}},
		{name: "missing shop", mutate: func(in *settings.SyncContextInput) { in.Shop = nil }, errIs: settings.ErrIncompleteSettings},
		{name: "disabled shop", mutate: func(in *settings.SyncContextInput) { in.Shop.Enabled = false }, errIs: settings.ErrShopInactive},
		{name: "no brands", mutate: func(in *settings.SyncContextInput) { in.Brands = settings.BrandFilter{} }, errIs: settings.ErrNoBrands},
		{name: "no general setting", mutate: func(in *settings.SyncContextInput) { in.General = nil }, errIs: settings.ErrIncompleteSettings},
		{name: "no location", mutate: func(in *settings.SyncContextInput) { in.LocationID = "" }, errIs: settings.ErrIncompleteSettings},
		{name: "no publication", mutate: func(in *settings.SyncContextInput) { in.PublicationID = "" }, errIs: settings.ErrIncompleteSettings},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sc, err := builder.NewSyncContextBuilder().With(tc.mutate).Build()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, sc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "shop-1", sc.ShopID())
			assert.True(t, sc.Sync().Images, "missing sync setting defaults to syncing every field")
		})
	}
}

func TestSyncContext_PriceRule(t *testing.T) {
	sc := builder.NewSyncContextBuilder().MustBuild()

	assert.Equal(t, 1.2, sc.PriceRule("cat-shoes").Margin)
	assert.Equal(t, 1.0, sc.PriceRule("unmapped").Margin)
}
