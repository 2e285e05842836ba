//go:build unit

package catalog_test

import (
	"testing"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/settings"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryDeltas(t *testing.T) {
	record := catalog.StockRecord{
		ID: "stock-1",
		Sizes: []catalog.SizeQuantity{
			{Size: "40", Quantity: 3},
			{Size: "41", Quantity: 0},
			{Size: "42", Quantity: 5},
		},
	}
	options := []catalog.OptionMapping{
		{OriginalOption: "40", InventoryItemID: "inv-40"},
		{OriginalOption: "41", InventoryItemID: "inv-41"},
		{OriginalOption: "42", InventoryItemID: "inv-42"},
		{OriginalOption: "43"},
	}

	testCases := []struct {
		name    string
		targets []catalog.InventoryTarget
		want    []catalog.InventoryChange
	}{
		{
			name:    "creation starts from zero",
			targets: catalog.CreationTargets(options, record),
			want: []catalog.InventoryChange{
				{InventoryItemID: "inv-40", Size: "40", Delta: 3},
				{InventoryItemID: "inv-42", Size: "42", Delta: 5},
			},
		},
		{
			name: "update uses observed quantities",
			targets: catalog.UpdateTargets(options, record, map[string]int{
				"inv-40": 1,
				"inv-41": 2,
				"inv-42": 5,
			}),
			want: []catalog.InventoryChange{
				{InventoryItemID: "inv-40", Size: "40", Delta: 2},
				{InventoryItemID: "inv-41", Size: "41", Delta: -2},
			},
		},
		{
			name: "re-applying after a partial run is a no-op",
			targets: catalog.UpdateTargets(options, record, map[string]int{
				"inv-40": 3,
				"inv-41": 0,
				"inv-42": 5,
			}),
			want: []catalog.InventoryChange{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := catalog.Deltas(tc.targets)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Deltas() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInventoryDeltas_SharedDisplayNameConverges(t *testing.T) {
	record := catalog.StockRecord{
		ID:    "stock-1",
		Sizes: []catalog.SizeQuantity{{Size: "S", Quantity: 2}, {Size: "Small", Quantity: 3}},
	}
	namer := settings.AttributeMapping{Options: []settings.OptionOverride{
		{RetailerOptionName: "Small", DropshipperOptionName: "S"},
	}}
	live := catalog.ProductState{
		OptionID:     "opt-1",
		OptionValues: []catalog.OptionValue{{ID: "val-S", Name: "S"}},
		Variants:     []catalog.Variant{{ID: "var-S", OptionValueName: "S", InventoryItemID: "inv-S"}},
	}
	mappings := catalog.MapSizesToOptions(record.SizeNames(), namer, live)

	observed := map[string]int{}
	first := catalog.Deltas(catalog.UpdateTargets(mappings, record, observed))
	assert.Equal(t, []catalog.InventoryChange{{InventoryItemID: "inv-S", Size: "S", Delta: 5}}, first)

	for _, ch := range first {
		observed[ch.InventoryItemID] += ch.Delta
	}
	for pass := range 3 {
		require.Empty(t, catalog.Deltas(catalog.UpdateTargets(mappings, record, observed)), "pass %d", pass+2)
	}
	assert.Equal(t, 5, observed["inv-S"])
}
