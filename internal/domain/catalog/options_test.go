//go:build unit

package catalog_test

import (
	"testing"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/settings"

	"github.com/stretchr/testify/assert"
)

func TestMapSizesToOptions(t *testing.T) {
	state := catalog.ProductState{
		ID:       "gid://shopify/Product/1",
		OptionID: "opt-1",
		OptionValues: []catalog.OptionValue{
			{ID: "val-40", Name: "EU 40"},
			{ID: "val-41", Name: "41"},
			{ID: "val-42", Name: "42"},
		},
		Variants: []catalog.Variant{
			{ID: "var-40", OptionValueName: "EU 40", InventoryItemID: "inv-40"},
			{ID: "var-41", OptionValueName: "41", InventoryItemID: "inv-41"},
		},
	}
	namer := settings.AttributeMapping{Options: []settings.OptionOverride{
		{RetailerOptionName: "40", DropshipperOptionName: "EU 40"},
		{RetailerOptionName: "40", DropshipperOptionName: "FR 40"},
	}}

	got := catalog.MapSizesToOptions([]string{"40", "41", "42", "43"}, namer, state)

	assert.Equal(t, []catalog.OptionMapping{
		{OriginalOption: "40", MappingOption: "EU 40", ProductOptionID: "opt-1", ProductOptionValueID: "val-40", ProductVariantID: "var-40", InventoryItemID: "inv-40"},
		{OriginalOption: "41", MappingOption: "41", ProductOptionID: "opt-1", ProductOptionValueID: "val-41", ProductVariantID: "var-41", InventoryItemID: "inv-41"},
		{OriginalOption: "42", MappingOption: "42", ProductOptionID: "opt-1", ProductOptionValueID: "val-42"},
		{OriginalOption: "43", MappingOption: "43"},
	}, got)
}

func TestDisplayNames(t *testing.T) {
	namer := settings.AttributeMapping{Options: []settings.OptionOverride{
		{RetailerOptionName: "M", DropshipperOptionName: "Medium"},
		{RetailerOptionName: "Medium", DropshipperOptionName: ""},
	}}
	assert.Equal(t, []string{"S", "Medium"}, catalog.DisplayNames([]string{"S", "M", "Medium"}, namer))
}
