//go:build unit || e2e

package builder

import (
	"catalog-sync/internal/domain/catalog"
)

const ProductID = "gid://shopify/Product/1"

// LiveSize describes one size as the storefront currently reports it.
type LiveSize struct {
	Size           string
	Quantity       int
	Price          string
	CompareAtPrice string
	// ValueOnly leaves the option value without a variant.
	ValueOnly bool
}

// Priced is a live size carrying the default fixture prices.
func Priced(size string, qty int) LiveSize {
	return LiveSize{Size: size, Quantity: qty, Price: "120.00", CompareAtPrice: "150.00"}
}

// LiveProduct builds storefront state whose ids match SyncedOption.
func LiveProduct(sizes ...LiveSize) *catalog.ProductState {
	state := &catalog.ProductState{
		ID:       ProductID,
		OptionID: "gid://shopify/ProductOption/1",
		MediaIDs: []string{"gid://shopify/MediaImage/1"},
	}
	for _, s := range sizes {
		o := SyncedOption(s.Size)
		state.OptionValues = append(state.OptionValues, catalog.OptionValue{ID: o.ProductOptionValueID, Name: s.Size})
		if s.ValueOnly {
			continue
		}
		state.Variants = append(state.Variants, catalog.Variant{
			ID:              o.ProductVariantID,
			OptionValueName: s.Size,
			InventoryItemID: o.InventoryItemID,
			Price:           s.Price,
			CompareAtPrice:  s.CompareAtPrice,
		})
	}
	return state
}

// Levels is the available quantity per inventory item for the sizes that
// have a variant, as the storefront reports it at the batch location.
func Levels(sizes ...LiveSize) map[string]int {
	out := make(map[string]int, len(sizes))
	for _, s := range sizes {
		if s.ValueOnly {
			continue
		}
		out[SyncedOption(s.Size).InventoryItemID] = s.Quantity
	}
	return out
}
