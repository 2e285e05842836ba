//go:build unit || e2e

package builder

import (
	"time"

	"catalog-sync/internal/domain/catalog"
)

type StockBuilder struct {
	ID            string
	Brand         string
	Name          string
	Description   string
	Images        []string
	CategoryID    string
	SellingPrice  float64
	OriginalPrice float64
	Sizes         []catalog.SizeQuantity
}

func NewStockBuilder() *StockBuilder {
	return &StockBuilder{
		ID:            "stock-1",
		Brand:         "Acme",
		Name:          "Runner",
		Description:   "<p>Lightweight runner</p>",
		Images:        []string{"https://cdn.example.com/runner.jpg"},
		CategoryID:    "cat-shoes",
		SellingPrice:  100,
		OriginalPrice: 150,
		Sizes: []catalog.SizeQuantity{
			{Size: "40", Quantity: 2},
			{Size: "41", Quantity: 3},
		},
	}
}

func (b *StockBuilder) With(mutate func(*StockBuilder)) *StockBuilder {
	mutate(b)
	return b
}

func (b *StockBuilder) WithID(id string) *StockBuilder {
	b.ID = id
	return b
}

func (b *StockBuilder) WithBrand(brand string) *StockBuilder {
	b.Brand = brand
	return b
}

func (b *StockBuilder) WithSizes(sizes ...catalog.SizeQuantity) *StockBuilder {
	b.Sizes = sizes
	return b
}

func (b *StockBuilder) Build() catalog.StockRecord {
	sizes := make([]catalog.SizeQuantity, len(b.Sizes))
	copy(sizes, b.Sizes)
	return catalog.StockRecord{
		ID:            b.ID,
		Brand:         b.Brand,
		Name:          b.Name,
		Description:   b.Description,
		Images:        append([]string(nil), b.Images...),
		CategoryID:    b.CategoryID,
		SellingPrice:  b.SellingPrice,
		OriginalPrice: b.OriginalPrice,
		Sizes:         sizes,
	}
}

// Size is shorthand for a size/quantity pair.
func Size(name string, qty int) catalog.SizeQuantity {
	return catalog.SizeQuantity{Size: name, Quantity: qty}
}

type SnapshotBuilder struct {
	ShopID     string
	StockID    string
	ProductID  string
	Brand      string
	CategoryID string
	Options    []catalog.OptionMapping
	UpdatedAt  time.Time
}

func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		ShopID:     "shop-1",
		StockID:    "stock-1",
		ProductID:  "gid://shopify/Product/1",
		Brand:      "Acme",
		CategoryID: "cat-shoes",
		UpdatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *SnapshotBuilder) With(mutate func(*SnapshotBuilder)) *SnapshotBuilder {
	mutate(b)
	return b
}

// WithSyncedSizes adds a fully materialized mapping for every size, using
// the size name as display name and deterministic storefront ids.
func (b *SnapshotBuilder) WithSyncedSizes(sizes ...string) *SnapshotBuilder {
	for _, s := range sizes {
		b.Options = append(b.Options, SyncedOption(s))
	}
	return b
}

func (b *SnapshotBuilder) Build() *catalog.Snapshot {
	sizes := make([]string, 0, len(b.Options))
	for _, o := range b.Options {
		sizes = append(sizes, o.OriginalOption)
	}
	opts := make([]catalog.OptionMapping, len(b.Options))
	copy(opts, b.Options)
	return catalog.ReconstructSnapshot(b.ShopID, b.StockID, b.ProductID, b.Brand, b.CategoryID, sizes, false, opts, b.UpdatedAt)
}

func SyncedOption(size string) catalog.OptionMapping {
	return catalog.OptionMapping{
		OriginalOption:       size,
		MappingOption:        size,
		ProductOptionID:      "gid://shopify/ProductOption/1",
		ProductOptionValueID: "gid://shopify/ProductOptionValue/" + size,
		ProductVariantID:     "gid://shopify/ProductVariant/" + size,
		InventoryItemID:      "gid://shopify/InventoryItem/" + size,
	}
}
