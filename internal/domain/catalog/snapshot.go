package catalog

import (
	"time"
)

// OptionMapping links one retailer size to the storefront option value,
// variant and inventory item that represent it. Empty ids mean "not yet
// created".
type OptionMapping struct {
	OriginalOption       string
	MappingOption        string
	ProductOptionID      string
	ProductOptionValueID string
	ProductVariantID     string
	InventoryItemID      string
}

func (m OptionMapping) HasOptionValue() bool {
	return m.ProductOptionValueID != ""
}

func (m OptionMapping) HasVariant() bool {
	return m.ProductVariantID != ""
}

// Snapshot is the last-known storefront mirror of one retailer item for one
// shop.
type Snapshot struct {
	shopID              string
	stockID             string
	productID           string
	brand               string
	categoryID          string
	sizes               []string
	hasOptionOutOfStock bool
	options             []OptionMapping
	updatedAt           time.Time
}

func NewSnapshot(shopID string, record StockRecord, productID string, options []OptionMapping, now time.Time) (*Snapshot, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, ErrEmptyProductID
	}
	s := &Snapshot{
		shopID:    shopID,
		stockID:   record.ID,
		productID: productID,
	}
	s.Refresh(record, now)
	if err := s.ReplaceOptions(options); err != nil {
		return nil, err
	}
	return s, nil
}

func ReconstructSnapshot(
	shopID, stockID, productID, brand, categoryID string,
	sizes []string,
	hasOptionOutOfStock bool,
	options []OptionMapping,
	updatedAt time.Time,
) *Snapshot {
	return &Snapshot{
		shopID:              shopID,
		stockID:             stockID,
		productID:           productID,
		brand:               brand,
		categoryID:          categoryID,
		sizes:               sizes,
		hasOptionOutOfStock: hasOptionOutOfStock,
		options:             options,
		updatedAt:           updatedAt,
	}
}

func (s *Snapshot) ShopID() string            { return s.shopID }
func (s *Snapshot) StockID() string           { return s.stockID }
func (s *Snapshot) ProductID() string         { return s.productID }
func (s *Snapshot) Brand() string             { return s.brand }
func (s *Snapshot) CategoryID() string        { return s.categoryID }
func (s *Snapshot) HasOptionOutOfStock() bool { return s.hasOptionOutOfStock }
func (s *Snapshot) UpdatedAt() time.Time      { return s.updatedAt }

func (s *Snapshot) Sizes() []string {
	out := make([]string, len(s.sizes))
	copy(out, s.sizes)
	return out
}

func (s *Snapshot) Options() []OptionMapping {
	out := make([]OptionMapping, len(s.options))
	copy(out, s.options)
	return out
}

func (s *Snapshot) Option(originalOption string) (OptionMapping, bool) {
	for _, o := range s.options {
		if o.OriginalOption == originalOption {
			return o, true
		}
	}
	return OptionMapping{}, false
}

// Refresh copies the retailer-side fields of record into the snapshot.
func (s *Snapshot) Refresh(record StockRecord, now time.Time) {
	s.brand = record.Brand
	s.categoryID = record.CategoryID
	s.sizes = record.SizeNames()
	s.hasOptionOutOfStock = record.HasOutOfStockSize()
	s.updatedAt = now
}

// ReplaceOptions swaps the option mappings, rejecting duplicate original
// options.
func (s *Snapshot) ReplaceOptions(options []OptionMapping) error {
	seen := make(map[string]struct{}, len(options))
	for _, o := range options {
		if _, ok := seen[o.OriginalOption]; ok {
			return ErrDuplicateOption
		}
		seen[o.OriginalOption] = struct{}{}
	}
	s.options = make([]OptionMapping, len(options))
	copy(s.options, options)
	return nil
}
