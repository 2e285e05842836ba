package catalog

import (
	"errors"
	"strings"
)

var (
	ErrEmptyStockID    = errors.New("stock id is required")
	ErrDuplicateSize   = errors.New("duplicate size in stock record")
	ErrDuplicateOption = errors.New("duplicate original option in snapshot")
	ErrEmptyProductID  = errors.New("storefront product id is required")
)

type SizeQuantity struct {
	Size     string
	Quantity int
}

// StockRecord is the retailer's current view of one item. It is read-only to
// the sync engine.
type StockRecord struct {
	ID            string
	Brand         string
	Name          string
	Description   string
	Images        []string
	CategoryID    string
	SellingPrice  float64
	OriginalPrice float64
	Sizes         []SizeQuantity
}

func (r StockRecord) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrEmptyStockID
	}
	seen := make(map[string]struct{}, len(r.Sizes))
	for _, s := range r.Sizes {
		if _, ok := seen[s.Size]; ok {
			return ErrDuplicateSize
		}
		seen[s.Size] = struct{}{}
	}
	return nil
}

func (r StockRecord) TotalQuantity() int {
	total := 0
	for _, s := range r.Sizes {
		if s.Quantity > 0 {
			total += s.Quantity
		}
	}
	return total
}

func (r StockRecord) SizeNames() []string {
	names := make([]string, len(r.Sizes))
	for i, s := range r.Sizes {
		names[i] = s.Size
	}
	return names
}

func (r StockRecord) Quantity(size string) (int, bool) {
	for _, s := range r.Sizes {
		if s.Size == size {
			return max(s.Quantity, 0), true
		}
	}
	return 0, false
}

func (r StockRecord) HasOutOfStockSize() bool {
	for _, s := range r.Sizes {
		if s.Quantity <= 0 {
			return true
		}
	}
	return false
}

// Title returns the storefront title, optionally prefixed with the brand.
func (r StockRecord) Title(includeBrand bool) string {
	if includeBrand && r.Brand != "" && !strings.HasPrefix(r.Name, r.Brand) {
		return r.Brand + " " + r.Name
	}
	return r.Name
}
