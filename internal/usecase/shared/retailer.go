package shared

import (
	"context"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/pkg/errs"
)

// ErrStockNotFound means the retailer answered and the item does not exist.
var ErrStockNotFound = errs.New("retailer stock not found")

type StockPage struct {
	Items []catalog.StockRecord
	Total int
}

type Retailer interface {
	GetStock(ctx context.Context, apiKey, stockID string) (catalog.StockRecord, error)
	ListStock(ctx context.Context, apiKey string, offset, limit int) (StockPage, error)
}
