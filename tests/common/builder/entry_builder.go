//go:build unit || e2e

package builder

import (
	"time"

	"catalog-sync/internal/domain/queue"

	"github.com/google/uuid"
)

type EntryBuilder struct {
	ID          uuid.UUID
	ShopID      string
	StockID     string
	Status      queue.Status
	RetryCount  int
	LockedUntil *time.Time
	CreatedAt   time.Time
}

func NewEntryBuilder() *EntryBuilder {
	return &EntryBuilder{
		ID:        uuid.New(),
		ShopID:    "shop-1",
		StockID:   "stock-1",
		Status:    queue.StatusCreate,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *EntryBuilder) With(mutate func(*EntryBuilder)) *EntryBuilder {
	mutate(b)
	return b
}

func (b *EntryBuilder) WithStock(stockID string, status queue.Status) *EntryBuilder {
	b.StockID = stockID
	b.Status = status
	return b
}

func (b *EntryBuilder) CreatedAfter(d time.Duration) *EntryBuilder {
	b.CreatedAt = b.CreatedAt.Add(d)
	return b
}

func (b *EntryBuilder) Build() *queue.Entry {
	return queue.ReconstructEntry(b.ID, b.ShopID, b.StockID, b.Status, b.RetryCount, b.LockedUntil, "", b.CreatedAt, b.CreatedAt)
}
