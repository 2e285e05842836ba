package queries

import (
	"context"
	"time"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/queue"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/shared"
)

var ErrSnapshotNotFound = errs.Mark(errs.New("snapshot not found"), errs.ErrNotFound)

type QueueStats struct {
	ShopID  string         `json:"shopId"`
	Counts  map[string]int `json:"counts"`
	Pending int            `json:"pending"`
	Total   int            `json:"total"`
}

type SnapshotView struct {
	ShopID              string                  `json:"shopId"`
	StockID             string                  `json:"stockId"`
	ProductID           string                  `json:"productId"`
	Brand               string                  `json:"brand"`
	CategoryID          string                  `json:"categoryId"`
	Sizes               []string                `json:"sizes"`
	HasOptionOutOfStock bool                    `json:"hasOptionOutOfStock"`
	Options             []catalog.OptionMapping `json:"options"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

type SyncQueries interface {
	QueueStats(ctx context.Context, shopID string) (*QueueStats, error)
	Snapshot(ctx context.Context, shopID, stockID string) (*SnapshotView, error)
}

type syncQueriesImpl struct {
	queue     shared.QueueRepository
	snapshots shared.SnapshotRepository
}

func NewSyncQueries(q shared.QueueRepository, snapshots shared.SnapshotRepository) SyncQueries {
	return &syncQueriesImpl{queue: q, snapshots: snapshots}
}

func (q *syncQueriesImpl) QueueStats(ctx context.Context, shopID string) (*QueueStats, error) {
	counts, err := q.queue.CountByStatus(ctx, shopID)
	if err != nil {
		return nil, errs.Wrap(err, "count queue entries")
	}

	stats := &QueueStats{ShopID: shopID, Counts: make(map[string]int, len(counts))}
	for _, s := range []queue.Status{queue.StatusCreate, queue.StatusUpdate, queue.StatusDelete, queue.StatusSuccess, queue.StatusFailed} {
		n := counts[s]
		stats.Counts[s.String()] = n
		stats.Total += n
		if s.IsAction() {
			stats.Pending += n
		}
	}
	return stats, nil
}

func (q *syncQueriesImpl) Snapshot(ctx context.Context, shopID, stockID string) (*SnapshotView, error) {
	snap, err := q.snapshots.Find(ctx, shopID, stockID)
	if err != nil {
		return nil, errs.Wrap(err, "load snapshot")
	}
	if snap == nil {
		return nil, ErrSnapshotNotFound
	}
	return &SnapshotView{
		ShopID:              snap.ShopID(),
		StockID:             snap.StockID(),
		ProductID:           snap.ProductID(),
		Brand:               snap.Brand(),
		CategoryID:          snap.CategoryID(),
		Sizes:               snap.Sizes(),
		HasOptionOutOfStock: snap.HasOptionOutOfStock(),
		Options:             snap.Options(),
		UpdatedAt:           snap.UpdatedAt(),
	}, nil
}
