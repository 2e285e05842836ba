package productsync

import (
	"context"
	"fmt"
	"log/slog"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/queue"
	"catalog-sync/internal/domain/settings"
	"catalog-sync/internal/pkg/clock"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/shared"
)

// MissingStockPolicy decides what an update does when the retailer reports
// the item as gone.
type MissingStockPolicy string

const (
	MissingStockRetry  MissingStockPolicy = "retry"
	MissingStockDelete MissingStockPolicy = "delete"
)

func ParseMissingStockPolicy(s string) (MissingStockPolicy, error) {
	switch p := MissingStockPolicy(s); p {
	case MissingStockRetry, MissingStockDelete:
		return p, nil
	case "":
		return MissingStockRetry, nil
	default:
		return "", errs.Mark(fmt.Errorf("unknown missing stock policy %q", s), errs.ErrInvalidArgument)
	}
}

// Handlers converge one queue entry at a time. They read freely but only
// report an Outcome; queue writes belong to the Bookkeeper.
type Handlers struct {
	retailer     shared.Retailer
	storefront   shared.Storefront
	snapshots    shared.SnapshotRepository
	identities   shared.IdentityRepository
	uow          shared.UnitOfWork
	clock        clock.Clock
	missingStock MissingStockPolicy
	logger       *slog.Logger
}

func NewHandlers(
	retailer shared.Retailer,
	storefront shared.Storefront,
	snapshots shared.SnapshotRepository,
	identities shared.IdentityRepository,
	uow shared.UnitOfWork,
	clk clock.Clock,
	missingStock MissingStockPolicy,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		retailer:     retailer,
		storefront:   storefront,
		snapshots:    snapshots,
		identities:   identities,
		uow:          uow,
		clock:        clk,
		missingStock: missingStock,
		logger:       logger,
	}
}

// Handle routes an entry to the handler for its action.
func (h *Handlers) Handle(ctx context.Context, sc *settings.SyncContext, e *queue.Entry) Outcome {
	switch e.Status() {
	case queue.StatusCreate:
		return h.Create(ctx, sc, e.StockID())
	case queue.StatusUpdate:
		return h.Update(ctx, sc, e.StockID())
	case queue.StatusDelete:
		return h.Delete(ctx, sc, e.StockID())
	default:
		return retry(fmt.Errorf("%w: %s", queue.ErrNotAnAction, e.Status()), "route entry")
	}
}

func (h *Handlers) log(sc *settings.SyncContext, stockID string) *slog.Logger {
	return h.logger.With(slog.String("shop_id", sc.ShopID()), slog.String("stock_id", stockID))
}

func (h *Handlers) fetchStock(ctx context.Context, sc *settings.SyncContext, stockID string) (catalog.StockRecord, error) {
	rec, err := h.retailer.GetStock(ctx, sc.Shop().RetailerAPIKey, stockID)
	if err != nil {
		return catalog.StockRecord{}, err
	}
	if err := rec.Validate(); err != nil {
		return catalog.StockRecord{}, errs.Mark(errs.Wrap(err, "invalid retailer record"), errs.ErrInvalidArgument)
	}
	return rec, nil
}

func (h *Handlers) saveSnapshot(ctx context.Context, snap *catalog.Snapshot) error {
	return h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Snapshots().Save(ctx, snap)
	})
}
