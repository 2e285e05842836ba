package commands

import (
	"context"
	"log/slog"

	"catalog-sync/internal/domain/queue"
	"catalog-sync/internal/domain/settings"
	"catalog-sync/internal/pkg/clock"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

// Intent is one requested change for one retailer item.
type Intent struct {
	StockID string
	Action  queue.Status
}

type RequeueScope string

const (
	RequeueBrands     RequeueScope = "brands"
	RequeueCategories RequeueScope = "categories"
	RequeueAll        RequeueScope = "all"
)

type ImportResult struct {
	Scanned  int `json:"scanned"`
	Enqueued int `json:"enqueued"`
}

type IntakeCommands interface {
	Enqueue(ctx context.Context, shopID, stockID string, action queue.Status) (uuid.UUID, error)
	EnqueueBatch(ctx context.Context, shopID string, intents []Intent) (int, error)
	Import(ctx context.Context, shopID string) (*ImportResult, error)
	Requeue(ctx context.Context, shopID string, scope RequeueScope, values []string) (int, error)
}

type IntakeOptions struct {
	ImportPageSize  int
	RequeuePageSize int
}

type intakeUseCaseImpl struct {
	queue     shared.QueueRepository
	snapshots shared.SnapshotRepository
	settings  shared.SettingsReader
	retailer  shared.Retailer
	clock     clock.Clock
	opts      IntakeOptions
	logger    *slog.Logger
}

func NewIntakeUseCase(
	q shared.QueueRepository,
	snapshots shared.SnapshotRepository,
	settingsReader shared.SettingsReader,
	retailer shared.Retailer,
	clk clock.Clock,
	opts IntakeOptions,
	logger *slog.Logger,
) IntakeCommands {
	if opts.ImportPageSize <= 0 {
		opts.ImportPageSize = 100
	}
	if opts.RequeuePageSize <= 0 {
		opts.RequeuePageSize = 500
	}
	return &intakeUseCaseImpl{
		queue:     q,
		snapshots: snapshots,
		settings:  settingsReader,
		retailer:  retailer,
		clock:     clk,
		opts:      opts,
		logger:    logger,
	}
}

func (uc *intakeUseCaseImpl) Enqueue(ctx context.Context, shopID, stockID string, action queue.Status) (uuid.UUID, error) {
	e, err := queue.NewEntry(shopID, stockID, action, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidIntent)
	}
	if err := uc.queue.Insert(ctx, []*queue.Entry{e}); err != nil {
		return uuid.Nil, errs.Wrap(err, "insert queue entry")
	}
	return e.ID(), nil
}

// EnqueueBatch validates every intent before writing any of them.
func (uc *intakeUseCaseImpl) EnqueueBatch(ctx context.Context, shopID string, intents []Intent) (int, error) {
	if len(intents) == 0 {
		return 0, nil
	}
	now := uc.clock.Now()
	entries := make([]*queue.Entry, 0, len(intents))
	for _, in := range intents {
		e, err := queue.NewEntry(shopID, in.StockID, in.Action, now)
		if err != nil {
			return 0, errs.Mark(errs.Wrapf(err, "intent for stock %q", in.StockID), ErrInvalidIntent)
		}
		entries = append(entries, e)
	}
	if err := uc.queue.Insert(ctx, entries); err != nil {
		return 0, errs.Wrap(err, "insert queue entries")
	}
	return len(entries), nil
}

// Import pages through the retailer feed and queues a create for every item
// whose brand the shop lists.
func (uc *intakeUseCaseImpl) Import(ctx context.Context, shopID string) (*ImportResult, error) {
	shop, brands, err := uc.loadShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	res := &ImportResult{}
	for offset := 0; ; {
		page, err := uc.retailer.ListStock(ctx, shop.RetailerAPIKey, offset, uc.opts.ImportPageSize)
		if err != nil {
			return res, errs.Wrapf(err, "list retailer stock at offset %d", offset)
		}
		if len(page.Items) == 0 {
			break
		}

		intents := make([]Intent, 0, len(page.Items))
		for _, item := range page.Items {
			if brands.Allows(item.Brand) {
				intents = append(intents, Intent{StockID: item.ID, Action: queue.StatusCreate})
			}
		}
		n, err := uc.EnqueueBatch(ctx, shopID, intents)
		if err != nil {
			return res, err
		}
		res.Scanned += len(page.Items)
		res.Enqueued += n

		offset += len(page.Items)
		if offset >= page.Total {
			break
		}
	}

	uc.logger.Info("import queued", slog.String("shop_id", shopID),
		slog.Int("scanned", res.Scanned), slog.Int("enqueued", res.Enqueued))
	return res, nil
}

// Requeue queues an update for every synced item matching scope. The
// snapshot store is walked by keyset pages so no scan holds a large result.
func (uc *intakeUseCaseImpl) Requeue(ctx context.Context, shopID string, scope RequeueScope, values []string) (int, error) {
	var filter shared.SnapshotFilter
	switch scope {
	case RequeueBrands:
		filter.Brands = values
	case RequeueCategories:
		filter.CategoryIDs = values
	case RequeueAll:
	default:
		return 0, ErrInvalidScope
	}
	if scope != RequeueAll && len(values) == 0 {
		return 0, ErrNoRequeueValues
	}

	total := 0
	after := ""
	for {
		ids, err := uc.snapshots.ListStockIDs(ctx, shopID, filter, after, uc.opts.RequeuePageSize)
		if err != nil {
			return total, errs.Wrap(err, "list snapshots")
		}
		if len(ids) == 0 {
			break
		}
		intents := make([]Intent, len(ids))
		for i, id := range ids {
			intents[i] = Intent{StockID: id, Action: queue.StatusUpdate}
		}
		n, err := uc.EnqueueBatch(ctx, shopID, intents)
		if err != nil {
			return total, err
		}
		total += n
		after = ids[len(ids)-1]
		if len(ids) < uc.opts.RequeuePageSize {
			break
		}
	}

	uc.logger.Info("requeue queued", slog.String("shop_id", shopID),
		slog.String("scope", string(scope)), slog.Int("enqueued", total))
	return total, nil
}

func (uc *intakeUseCaseImpl) loadShop(ctx context.Context, shopID string) (*settings.Shop, settings.BrandFilter, error) {
	shop, err := uc.settings.Shop(ctx, shopID)
	if err != nil {
		return nil, settings.BrandFilter{}, errs.Wrap(err, "load shop")
	}
	if shop == nil {
		return nil, settings.BrandFilter{}, ErrShopNotFound
	}
	brands, err := uc.settings.BrandFilter(ctx, shopID)
	if err != nil {
		return nil, settings.BrandFilter{}, errs.Wrap(err, "load brand filter")
	}
	return shop, brands, nil
}
