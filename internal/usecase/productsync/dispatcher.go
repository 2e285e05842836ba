package productsync

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"catalog-sync/internal/domain/queue"
	"catalog-sync/internal/domain/settings"
	"catalog-sync/internal/pkg/clock"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	BatchSize   int
	LeaseTTL    time.Duration
	Concurrency int
}

func (o Options) withDefaults() Options {
	if o.BatchSize <= 0 {
		o.BatchSize = 10
	}
	if o.LeaseTTL <= 0 {
		o.LeaseTTL = 5 * time.Minute
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 5
	}
	return o
}

// BatchResult summarizes one dispatcher run for one shop.
type BatchResult struct {
	ShopID     string `json:"shopId"`
	Skipped    string `json:"skipped,omitempty"`
	Selected   int    `json:"selected"`
	Claimed    int    `json:"claimed"`
	Duplicates int    `json:"duplicates"`
	Succeeded  int    `json:"succeeded"`
	Retrying   int    `json:"retrying"`
	Failed     int    `json:"failed"`
}

type Dispatcher interface {
	Dispatch(ctx context.Context, shopID string) (BatchResult, error)
}

type dispatcherImpl struct {
	settings   shared.SettingsReader
	storefront shared.Storefront
	queue      shared.QueueRepository
	handlers   *Handlers
	book       *Bookkeeper
	clock      clock.Clock
	opts       Options
	logger     *slog.Logger
}

func NewDispatcher(
	settingsReader shared.SettingsReader,
	storefront shared.Storefront,
	q shared.QueueRepository,
	handlers *Handlers,
	book *Bookkeeper,
	clk clock.Clock,
	opts Options,
	logger *slog.Logger,
) Dispatcher {
	return &dispatcherImpl{
		settings:   settingsReader,
		storefront: storefront,
		queue:      q,
		handlers:   handlers,
		book:       book,
		clock:      clk,
		opts:       opts.withDefaults(),
		logger:     logger,
	}
}

func (d *dispatcherImpl) Dispatch(ctx context.Context, shopID string) (BatchResult, error) {
	res := BatchResult{ShopID: shopID}
	log := d.logger.With(slog.String("shop_id", shopID))

	shop, err := d.settings.Shop(ctx, shopID)
	if err != nil {
		return res, errs.Wrap(err, "load shop")
	}
	if shop == nil || !shop.IsActive() {
		res.Skipped = settings.ErrShopInactive.Error()
		return res, nil
	}
	brands, err := d.settings.BrandFilter(ctx, shopID)
	if err != nil {
		return res, errs.Wrap(err, "load brand filter")
	}
	if brands.IsEmpty() {
		res.Skipped = settings.ErrNoBrands.Error()
		return res, nil
	}

	now := d.clock.Now()
	pending, err := d.queue.FindPending(ctx, shopID, now, d.opts.BatchSize)
	if err != nil {
		return res, errs.Wrap(err, "find pending entries")
	}
	res.Selected = len(pending)
	if len(pending) == 0 {
		return res, nil
	}

	// the lease end doubles as this run's ownership token; microsecond
	// precision matches what the store keeps
	until := now.Add(d.opts.LeaseTTL).Truncate(time.Microsecond)
	claimedIDs, err := d.queue.Lock(ctx, queue.IDs(pending), now, until)
	if err != nil {
		return res, errs.Wrap(err, "lock batch")
	}
	defer d.unlock(ctx, log, claimedIDs, until)

	claimed := claimedSubset(pending, claimedIDs)
	for _, e := range claimed {
		e.Lease(until)
	}
	res.Claimed = len(claimed)
	if len(claimed) == 0 {
		return res, nil
	}

	sc, err := d.buildContext(ctx, shop, brands)
	if err != nil {
		log.Warn("batch aborted, entries stay queued", slog.String("error", err.Error()))
		res.Skipped = err.Error()
		return res, errs.Wrap(err, "build sync context")
	}

	groups, duplicates := queue.Deduplicate(claimed)
	res.Duplicates = d.settleDuplicates(ctx, log, duplicates)

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(d.opts.Concurrency)
	for _, grp := range groups {
		g.Go(func() error {
			// entries for one stock id run in queue order
			for _, e := range grp.Entries {
				outcome := d.run(ctx, sc, e)
				status, err := d.book.Record(ctx, e, outcome)
				if err != nil {
					continue
				}
				mu.Lock()
				switch status {
				case queue.StatusSuccess:
					res.Succeeded++
				case queue.StatusFailed:
					res.Failed++
				default:
					res.Retrying++
				}
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	log.Info("batch finished",
		slog.Int("claimed", res.Claimed),
		slog.Int("duplicates", res.Duplicates),
		slog.Int("succeeded", res.Succeeded),
		slog.Int("retrying", res.Retrying),
		slog.Int("failed", res.Failed))
	return res, nil
}

// run shields the batch from a panicking handler; the entry is retried.
func (d *dispatcherImpl) run(ctx context.Context, sc *settings.SyncContext, e *queue.Entry) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = retry(fmt.Errorf("panic: %v", r), "handler panicked")
		}
	}()
	return d.handlers.Handle(ctx, sc, e)
}

func (d *dispatcherImpl) buildContext(ctx context.Context, shop *settings.Shop, brands settings.BrandFilter) (*settings.SyncContext, error) {
	shopID := shop.ID
	categories, err := d.settings.CategoryMappings(ctx, shopID)
	if err != nil {
		return nil, err
	}
	attributes, err := d.settings.AttributeMapping(ctx, shopID)
	if err != nil {
		return nil, err
	}
	general, err := d.settings.GeneralSetting(ctx, shopID)
	if err != nil {
		return nil, err
	}
	syncSetting, err := d.settings.SyncSetting(ctx, shopID)
	if err != nil {
		return nil, err
	}
	locationID, err := d.storefront.PrimaryLocationID(ctx, shop.Credentials())
	if err != nil {
		return nil, err
	}
	publicationID, err := d.storefront.OnlineStorePublicationID(ctx, shop.Credentials())
	if err != nil {
		return nil, err
	}

	return settings.NewSyncContext(settings.SyncContextInput{
		Shop:          shop,
		Brands:        brands,
		Categories:    categories,
		Attributes:    attributes,
		General:       general,
		Sync:          syncSetting,
		LocationID:    locationID,
		PublicationID: publicationID,
	})
}

func (d *dispatcherImpl) settleDuplicates(ctx context.Context, log *slog.Logger, duplicates []*queue.Entry) int {
	if len(duplicates) == 0 {
		return 0
	}
	if err := d.queue.MarkSucceeded(ctx, queue.IDs(duplicates), d.clock.Now()); err != nil {
		log.Warn("failed to settle duplicate entries", slog.String("error", err.Error()))
		return 0
	}
	return len(duplicates)
}

// unlock runs even when the caller's context is cancelled.
func (d *dispatcherImpl) unlock(ctx context.Context, log *slog.Logger, ids []uuid.UUID, until time.Time) {
	if len(ids) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := d.queue.Unlock(ctx, ids, until); err != nil {
		log.Error("failed to unlock batch", slog.Int("entries", len(ids)), slog.String("error", err.Error()))
	}
}

func claimedSubset(entries []*queue.Entry, ids []uuid.UUID) []*queue.Entry {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	out := make([]*queue.Entry, 0, len(ids))
	for _, e := range entries {
		if _, ok := set[e.ID()]; ok {
			out = append(out, e)
		}
	}
	return out
}
