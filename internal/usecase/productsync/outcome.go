package productsync

import (
	"context"
	"log/slog"

	"catalog-sync/internal/domain/queue"
	"catalog-sync/internal/pkg/clock"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/shared"
)

type outcomeKind int

const (
	outcomeSuccess outcomeKind = iota
	outcomeRetry
)

// Outcome is what a handler decided for one entry. Handlers never write the
// queue themselves; the Bookkeeper does.
type Outcome struct {
	kind   outcomeKind
	reason string
	err    error
}

func succeeded(reason string) Outcome {
	return Outcome{kind: outcomeSuccess, reason: reason}
}

func retry(err error, msg string) Outcome {
	return Outcome{kind: outcomeRetry, reason: msg, err: errs.Wrap(err, msg)}
}

func (o Outcome) IsSuccess() bool { return o.kind == outcomeSuccess }
func (o Outcome) Reason() string  { return o.reason }
func (o Outcome) Err() error      { return o.err }

// Bookkeeper persists handler outcomes and enforces the attempt cap.
type Bookkeeper struct {
	queue       shared.QueueRepository
	clock       clock.Clock
	maxAttempts int
	logger      *slog.Logger
}

func NewBookkeeper(q shared.QueueRepository, clk clock.Clock, maxAttempts int, logger *slog.Logger) *Bookkeeper {
	if maxAttempts <= 0 {
		maxAttempts = queue.DefaultMaxAttempts
	}
	return &Bookkeeper{queue: q, clock: clk, maxAttempts: maxAttempts, logger: logger}
}

// Record applies o to e and saves it. The returned status is the entry's
// status after the write.
func (b *Bookkeeper) Record(ctx context.Context, e *queue.Entry, o Outcome) (queue.Status, error) {
	now := b.clock.Now()
	log := b.logger.With(
		slog.String("shop_id", e.ShopID()),
		slog.String("stock_id", e.StockID()),
		slog.String("entry_id", e.ID().String()),
		slog.String("action", e.Status().String()),
	)

	var err error
	if o.IsSuccess() {
		err = e.Succeed(now)
	} else {
		err = e.Fail(now, o.err, b.maxAttempts)
	}
	if err != nil {
		log.Error("illegal queue transition", slog.String("error", err.Error()))
		return e.Status(), err
	}

	if err := b.queue.Save(ctx, e); err != nil {
		if errs.Is(err, queue.ErrLeaseLost) {
			log.Warn("lease expired before the outcome was recorded, leaving the entry to its new holder")
			return e.Status(), err
		}
		log.Error("failed to persist queue entry", slog.String("error", err.Error()))
		return e.Status(), errs.Wrap(err, "save queue entry")
	}

	switch e.Status() {
	case queue.StatusSuccess:
		log.Info("queue entry succeeded", slog.String("reason", o.reason))
	case queue.StatusFailed:
		log.Error("queue entry failed permanently",
			slog.Int("retry_count", e.RetryCount()),
			slog.String("error", e.LastError()))
	default:
		log.Warn("queue entry will be retried",
			slog.Int("retry_count", e.RetryCount()),
			slog.String("error", e.LastError()))
	}
	return e.Status(), nil
}
