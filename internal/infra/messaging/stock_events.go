package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"catalog-sync/internal/domain/queue"
	"catalog-sync/internal/pkg/config"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/commands"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
)

// StockEvent is one catalog change fanned out from retailer webhooks.
type StockEvent struct {
	ShopID     string    `json:"shop_id"`
	StockID    string    `json:"stock_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// MessageReader is the subset of *kafka.Reader the consumer drives.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewStockEventReader(cfg config.KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		CommitInterval: 0,
	})
}

// StockEventConsumer turns stock events into queue entries. A message is
// committed once it is queued or found to be unusable; a poison message never
// blocks its partition.
type StockEventConsumer struct {
	reader     MessageReader
	intake     commands.IntakeCommands
	logger     *slog.Logger
	newBackOff func() backoff.BackOff
}

func NewStockEventConsumer(reader MessageReader, intake commands.IntakeCommands, logger *slog.Logger) *StockEventConsumer {
	return &StockEventConsumer{
		reader: reader,
		intake: intake,
		logger: logger,
		newBackOff: func() backoff.BackOff {
			eb := backoff.NewExponentialBackOff()
			eb.MaxElapsedTime = 0
			eb.MaxInterval = 30 * time.Second
			return eb
		},
	}
}

// Run consumes until ctx is cancelled.
func (c *StockEventConsumer) Run(ctx context.Context) error {
	c.logger.Info("stock event consumer started")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.logger.Info("stock event consumer stopped")
				return nil
			}
			return errs.Wrap(err, "fetch stock event")
		}

		if err := c.handle(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errs.Wrap(err, "commit stock event")
		}
	}
}

func (c *StockEventConsumer) Close() error {
	return c.reader.Close()
}

func (c *StockEventConsumer) handle(ctx context.Context, msg kafka.Message) error {
	log := c.logger.With(slog.Int("partition", msg.Partition), slog.Int64("offset", msg.Offset))

	var ev StockEvent
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		log.Warn("dropping malformed stock event", slog.String("error", err.Error()))
		return nil
	}
	action, err := queue.ParseStatus(ev.Action)
	if err != nil || !action.IsAction() {
		log.Warn("dropping stock event with unknown action", slog.String("action", ev.Action))
		return nil
	}

	intents := []commands.Intent{{StockID: ev.StockID, Action: action}}
	enqueue := func() error {
		_, err := c.intake.EnqueueBatch(ctx, ev.ShopID, intents)
		if errs.Is(err, commands.ErrInvalidIntent) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		log.Warn("enqueue failed, retrying",
			slog.String("shop_id", ev.ShopID),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()))
	}

	err = backoff.RetryNotify(enqueue, backoff.WithContext(c.newBackOff(), ctx), notify)
	if errs.Is(err, commands.ErrInvalidIntent) {
		log.Warn("dropping invalid stock event",
			slog.String("shop_id", ev.ShopID),
			slog.String("stock_id", ev.StockID),
			slog.String("error", err.Error()))
		return nil
	}
	if err != nil {
		return errs.Wrap(err, "enqueue stock event")
	}

	log.Debug("stock event queued",
		slog.String("shop_id", ev.ShopID),
		slog.String("stock_id", ev.StockID),
		slog.String("action", action.String()))
	return nil
}
