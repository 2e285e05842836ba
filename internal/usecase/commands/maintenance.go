package commands

import (
	"context"
	"log/slog"
	"time"

	"catalog-sync/internal/pkg/clock"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/productsync"
	"catalog-sync/internal/usecase/shared"
)

type UninstallResult struct {
	QueueEntries int64 `json:"queueEntries"`
	Snapshots    int64 `json:"snapshots"`
	Identities   int64 `json:"identities"`
}

type MetafieldResult struct {
	Created  int `json:"created"`
	Existing int `json:"existing"`
}

type MaintenanceCommands interface {
	PurgeSucceeded(ctx context.Context, olderThan time.Duration) (int64, error)
	Uninstall(ctx context.Context, shopID string) (*UninstallResult, error)
	EnsureMetafieldDefinitions(ctx context.Context, shopID string) (*MetafieldResult, error)
}

type maintenanceUseCaseImpl struct {
	uow        shared.UnitOfWork
	queue      shared.QueueRepository
	settings   shared.SettingsReader
	storefront shared.Storefront
	clock      clock.Clock
	logger     *slog.Logger
}

func NewMaintenanceUseCase(
	uow shared.UnitOfWork,
	q shared.QueueRepository,
	settingsReader shared.SettingsReader,
	storefront shared.Storefront,
	clk clock.Clock,
	logger *slog.Logger,
) MaintenanceCommands {
	return &maintenanceUseCaseImpl{
		uow:        uow,
		queue:      q,
		settings:   settingsReader,
		storefront: storefront,
		clock:      clk,
		logger:     logger,
	}
}

// PurgeSucceeded drops success entries older than the retention window.
// Failed entries stay for operators.
func (uc *maintenanceUseCaseImpl) PurgeSucceeded(ctx context.Context, olderThan time.Duration) (int64, error) {
	before := uc.clock.Now().Add(-olderThan)
	n, err := uc.queue.PurgeSucceeded(ctx, before)
	if err != nil {
		return 0, errs.Wrap(err, "purge succeeded entries")
	}
	uc.logger.Info("purged succeeded queue entries", slog.Int64("deleted", n), slog.Time("before", before))
	return n, nil
}

func (uc *maintenanceUseCaseImpl) Uninstall(ctx context.Context, shopID string) (*UninstallResult, error) {
	res := &UninstallResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if res.QueueEntries, err = tx.Queue().DeleteByShop(ctx, shopID); err != nil {
			return err
		}
		if res.Snapshots, err = tx.Snapshots().DeleteByShop(ctx, shopID); err != nil {
			return err
		}
		res.Identities, err = tx.Identities().DeleteByShop(ctx, shopID)
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "uninstall shop")
	}
	uc.logger.Info("shop data removed", slog.String("shop_id", shopID),
		slog.Int64("queue_entries", res.QueueEntries),
		slog.Int64("snapshots", res.Snapshots),
		slog.Int64("identities", res.Identities))
	return res, nil
}

// EnsureMetafieldDefinitions creates the product metafield definitions the
// sync writes to. Definitions that already exist are left alone.
func (uc *maintenanceUseCaseImpl) EnsureMetafieldDefinitions(ctx context.Context, shopID string) (*MetafieldResult, error) {
	shop, err := uc.settings.Shop(ctx, shopID)
	if err != nil {
		return nil, errs.Wrap(err, "load shop")
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}

	res := &MetafieldResult{}
	for _, def := range productsync.MetafieldDefinitions() {
		err := uc.storefront.CreateMetafieldDefinition(ctx, shop.Credentials(), def)
		switch {
		case err == nil:
			res.Created++
		case errs.Is(err, shared.ErrAlreadyExists):
			res.Existing++
		default:
			return res, errs.Wrapf(err, "create metafield definition %s.%s", def.Namespace, def.Key)
		}
	}
	return res, nil
}
