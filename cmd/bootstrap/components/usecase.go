package components

import (
	"log/slog"

	"catalog-sync/internal/pkg/clock"
	"catalog-sync/internal/pkg/config"
	"catalog-sync/internal/usecase"
	"catalog-sync/internal/usecase/commands"
	"catalog-sync/internal/usecase/productsync"
	"catalog-sync/internal/usecase/queries"
	"catalog-sync/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseSyncModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewIntakeCommands,
		commands.NewMaintenanceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSyncQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseSyncModule = fx.Module("usecase/productsync",
	fx.Provide(
		NewSyncHandlers,
		NewBookkeeper,
		NewDispatcher,
	),
)

func NewIntakeCommands(
	cfg config.Config,
	q shared.QueueRepository,
	snapshots shared.SnapshotRepository,
	settingsReader shared.SettingsReader,
	retailer shared.Retailer,
	clk clock.Clock,
	logger *slog.Logger,
) commands.IntakeCommands {
	return commands.NewIntakeUseCase(q, snapshots, settingsReader, retailer, clk, commands.IntakeOptions{
		ImportPageSize:  cfg.Retailer.PageSize,
		RequeuePageSize: cfg.Sync.RequeuePageSize,
	}, logger)
}

func NewSyncHandlers(
	cfg config.Config,
	retailer shared.Retailer,
	storefront shared.Storefront,
	snapshots shared.SnapshotRepository,
	identities shared.IdentityRepository,
	uow shared.UnitOfWork,
	clk clock.Clock,
	logger *slog.Logger,
) (*productsync.Handlers, error) {
	policy, err := productsync.ParseMissingStockPolicy(cfg.Sync.MissingStockPolicy)
	if err != nil {
		return nil, err
	}
	return productsync.NewHandlers(retailer, storefront, snapshots, identities, uow, clk, policy, logger), nil
}

func NewBookkeeper(cfg config.Config, q shared.QueueRepository, clk clock.Clock, logger *slog.Logger) *productsync.Bookkeeper {
	return productsync.NewBookkeeper(q, clk, cfg.Sync.MaxAttempts, logger)
}

func NewDispatcher(
	cfg config.Config,
	settingsReader shared.SettingsReader,
	storefront shared.Storefront,
	q shared.QueueRepository,
	handlers *productsync.Handlers,
	book *productsync.Bookkeeper,
	clk clock.Clock,
	logger *slog.Logger,
) productsync.Dispatcher {
	return productsync.NewDispatcher(settingsReader, storefront, q, handlers, book, clk, productsync.Options{
		BatchSize:   cfg.Sync.BatchSize,
		LeaseTTL:    cfg.Sync.LeaseTTL,
		Concurrency: cfg.Sync.Concurrency,
	}, logger)
}
