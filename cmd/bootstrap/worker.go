package bootstrap

import (
	"context"
	"log/slog"

	"catalog-sync/internal/infra/messaging"
	"catalog-sync/internal/pkg/config"
	"catalog-sync/internal/usecase/commands"
	"catalog-sync/internal/usecase/productsync"
	"catalog-sync/internal/usecase/shared"
	"catalog-sync/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(
		runScheduler,
		runStockEventConsumer,
	),
)

func NewScheduler(
	cfg config.Config,
	settingsReader shared.SettingsReader,
	dispatcher productsync.Dispatcher,
	maintenance commands.MaintenanceCommands,
	logger *slog.Logger,
) (*worker.Scheduler, error) {
	return worker.NewScheduler(cfg.Sync, settingsReader, dispatcher, maintenance, logger)
}

func runScheduler(lc fx.Lifecycle, s *worker.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
}

// runStockEventConsumer starts the Kafka intake when it is enabled.
func runStockEventConsumer(lc fx.Lifecycle, cfg config.Config, intake commands.IntakeCommands, logger *slog.Logger) {
	if !cfg.Kafka.Enabled {
		logger.Info("stock event consumer disabled")
		return
	}

	consumer := messaging.NewStockEventConsumer(messaging.NewStockEventReader(cfg.Kafka), intake, logger)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := consumer.Run(ctx); err != nil {
					logger.Error("stock event consumer exited", slog.String("error", err.Error()))
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return consumer.Close()
		},
	})
}
