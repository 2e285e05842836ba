package worker

import (
	"context"
	"log/slog"
	"sync/atomic"

	"catalog-sync/internal/pkg/config"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/commands"
	"catalog-sync/internal/usecase/productsync"
	"catalog-sync/internal/usecase/shared"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Scheduler runs one dispatcher batch per active shop on every tick and
// purges settled queue entries on its own schedule.
type Scheduler struct {
	cron        *cron.Cron
	settings    shared.SettingsReader
	dispatcher  productsync.Dispatcher
	maintenance commands.MaintenanceCommands
	cfg         config.SyncConfig
	logger      *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	rounds atomic.Int64
}

func NewScheduler(
	cfg config.SyncConfig,
	settingsReader shared.SettingsReader,
	dispatcher productsync.Dispatcher,
	maintenance commands.MaintenanceCommands,
	logger *slog.Logger,
) (*Scheduler, error) {
	cl := cronLogger{logger: logger}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		settings:    settingsReader,
		dispatcher:  dispatcher,
		maintenance: maintenance,
		cfg:         cfg,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
	}

	if _, err := s.cron.AddFunc(cfg.Schedule, func() { _ = s.DispatchAll(s.ctx) }); err != nil {
		cancel()
		return nil, errs.Mark(errs.Wrapf(err, "invalid sync schedule %q", cfg.Schedule), errs.ErrInvalidArgument)
	}
	if _, err := s.cron.AddFunc(cfg.PurgeSchedule, func() { s.Purge(s.ctx) }); err != nil {
		cancel()
		return nil, errs.Mark(errs.Wrapf(err, "invalid purge schedule %q", cfg.PurgeSchedule), errs.ErrInvalidArgument)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Info("scheduler started",
		slog.String("schedule", s.cfg.Schedule),
		slog.String("purge_schedule", s.cfg.PurgeSchedule))
	s.cron.Start()
}

// Stop cancels running jobs and waits for them to return.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DispatchAll runs one batch for every active shop, a bounded number of
// shops at a time. A failing shop is logged and does not stop the others.
func (s *Scheduler) DispatchAll(ctx context.Context) error {
	round := s.rounds.Add(1)
	log := s.logger.With(slog.Int64("round", round))

	shopIDs, err := s.settings.ActiveShopIDs(ctx)
	if err != nil {
		log.Error("failed to list active shops", slog.String("error", err.Error()))
		return errs.Wrap(err, "list active shops")
	}

	var g errgroup.Group
	limit := s.cfg.ShopConcurrency
	if limit <= 0 {
		limit = 1
	}
	g.SetLimit(limit)

	var failed atomic.Int32
	for _, shopID := range shopIDs {
		g.Go(func() error {
			res, err := s.dispatcher.Dispatch(ctx, shopID)
			if err != nil {
				failed.Add(1)
				log.Error("dispatch failed",
					slog.String("shop_id", shopID),
					slog.String("error", err.Error()))
				return nil
			}
			if res.Skipped != "" {
				log.Debug("shop skipped", slog.String("shop_id", shopID), slog.String("reason", res.Skipped))
			}
			return nil
		})
	}
	_ = g.Wait()

	log.Info("dispatch round finished",
		slog.Int("shops", len(shopIDs)),
		slog.Int("failed", int(failed.Load())))
	return nil
}

func (s *Scheduler) Purge(ctx context.Context) {
	n, err := s.maintenance.PurgeSucceeded(ctx, s.cfg.PurgeAfter)
	if err != nil {
		s.logger.Error("purge failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("purged settled queue entries", slog.Int64("deleted", n))
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err.Error())...)
}
