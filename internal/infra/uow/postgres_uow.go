package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"catalog-sync/internal/infra"
	"catalog-sync/internal/infra/repository"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxTxRetries = 3

	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	logger     *slog.Logger
	newBackOff func() backoff.BackOff
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:       pool,
		logger:     logger,
		newBackOff: newTxBackOff,
	}
}

// Within runs fn in a ReadCommitted transaction. Serialization failures and
// deadlocks roll back and rerun fn from the start.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	attempt := 0
	op := func() error {
		attempt++
		err := u.attempt(ctx, options, fn, attempt)
		if err != nil && !isRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	}

	err := backoff.RetryNotify(op, backoff.WithContext(u.newBackOff(), ctx), notify)
	if err == nil {
		return nil
	}
	if isRetryableError(err) {
		u.logger.Error("transaction failed after max retries", "attempts", attempt, "error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

// attempt owns exactly one pgx transaction so no deferred rollbacks pile up
// across retries.
func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error, n int) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
		u.logger.Warn("rollback failed", "attempt", n, "error", rollbackErr.Error())
	}
	return err
}

func newTxBackOff() backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = 100 * time.Millisecond
	eb.RandomizationFactor = 0.2
	eb.Multiplier = 2
	eb.MaxElapsedTime = 0
	return backoff.WithMaxRetries(eb, maxTxRetries)
}

func isRetryableError(err error) bool {
	if infra.IsKind(err, infra.KindConflict) {
		return true
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx repository.DBTX

	// Lazy-initialized repositories
	queueRepo    shared.QueueRepository
	snapshotRepo shared.SnapshotRepository
	identityRepo shared.IdentityRepository
}

func (t *pgTx) Queue() shared.QueueRepository {
	if t.queueRepo == nil {
		t.queueRepo = repository.NewQueueRepository(t.dbtx)
	}
	return t.queueRepo
}

func (t *pgTx) Snapshots() shared.SnapshotRepository {
	if t.snapshotRepo == nil {
		t.snapshotRepo = repository.NewSnapshotRepository(t.dbtx)
	}
	return t.snapshotRepo
}

func (t *pgTx) Identities() shared.IdentityRepository {
	if t.identityRepo == nil {
		t.identityRepo = repository.NewIdentityRepository(t.dbtx)
	}
	return t.identityRepo
}
