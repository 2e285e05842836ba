package repository

import (
	"context"
	"time"

	"catalog-sync/internal/domain/queue"
	"catalog-sync/internal/infra"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const queueColumns = `id, shop_id, stock_id, status, retry_count, locked_until, last_error, created_at, updated_at`

const pendingStatuses = `('create', 'update', 'delete')`

type QueueRepository struct {
	db DBTX
}

func NewQueueRepository(db DBTX) *QueueRepository {
	return &QueueRepository{db: db}
}

func (r *QueueRepository) Insert(ctx context.Context, entries []*queue.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(`INSERT INTO queue_entries (`+queueColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			e.ID(), e.ShopID(), e.StockID(), e.Status().String(), e.RetryCount(),
			pgconv.TimePtrToPgtype(e.LockedUntil()), e.LastError(), e.CreatedAt(), e.UpdatedAt())
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return infra.WrapRepoErr("failed to insert queue entries", err)
	}
	return nil
}

func (r *QueueRepository) FindPending(ctx context.Context, shopID string, now time.Time, limit int) ([]*queue.Entry, error) {
	rows, err := r.db.Query(ctx, `SELECT `+queueColumns+`
		FROM queue_entries
		WHERE shop_id = $1
		  AND status IN `+pendingStatuses+`
		  AND (locked_until IS NULL OR locked_until < $2)
		ORDER BY created_at, id
		LIMIT $3`, shopID, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pending queue entries", err)
	}
	defer rows.Close()

	var out []*queue.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan queue entry", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read queue entries", err)
	}
	return out, nil
}

// Lock is a single conditional update, so two dispatchers racing for the same
// rows split them instead of both claiming them.
func (r *QueueRepository) Lock(ctx context.Context, ids []uuid.UUID, now, until time.Time) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, `UPDATE queue_entries
		SET locked_until = $3
		WHERE id = ANY($1)
		  AND status IN `+pendingStatuses+`
		  AND (locked_until IS NULL OR locked_until < $2)
		RETURNING id`, ids, now, until)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock queue entries", err)
	}

	claimed, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read locked queue entries", err)
	}
	return claimed, nil
}

// Unlock only clears leases that still carry until, so a run whose lease
// expired cannot release entries another run has since claimed.
func (r *QueueRepository) Unlock(ctx context.Context, ids []uuid.UUID, until time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, `UPDATE queue_entries
		SET locked_until = NULL
		WHERE id = ANY($1) AND locked_until = $2`, ids, until); err != nil {
		return infra.WrapRepoErr("failed to unlock queue entries", err)
	}
	return nil
}

func (r *QueueRepository) Save(ctx context.Context, e *queue.Entry) error {
	tag, err := r.db.Exec(ctx, `UPDATE queue_entries
		SET status = $2, retry_count = $3, last_error = $4, updated_at = $5
		WHERE id = $1 AND locked_until IS NOT DISTINCT FROM $6`,
		e.ID(), e.Status().String(), e.RetryCount(), e.LastError(), e.UpdatedAt(),
		pgconv.TimePtrToPgtype(e.LockedUntil()))
	if err != nil {
		return infra.WrapRepoErr("failed to save queue entry", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.Mark(infra.NewRepoErr(infra.KindConflict, "queue entry lease lost"), queue.ErrLeaseLost)
	}
	return nil
}

func (r *QueueRepository) MarkSucceeded(ctx context.Context, ids []uuid.UUID, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `UPDATE queue_entries
		SET status = 'success', last_error = '', updated_at = $2
		WHERE id = ANY($1) AND status IN `+pendingStatuses, ids, now)
	if err != nil {
		return infra.WrapRepoErr("failed to mark queue entries succeeded", err)
	}
	return nil
}

func (r *QueueRepository) CountByStatus(ctx context.Context, shopID string) (map[queue.Status]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, count(*)
		FROM queue_entries
		WHERE shop_id = $1
		GROUP BY status`, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count queue entries", err)
	}
	defer rows.Close()

	counts := make(map[queue.Status]int)
	for rows.Next() {
		var (
			raw string
			n   int
		)
		if err := rows.Scan(&raw, &n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan queue count", err)
		}
		status, err := queue.ParseStatus(raw)
		if err != nil {
			return nil, infra.WrapRepoErr("unknown queue status in database", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read queue counts", err)
	}
	return counts, nil
}

func (r *QueueRepository) PurgeSucceeded(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM queue_entries WHERE status = 'success' AND updated_at < $1`, before)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge queue entries", err)
	}
	return tag.RowsAffected(), nil
}

func (r *QueueRepository) DeleteByShop(ctx context.Context, shopID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM queue_entries WHERE shop_id = $1`, shopID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete queue entries", err)
	}
	return tag.RowsAffected(), nil
}

func scanEntry(row pgx.Row) (*queue.Entry, error) {
	var (
		id                   uuid.UUID
		shopID, stockID, raw string
		retryCount           int
		lockedUntil          pgtype.Timestamptz
		lastError            string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &shopID, &stockID, &raw, &retryCount, &lockedUntil, &lastError, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	status, err := queue.ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	return queue.ReconstructEntry(id, shopID, stockID, status, retryCount,
		pgconv.TimePtrFromPgtype(lockedUntil), lastError, createdAt, updatedAt), nil
}
