package shared

import (
	"context"
	"time"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/queue"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Queue() QueueRepository
	Snapshots() SnapshotRepository
	Identities() IdentityRepository
}

type QueueRepository interface {
	Insert(ctx context.Context, entries []*queue.Entry) error
	// FindPending returns up to limit action entries whose lease is absent or
	// expired at now, oldest first.
	FindPending(ctx context.Context, shopID string, now time.Time, limit int) ([]*queue.Entry, error)
	// Lock leases the eligible subset of ids until the given time and returns
	// the ids it actually claimed.
	Lock(ctx context.Context, ids []uuid.UUID, now, until time.Time) ([]uuid.UUID, error)
	// Unlock releases the ids still leased until the given time. Entries
	// reclaimed by another run after expiry keep their new lease.
	Unlock(ctx context.Context, ids []uuid.UUID, until time.Time) error
	// Save writes the entry's status fields only while the stored lease still
	// equals e.LockedUntil(). Otherwise it returns queue.ErrLeaseLost.
	Save(ctx context.Context, e *queue.Entry) error
	MarkSucceeded(ctx context.Context, ids []uuid.UUID, now time.Time) error
	CountByStatus(ctx context.Context, shopID string) (map[queue.Status]int, error)
	PurgeSucceeded(ctx context.Context, before time.Time) (int64, error)
	DeleteByShop(ctx context.Context, shopID string) (int64, error)
}

type SnapshotFilter struct {
	Brands      []string
	CategoryIDs []string
}

type SnapshotRepository interface {
	// Find returns nil without error when no snapshot exists.
	Find(ctx context.Context, shopID, stockID string) (*catalog.Snapshot, error)
	// Save upserts the snapshot and replaces its option mappings.
	Save(ctx context.Context, s *catalog.Snapshot) error
	Delete(ctx context.Context, shopID, stockID string) error
	// ListStockIDs pages stock ids in ascending order after the cursor.
	ListStockIDs(ctx context.Context, shopID string, filter SnapshotFilter, after string, limit int) ([]string, error)
	DeleteByShop(ctx context.Context, shopID string) (int64, error)
}

// IdentityRepository keeps the storefront product id of a stock item beyond
// the lifetime of its snapshot.
type IdentityRepository interface {
	// Find returns "" without error when no identity exists.
	Find(ctx context.Context, shopID, stockID string) (string, error)
	Remember(ctx context.Context, shopID, stockID, productID string, now time.Time) error
	Forget(ctx context.Context, shopID, stockID string) error
	DeleteByShop(ctx context.Context, shopID string) (int64, error)
}
