//go:build unit

// Package memstore keeps queue, snapshot and identity state in memory with
// the same lease and status rules as the Postgres repositories.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/queue"
	"catalog-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu         sync.Mutex
	entries    map[uuid.UUID]*queue.Entry
	order      []uuid.UUID
	snapshots  map[string]*catalog.Snapshot
	identities map[string]string

	queue     *QueueStore
	snaps     *SnapshotStore
	idents    *IdentityStore
	WithinErr error
}

func New() *Store {
	s := &Store{
		entries:    make(map[uuid.UUID]*queue.Entry),
		snapshots:  make(map[string]*catalog.Snapshot),
		identities: make(map[string]string),
	}
	s.queue = &QueueStore{s: s}
	s.snaps = &SnapshotStore{s: s}
	s.idents = &IdentityStore{s: s}
	return s
}

func (s *Store) Queue() shared.QueueRepository         { return s.queue }
func (s *Store) Snapshots() shared.SnapshotRepository  { return s.snaps }
func (s *Store) Identities() shared.IdentityRepository { return s.idents }

// Within runs fn against the same stores. There is no rollback.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if s.WithinErr != nil {
		return s.WithinErr
	}
	return fn(ctx, s)
}

// Entry returns a copy of the stored entry.
func (s *Store) Entry(id uuid.UUID) *queue.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil
	}
	return copyEntry(e)
}

// Entries returns copies of all entries in insertion order.
func (s *Store) Entries() []*queue.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*queue.Entry, 0, len(s.order))
	for _, id := range s.order {
		if e, ok := s.entries[id]; ok {
			out = append(out, copyEntry(e))
		}
	}
	return out
}

// Put stores entries as they are, leases included.
func (s *Store) Put(entries ...*queue.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		if _, ok := s.entries[e.ID()]; !ok {
			s.order = append(s.order, e.ID())
		}
		s.entries[e.ID()] = copyEntry(e)
	}
}

func (s *Store) PutSnapshot(snap *catalog.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[key(snap.ShopID(), snap.StockID())] = copySnapshot(snap)
}

func (s *Store) Snapshot(shopID, stockID string) *catalog.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snapshots[key(shopID, stockID)]
	if !ok {
		return nil
	}
	return copySnapshot(snap)
}

func (s *Store) PutIdentity(shopID, stockID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identities[key(shopID, stockID)] = productID
}

func (s *Store) Identity(shopID, stockID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identities[key(shopID, stockID)]
}

type QueueStore struct{ s *Store }

func (q *QueueStore) Insert(_ context.Context, entries []*queue.Entry) error {
	q.s.Put(entries...)
	return nil
}

func (q *QueueStore) FindPending(_ context.Context, shopID string, now time.Time, limit int) ([]*queue.Entry, error) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	var out []*queue.Entry
	for _, id := range q.s.order {
		e, ok := q.s.entries[id]
		if !ok || e.ShopID() != shopID || !e.IsEligible(now) {
			continue
		}
		out = append(out, copyEntry(e))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (q *QueueStore) Lock(_ context.Context, ids []uuid.UUID, now, until time.Time) ([]uuid.UUID, error) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	var claimed []uuid.UUID
	for _, id := range ids {
		e, ok := q.s.entries[id]
		if !ok || !e.IsEligible(now) {
			continue
		}
		e.Lease(until)
		claimed = append(claimed, id)
	}
	return claimed, nil
}

func (q *QueueStore) Unlock(_ context.Context, ids []uuid.UUID, until time.Time) error {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	for _, id := range ids {
		if e, ok := q.s.entries[id]; ok && sameLease(e.LockedUntil(), &until) {
			e.Release()
		}
	}
	return nil
}

// Save keeps the stored lease and refuses writes from a run that lost it,
// like the SQL update does.
func (q *QueueStore) Save(_ context.Context, e *queue.Entry) error {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	cur, ok := q.s.entries[e.ID()]
	if !ok || !sameLease(cur.LockedUntil(), e.LockedUntil()) {
		return queue.ErrLeaseLost
	}
	q.s.entries[e.ID()] = queue.ReconstructEntry(e.ID(), e.ShopID(), e.StockID(), e.Status(),
		e.RetryCount(), cur.LockedUntil(), e.LastError(), e.CreatedAt(), e.UpdatedAt())
	return nil
}

func (q *QueueStore) MarkSucceeded(_ context.Context, ids []uuid.UUID, now time.Time) error {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	for _, id := range ids {
		if e, ok := q.s.entries[id]; ok && e.IsPending() {
			_ = e.Succeed(now)
		}
	}
	return nil
}

func (q *QueueStore) CountByStatus(_ context.Context, shopID string) (map[queue.Status]int, error) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	out := make(map[queue.Status]int)
	for _, e := range q.s.entries {
		if e.ShopID() == shopID {
			out[e.Status()]++
		}
	}
	return out, nil
}

func (q *QueueStore) PurgeSucceeded(_ context.Context, before time.Time) (int64, error) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	var n int64
	for id, e := range q.s.entries {
		if e.Status() == queue.StatusSuccess && e.UpdatedAt().Before(before) {
			delete(q.s.entries, id)
			n++
		}
	}
	return n, nil
}

func (q *QueueStore) DeleteByShop(_ context.Context, shopID string) (int64, error) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	var n int64
	for id, e := range q.s.entries {
		if e.ShopID() == shopID {
			delete(q.s.entries, id)
			n++
		}
	}
	return n, nil
}

type SnapshotStore struct{ s *Store }

func (r *SnapshotStore) Find(_ context.Context, shopID, stockID string) (*catalog.Snapshot, error) {
	return r.s.Snapshot(shopID, stockID), nil
}

func (r *SnapshotStore) Save(_ context.Context, snap *catalog.Snapshot) error {
	r.s.PutSnapshot(snap)
	return nil
}

func (r *SnapshotStore) Delete(_ context.Context, shopID, stockID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.snapshots, key(shopID, stockID))
	return nil
}

func (r *SnapshotStore) ListStockIDs(_ context.Context, shopID string, filter shared.SnapshotFilter, after string, limit int) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	brands := make(map[string]struct{}, len(filter.Brands))
	for _, b := range filter.Brands {
		brands[strings.ToLower(strings.TrimSpace(b))] = struct{}{}
	}
	categories := make(map[string]struct{}, len(filter.CategoryIDs))
	for _, c := range filter.CategoryIDs {
		categories[c] = struct{}{}
	}

	var ids []string
	for _, snap := range r.s.snapshots {
		if snap.ShopID() != shopID || snap.StockID() <= after {
			continue
		}
		if len(brands) > 0 {
			if _, ok := brands[strings.ToLower(snap.Brand())]; !ok {
				continue
			}
		}
		if len(categories) > 0 {
			if _, ok := categories[snap.CategoryID()]; !ok {
				continue
			}
		}
		ids = append(ids, snap.StockID())
	}
	sort.Strings(ids)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (r *SnapshotStore) DeleteByShop(_ context.Context, shopID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for k, snap := range r.s.snapshots {
		if snap.ShopID() == shopID {
			delete(r.s.snapshots, k)
			n++
		}
	}
	return n, nil
}

type IdentityStore struct{ s *Store }

func (r *IdentityStore) Find(_ context.Context, shopID, stockID string) (string, error) {
	return r.s.Identity(shopID, stockID), nil
}

func (r *IdentityStore) Remember(_ context.Context, shopID, stockID, productID string, _ time.Time) error {
	r.s.PutIdentity(shopID, stockID, productID)
	return nil
}

func (r *IdentityStore) Forget(_ context.Context, shopID, stockID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.identities, key(shopID, stockID))
	return nil
}

func (r *IdentityStore) DeleteByShop(_ context.Context, shopID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	prefix := shopID + "/"
	for k := range r.s.identities {
		if strings.HasPrefix(k, prefix) {
			delete(r.s.identities, k)
			n++
		}
	}
	return n, nil
}

func sameLease(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func key(shopID, stockID string) string {
	return shopID + "/" + stockID
}

func copyEntry(e *queue.Entry) *queue.Entry {
	var lockedUntil *time.Time
	if t := e.LockedUntil(); t != nil {
		v := *t
		lockedUntil = &v
	}
	return queue.ReconstructEntry(e.ID(), e.ShopID(), e.StockID(), e.Status(), e.RetryCount(),
		lockedUntil, e.LastError(), e.CreatedAt(), e.UpdatedAt())
}

func copySnapshot(s *catalog.Snapshot) *catalog.Snapshot {
	return catalog.ReconstructSnapshot(s.ShopID(), s.StockID(), s.ProductID(), s.Brand(), s.CategoryID(),
		s.Sizes(), s.HasOptionOutOfStock(), s.Options(), s.UpdatedAt())
}

var (
	_ shared.UnitOfWork         = (*Store)(nil)
	_ shared.Tx                 = (*Store)(nil)
	_ shared.QueueRepository    = (*QueueStore)(nil)
	_ shared.SnapshotRepository = (*SnapshotStore)(nil)
	_ shared.IdentityRepository = (*IdentityStore)(nil)
)
