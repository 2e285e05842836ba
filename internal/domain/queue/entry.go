package queue

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid queue status")
	ErrIllegalTransition = errors.New("illegal queue status transition")
	ErrEmptyShopID       = errors.New("shop id is required")
	ErrEmptyStockID      = errors.New("stock id is required")
	ErrNotAnAction       = errors.New("queue entry must start as create, update or delete")
	ErrLeaseLost         = errors.New("queue entry lease lost")
)

const DefaultMaxAttempts = 3

const maxErrorLength = 1000

type Entry struct {
	id          uuid.UUID
	shopID      string
	stockID     string
	status      Status
	retryCount  int
	lockedUntil *time.Time
	lastError   string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewEntry(shopID, stockID string, action Status, now time.Time) (*Entry, error) {
	shopID = strings.TrimSpace(shopID)
	stockID = strings.TrimSpace(stockID)
	if shopID == "" {
		return nil, ErrEmptyShopID
	}
	if stockID == "" {
		return nil, ErrEmptyStockID
	}
	if !action.IsAction() {
		return nil, ErrNotAnAction
	}

	return &Entry{
		id:        uuid.New(),
		shopID:    shopID,
		stockID:   stockID,
		status:    action,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructEntry(
	id uuid.UUID,
	shopID, stockID string,
	status Status,
	retryCount int,
	lockedUntil *time.Time,
	lastError string,
	createdAt, updatedAt time.Time,
) *Entry {
	return &Entry{
		id:          id,
		shopID:      shopID,
		stockID:     stockID,
		status:      status,
		retryCount:  retryCount,
		lockedUntil: lockedUntil,
		lastError:   lastError,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (e *Entry) ID() uuid.UUID            { return e.id }
func (e *Entry) ShopID() string           { return e.shopID }
func (e *Entry) StockID() string          { return e.stockID }
func (e *Entry) Status() Status           { return e.status }
func (e *Entry) RetryCount() int          { return e.retryCount }
func (e *Entry) LockedUntil() *time.Time  { return e.lockedUntil }
func (e *Entry) LastError() string        { return e.lastError }
func (e *Entry) CreatedAt() time.Time     { return e.createdAt }
func (e *Entry) UpdatedAt() time.Time     { return e.updatedAt }
func (e *Entry) IsPending() bool          { return e.status.IsAction() }
func (e *Entry) IsDelete() bool           { return e.status == StatusDelete }

// IsLocked reports whether a live lease is held at now.
func (e *Entry) IsLocked(now time.Time) bool {
	return e.lockedUntil != nil && !e.lockedUntil.Before(now)
}

// IsEligible reports whether the dispatcher may pick the entry up at now.
// An expired lease counts as unlocked.
func (e *Entry) IsEligible(now time.Time) bool {
	return e.IsPending() && !e.IsLocked(now)
}

func (e *Entry) Lease(until time.Time) {
	e.lockedUntil = &until
}

func (e *Entry) Release() {
	e.lockedUntil = nil
}

func (e *Entry) Succeed(now time.Time) error {
	if err := Transition(e.status, StatusSuccess); err != nil {
		return err
	}
	e.status = StatusSuccess
	e.lastError = ""
	e.updatedAt = now
	return nil
}

// Fail records one failed attempt. The entry stays pending until the attempt
// count reaches maxAttempts, after which it settles as failed.
func (e *Entry) Fail(now time.Time, cause error, maxAttempts int) error {
	if !e.status.IsAction() {
		return Transition(e.status, StatusFailed)
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	e.retryCount++
	e.updatedAt = now
	if cause != nil {
		e.lastError = truncate(cause.Error(), maxErrorLength)
	}

	if e.retryCount >= maxAttempts {
		e.status = StatusFailed
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
