//go:build unit

package queue_test

import (
	"errors"
	"testing"
	"time"

	"catalog-sync/internal/domain/queue"
	"catalog-sync/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewEntry(t *testing.T) {
	testCases := []struct {
		name    string
		shopID  string
		stockID string
		action  queue.Status
		errIs   error
	}{
		{name: "create action", shopID: "shop-1", stockID: "A", action: queue.StatusCreate},
		{name: "delete action", shopID: "shop-1", stockID: "A", action: queue.StatusDelete},
		{name: "empty shop", shopID: " ", stockID: "A", action: queue.StatusCreate, errIs: queue.ErrEmptyShopID},
		{name: "empty stock", shopID: "shop-1", stockID: "", action: queue.StatusCreate, errIs: queue.ErrEmptyStockID},
		{name: "terminal status", shopID: "shop-1", stockID: "A", action: queue.StatusSuccess, errIs: queue.ErrNotAnAction},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := queue.NewEntry(tc.shopID, tc.stockID, tc.action, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.action, e.Status())
			assert.Zero(t, e.RetryCount())
			assert.Nil(t, e.LockedUntil())
			assert.Equal(t, now, e.CreatedAt())
		})
	}
}

func TestTransition(t *testing.T) {
	testCases := []struct {
		from, to queue.Status
		ok       bool
	}{
		{queue.StatusCreate, queue.StatusSuccess, true},
		{queue.StatusUpdate, queue.StatusFailed, true},
		{queue.StatusDelete, queue.StatusSuccess, true},
		{queue.StatusFailed, queue.StatusCreate, false},
		{queue.StatusSuccess, queue.StatusUpdate, false},
		{queue.StatusCreate, queue.StatusDelete, false},
		{queue.StatusSuccess, queue.StatusFailed, false},
	}

	for _, tc := range testCases {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			err := queue.Transition(tc.from, tc.to)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, queue.ErrIllegalTransition)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, err := queue.ParseStatus("update")
	require.NoError(t, err)
	assert.Equal(t, queue.StatusUpdate, s)

	_, err = queue.ParseStatus("locked")
	assert.ErrorIs(t, err, queue.ErrInvalidStatus)
}

func TestEntry_Fail(t *testing.T) {
	t.Run("retry cap promotes to failed on the third attempt", func(t *testing.T) {
		e := builder.NewEntryBuilder().Build()
		cause := errors.New("storefront 502")

		for attempt := 1; attempt <= 2; attempt++ {
			require.NoError(t, e.Fail(now, cause, queue.DefaultMaxAttempts))
			assert.Equal(t, attempt, e.RetryCount())
			assert.True(t, e.IsPending())
		}

		require.NoError(t, e.Fail(now, cause, queue.DefaultMaxAttempts))
		assert.Equal(t, 3, e.RetryCount())
		assert.Equal(t, queue.StatusFailed, e.Status())
		assert.False(t, e.IsEligible(now))
		assert.Equal(t, "storefront 502", e.LastError())
	})

	t.Run("terminal entry cannot fail again", func(t *testing.T) {
		e := builder.NewEntryBuilder().With(func(b *builder.EntryBuilder) { b.Status = queue.StatusSuccess }).Build()
		assert.ErrorIs(t, e.Fail(now, nil, 3), queue.ErrIllegalTransition)
		assert.Equal(t, queue.StatusSuccess, e.Status())
	})

	t.Run("non-positive cap falls back to default", func(t *testing.T) {
		e := builder.NewEntryBuilder().Build()
		for range queue.DefaultMaxAttempts {
			require.NoError(t, e.Fail(now, nil, 0))
		}
		assert.Equal(t, queue.StatusFailed, e.Status())
	})
}

func TestEntry_Succeed(t *testing.T) {
	e := builder.NewEntryBuilder().Build()
	require.NoError(t, e.Fail(now, errors.New("boom"), 3))

	require.NoError(t, e.Succeed(now.Add(time.Minute)))
	assert.Equal(t, queue.StatusSuccess, e.Status())
	assert.Empty(t, e.LastError())
	assert.ErrorIs(t, e.Succeed(now), queue.ErrIllegalTransition)
}

func TestEntry_Lease(t *testing.T) {
	e := builder.NewEntryBuilder().Build()
	assert.True(t, e.IsEligible(now))

	e.Lease(now.Add(5 * time.Minute))
	assert.True(t, e.IsLocked(now))
	assert.False(t, e.IsEligible(now))

	// an expired lease no longer blocks
	assert.True(t, e.IsEligible(now.Add(6*time.Minute)))

	e.Release()
	assert.Nil(t, e.LockedUntil())
	assert.True(t, e.IsEligible(now))
}
