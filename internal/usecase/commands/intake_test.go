//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"catalog-sync/internal/domain/queue"
	"catalog-sync/internal/domain/settings"
	"catalog-sync/internal/pkg/clock"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/commands"
	"catalog-sync/internal/usecase/shared"
	"catalog-sync/tests/common/builder"
	"catalog-sync/tests/common/memstore"
	sharedmock "catalog-sync/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type intakeFixture struct {
	store    *memstore.Store
	settings *sharedmock.MockSettingsReader
	retailer *sharedmock.MockRetailer
	uc       commands.IntakeCommands
}

func newIntakeFixture(t *testing.T, opts commands.IntakeOptions) *intakeFixture {
	ctrl := gomock.NewController(t)
	f := &intakeFixture{
		store:    memstore.New(),
		settings: sharedmock.NewMockSettingsReader(ctrl),
		retailer: sharedmock.NewMockRetailer(ctrl),
	}
	f.uc = commands.NewIntakeUseCase(f.store.Queue(), f.store.Snapshots(), f.settings, f.retailer,
		clock.NewMockClock(fixedNow), opts, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

func TestEnqueue(t *testing.T) {
	ctx := context.Background()

	t.Run("success: queues an action entry", func(t *testing.T) {
		f := newIntakeFixture(t, commands.IntakeOptions{})

		id, err := f.uc.Enqueue(ctx, "shop-1", "stock-1", queue.StatusUpdate)

		require.NoError(t, err)
		got := f.store.Entry(id)
		require.NotNil(t, got)
		assert.Equal(t, queue.StatusUpdate, got.Status())
		assert.Equal(t, fixedNow, got.CreatedAt())
		assert.Zero(t, got.RetryCount())
	})

	t.Run("error: settled statuses are not intents", func(t *testing.T) {
		f := newIntakeFixture(t, commands.IntakeOptions{})

		_, err := f.uc.Enqueue(ctx, "shop-1", "stock-1", queue.StatusSuccess)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
		assert.Empty(t, f.store.Entries())
	})

	t.Run("error: empty stock id", func(t *testing.T) {
		f := newIntakeFixture(t, commands.IntakeOptions{})

		_, err := f.uc.Enqueue(ctx, "shop-1", "", queue.StatusCreate)

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidIntent))
	})
}

func TestEnqueueBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("success: every intent becomes an entry", func(t *testing.T) {
		f := newIntakeFixture(t, commands.IntakeOptions{})

		n, err := f.uc.EnqueueBatch(ctx, "shop-1", []commands.Intent{
			{StockID: "stock-1", Action: queue.StatusCreate},
			{StockID: "stock-2", Action: queue.StatusDelete},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Len(t, f.store.Entries(), 2)
	})

	t.Run("error: one bad intent rejects the whole batch", func(t *testing.T) {
		f := newIntakeFixture(t, commands.IntakeOptions{})

		_, err := f.uc.EnqueueBatch(ctx, "shop-1", []commands.Intent{
			{StockID: "stock-1", Action: queue.StatusCreate},
			{StockID: "stock-2", Action: queue.Status("archive")},
		})

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidIntent))
		assert.Empty(t, f.store.Entries())
	})

	t.Run("success: empty batch writes nothing", func(t *testing.T) {
		f := newIntakeFixture(t, commands.IntakeOptions{})

		n, err := f.uc.EnqueueBatch(ctx, "shop-1", nil)

		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	shop := builder.NewSyncContextBuilder().Input.Shop

	page := func(total int, ids ...string) shared.StockPage {
		p := shared.StockPage{Total: total}
		for i, id := range ids {
			brand := "Acme"
			if i%2 == 1 {
				brand = "Other"
			}
			p.Items = append(p.Items, builder.NewStockBuilder().WithID(id).WithBrand(brand).Build())
		}
		return p
	}

	t.Run("success: pages the feed and queues listed brands", func(t *testing.T) {
		f := newIntakeFixture(t, commands.IntakeOptions{ImportPageSize: 2})
		f.settings.EXPECT().Shop(gomock.Any(), "shop-1").Return(shop, nil)
		f.settings.EXPECT().BrandFilter(gomock.Any(), "shop-1").Return(settings.NewBrandFilter([]string{"acme"}), nil)
		gomock.InOrder(
			f.retailer.EXPECT().ListStock(gomock.Any(), "retailer-key", 0, 2).Return(page(3, "s-1", "s-2"), nil),
			f.retailer.EXPECT().ListStock(gomock.Any(), "retailer-key", 2, 2).Return(page(3, "s-3"), nil),
		)

		res, err := f.uc.Import(ctx, "shop-1")

		require.NoError(t, err)
		assert.Equal(t, &commands.ImportResult{Scanned: 3, Enqueued: 2}, res)
		var stocks []string
		for _, e := range f.store.Entries() {
			assert.Equal(t, queue.StatusCreate, e.Status())
			stocks = append(stocks, e.StockID())
		}
		assert.Equal(t, []string{"s-1", "s-3"}, stocks)
	})

	t.Run("error: unknown shop", func(t *testing.T) {
		f := newIntakeFixture(t, commands.IntakeOptions{})
		f.settings.EXPECT().Shop(gomock.Any(), "shop-1").Return(nil, nil)

		_, err := f.uc.Import(ctx, "shop-1")

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("error: retailer failure keeps what was already queued", func(t *testing.T) {
		f := newIntakeFixture(t, commands.IntakeOptions{ImportPageSize: 2})
		f.settings.EXPECT().Shop(gomock.Any(), "shop-1").Return(shop, nil)
		f.settings.EXPECT().BrandFilter(gomock.Any(), "shop-1").Return(settings.NewBrandFilter([]string{"Acme"}), nil)
		gomock.InOrder(
			f.retailer.EXPECT().ListStock(gomock.Any(), gomock.Any(), 0, 2).Return(page(5, "s-1", "s-2"), nil),
			f.retailer.EXPECT().ListStock(gomock.Any(), gomock.Any(), 2, 2).Return(shared.StockPage{}, errors.New("timeout")),
		)

		res, err := f.uc.Import(ctx, "shop-1")

		require.Error(t, err)
		assert.Equal(t, 1, res.Enqueued)
		assert.Len(t, f.store.Entries(), 1)
	})
}

func TestRequeue(t *testing.T) {
	ctx := context.Background()

	seed := func(f *intakeFixture, n int) {
		for i := range n {
			brand, category := "Acme", "cat-shoes"
			if i%2 == 1 {
				brand, category = "Other", "cat-bags"
			}
			f.store.PutSnapshot(builder.NewSnapshotBuilder().With(func(b *builder.SnapshotBuilder) {
				b.StockID = fmt.Sprintf("stock-%02d", i)
				b.Brand = brand
				b.CategoryID = category
			}).WithSyncedSizes("40").Build())
		}
	}

	tests := []struct {
		name   string
		scope  commands.RequeueScope
		values []string
		want   int
	}{
		{name: "all synced items", scope: commands.RequeueAll, want: 7},
		{name: "by brand, case-insensitive", scope: commands.RequeueBrands, values: []string{"ACME"}, want: 4},
		{name: "by category", scope: commands.RequeueCategories, values: []string{"cat-bags"}, want: 3},
		{name: "unknown values", scope: commands.RequeueBrands, values: []string{"Nobody"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIntakeFixture(t, commands.IntakeOptions{RequeuePageSize: 2})
			seed(f, 7)

			n, err := f.uc.Requeue(ctx, "shop-1", tt.scope, tt.values)

			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
			seen := make(map[string]bool)
			for _, e := range f.store.Entries() {
				assert.Equal(t, queue.StatusUpdate, e.Status())
				assert.False(t, seen[e.StockID()], "stock %s queued twice", e.StockID())
				seen[e.StockID()] = true
			}
		})
	}

	t.Run("error: unknown scope", func(t *testing.T) {
		f := newIntakeFixture(t, commands.IntakeOptions{})

		_, err := f.uc.Requeue(ctx, "shop-1", commands.RequeueScope("tags"), []string{"x"})

		assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
	})

	t.Run("error: scope without values", func(t *testing.T) {
		f := newIntakeFixture(t, commands.IntakeOptions{})

		_, err := f.uc.Requeue(ctx, "shop-1", commands.RequeueBrands, nil)

		assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
	})
}
