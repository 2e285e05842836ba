//go:build unit

package productsync_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/queue"
	"catalog-sync/internal/domain/settings"
	"catalog-sync/internal/pkg/clock"
	"catalog-sync/internal/usecase/productsync"
	"catalog-sync/internal/usecase/shared"
	"catalog-sync/tests/common/builder"
	"catalog-sync/tests/common/memstore"
	sharedmock "catalog-sync/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DispatcherTestSuite struct {
	suite.Suite
	ctx        context.Context
	mockCtrl   *gomock.Controller
	settings   *sharedmock.MockSettingsReader
	retailer   *sharedmock.MockRetailer
	storefront *sharedmock.MockStorefront
	store      *memstore.Store
	clock      *clock.MockClock
	dispatcher productsync.Dispatcher
}

func (s *DispatcherTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.settings = sharedmock.NewMockSettingsReader(s.mockCtrl)
	s.retailer = sharedmock.NewMockRetailer(s.mockCtrl)
	s.storefront = sharedmock.NewMockStorefront(s.mockCtrl)
	s.store = memstore.New()
	s.clock = clock.NewMockClock(fixedNow)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handlers := productsync.NewHandlers(s.retailer, s.storefront, s.store.Snapshots(), s.store.Identities(), s.store,
		s.clock, productsync.MissingStockRetry, logger)
	book := productsync.NewBookkeeper(s.store.Queue(), s.clock, queue.DefaultMaxAttempts, logger)
	s.dispatcher = productsync.NewDispatcher(s.settings, s.storefront, s.store.Queue(), handlers, book, s.clock,
		productsync.Options{BatchSize: 10, LeaseTTL: 5 * time.Minute, Concurrency: 2}, logger)
}

func (s *DispatcherTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func activeShop() *settings.Shop {
	return builder.NewSyncContextBuilder().Input.Shop
}

// expectSettings wires a complete, valid settings set for shop-1.
func (s *DispatcherTestSuite) expectSettings() {
	in := builder.NewSyncContextBuilder().Input
	s.settings.EXPECT().Shop(gomock.Any(), "shop-1").Return(in.Shop, nil).AnyTimes()
	s.settings.EXPECT().BrandFilter(gomock.Any(), "shop-1").Return(in.Brands, nil).AnyTimes()
	s.settings.EXPECT().CategoryMappings(gomock.Any(), "shop-1").Return(in.Categories, nil).AnyTimes()
	s.settings.EXPECT().AttributeMapping(gomock.Any(), "shop-1").Return(settings.AttributeMapping{}, nil).AnyTimes()
	s.settings.EXPECT().GeneralSetting(gomock.Any(), "shop-1").Return(in.General, nil).AnyTimes()
	s.settings.EXPECT().SyncSetting(gomock.Any(), "shop-1").Return(nil, nil).AnyTimes()
}

func (s *DispatcherTestSuite) expectStorefrontLookups() {
	s.storefront.EXPECT().PrimaryLocationID(gomock.Any(), gomock.Any()).Return("gid://shopify/Location/1", nil).AnyTimes()
	s.storefront.EXPECT().OnlineStorePublicationID(gomock.Any(), gomock.Any()).Return("gid://shopify/Publication/1", nil).AnyTimes()
}

func (s *DispatcherTestSuite) TestDispatch_Skips() {
	s.Run("inactive shop", func() {
		s.SetupTest()
		shop := activeShop()
		shop.Enabled = false
		s.settings.EXPECT().Shop(gomock.Any(), "shop-1").Return(shop, nil)

		res, err := s.dispatcher.Dispatch(s.ctx, "shop-1")

		s.Require().NoError(err)
		s.Equal(settings.ErrShopInactive.Error(), res.Skipped)
	})

	s.Run("unknown shop", func() {
		s.SetupTest()
		s.settings.EXPECT().Shop(gomock.Any(), "shop-1").Return(nil, nil)

		res, err := s.dispatcher.Dispatch(s.ctx, "shop-1")

		s.Require().NoError(err)
		s.Equal(settings.ErrShopInactive.Error(), res.Skipped)
	})

	s.Run("no brands enabled", func() {
		s.SetupTest()
		s.settings.EXPECT().Shop(gomock.Any(), "shop-1").Return(activeShop(), nil)
		s.settings.EXPECT().BrandFilter(gomock.Any(), "shop-1").Return(settings.NewBrandFilter(nil), nil)
		s.store.Put(builder.NewEntryBuilder().Build())

		res, err := s.dispatcher.Dispatch(s.ctx, "shop-1")

		s.Require().NoError(err)
		s.Equal(settings.ErrNoBrands.Error(), res.Skipped)
		s.Equal(queue.StatusCreate, s.store.Entries()[0].Status())
	})

	s.Run("empty queue", func() {
		s.SetupTest()
		s.expectSettings()

		res, err := s.dispatcher.Dispatch(s.ctx, "shop-1")

		s.Require().NoError(err)
		s.Equal(productsync.BatchResult{ShopID: "shop-1"}, res)
	})

	s.Run("entries leased by another worker are not selected", func() {
		s.SetupTest()
		s.expectSettings()
		until := fixedNow.Add(time.Minute)
		s.store.Put(builder.NewEntryBuilder().With(func(b *builder.EntryBuilder) { b.LockedUntil = &until }).Build())

		res, err := s.dispatcher.Dispatch(s.ctx, "shop-1")

		s.Require().NoError(err)
		s.Zero(res.Selected)
	})
}

func (s *DispatcherTestSuite) TestDispatch_DeduplicatesBatch() {
	s.expectSettings()
	s.expectStorefrontLookups()

	first := builder.NewEntryBuilder().WithStock("stock-1", queue.StatusUpdate).Build()
	second := builder.NewEntryBuilder().WithStock("stock-1", queue.StatusUpdate).CreatedAfter(time.Minute).Build()
	s.store.Put(first, second)

	s.retailer.EXPECT().GetStock(gomock.Any(), "retailer-key", "stock-1").
		Return(catalog.StockRecord{}, shared.ErrStockNotFound).Times(1)

	res, err := s.dispatcher.Dispatch(s.ctx, "shop-1")

	s.Require().NoError(err)
	s.Equal(2, res.Selected)
	s.Equal(2, res.Claimed)
	s.Equal(1, res.Duplicates)
	s.Equal(1, res.Succeeded)
	for _, e := range s.store.Entries() {
		s.Equal(queue.StatusSuccess, e.Status())
		s.Nil(e.LockedUntil(), "lease must be released after the batch")
	}
}

func (s *DispatcherTestSuite) TestDispatch_RetriesUntilFailed() {
	s.expectSettings()
	s.expectStorefrontLookups()

	entry := builder.NewEntryBuilder().Build()
	s.store.Put(entry)
	s.retailer.EXPECT().GetStock(gomock.Any(), "retailer-key", "stock-1").
		Return(catalog.StockRecord{}, errors.New("retailer timeout")).Times(queue.DefaultMaxAttempts)

	for attempt := 1; attempt <= queue.DefaultMaxAttempts; attempt++ {
		res, err := s.dispatcher.Dispatch(s.ctx, "shop-1")
		s.Require().NoError(err)

		got := s.store.Entry(entry.ID())
		s.Equal(attempt, got.RetryCount())
		s.Contains(got.LastError(), "retailer timeout")
		if attempt < queue.DefaultMaxAttempts {
			s.Equal(1, res.Retrying)
			s.Equal(queue.StatusCreate, got.Status())
		} else {
			s.Equal(1, res.Failed)
			s.Equal(queue.StatusFailed, got.Status())
		}
		s.clock.Add(time.Minute)
	}

	res, err := s.dispatcher.Dispatch(s.ctx, "shop-1")
	s.Require().NoError(err)
	s.Zero(res.Selected)
}

func (s *DispatcherTestSuite) TestDispatch_RecoversHandlerPanic() {
	s.expectSettings()
	s.expectStorefrontLookups()

	entry := builder.NewEntryBuilder().Build()
	s.store.Put(entry)
	s.retailer.EXPECT().GetStock(gomock.Any(), gomock.Any(), "stock-1").
		DoAndReturn(func(context.Context, string, string) (catalog.StockRecord, error) {
			panic("nil map")
		})

	res, err := s.dispatcher.Dispatch(s.ctx, "shop-1")

	s.Require().NoError(err)
	s.Equal(1, res.Retrying)
	got := s.store.Entry(entry.ID())
	s.Equal(1, got.RetryCount())
	s.Contains(got.LastError(), "panic")
}

func (s *DispatcherTestSuite) TestDispatch_ContextFailureLeavesEntriesQueued() {
	s.expectSettings()
	s.storefront.EXPECT().PrimaryLocationID(gomock.Any(), gomock.Any()).Return("", errors.New("storefront down"))

	entry := builder.NewEntryBuilder().Build()
	s.store.Put(entry)

	res, err := s.dispatcher.Dispatch(s.ctx, "shop-1")

	s.Require().Error(err)
	s.Equal(1, res.Claimed)
	got := s.store.Entry(entry.ID())
	s.Equal(queue.StatusCreate, got.Status())
	s.Zero(got.RetryCount())
	s.Nil(got.LockedUntil())
}

func (s *DispatcherTestSuite) TestDispatch_DeletesRunAfterActionsForSameStock() {
	s.expectSettings()
	s.expectStorefrontLookups()

	create := builder.NewEntryBuilder().Build()
	del := builder.NewEntryBuilder().WithStock("stock-1", queue.StatusDelete).CreatedAfter(time.Minute).Build()
	s.store.Put(create, del)

	s.retailer.EXPECT().GetStock(gomock.Any(), gomock.Any(), "stock-1").
		Return(builder.NewStockBuilder().WithBrand("Other").Build(), nil)

	res, err := s.dispatcher.Dispatch(s.ctx, "shop-1")

	s.Require().NoError(err)
	s.Zero(res.Duplicates)
	s.Equal(2, res.Succeeded)
}

func (s *DispatcherTestSuite) TestDispatch_ReclaimedLeaseIsLeftToItsNewHolder() {
	s.expectSettings()
	s.expectStorefrontLookups()

	entry := builder.NewEntryBuilder().Build()
	s.store.Put(entry)
	reclaimed := fixedNow.Add(time.Hour)

	s.retailer.EXPECT().GetStock(gomock.Any(), gomock.Any(), "stock-1").
		DoAndReturn(func(context.Context, string, string) (catalog.StockRecord, error) {
			// another run claims the entry after this run's lease expired
			e := s.store.Entry(entry.ID())
			e.Lease(reclaimed)
			s.store.Put(e)
			return catalog.StockRecord{}, errors.New("retailer timeout")
		})

	res, err := s.dispatcher.Dispatch(s.ctx, "shop-1")

	s.Require().NoError(err)
	s.Zero(res.Retrying)
	got := s.store.Entry(entry.ID())
	s.Require().NotNil(got.LockedUntil())
	s.True(reclaimed.Equal(*got.LockedUntil()), "the new holder keeps its lease")
	s.Zero(got.RetryCount())
	s.Equal(queue.StatusCreate, got.Status())
}
