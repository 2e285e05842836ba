//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/handler/api"
	resdto "catalog-sync/internal/handler/dto/response"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/productsync"
	"catalog-sync/internal/usecase/queries"
	"catalog-sync/tests/common/builder"
	"catalog-sync/tests/common/httptest"
	productsyncmock "catalog-sync/tests/mock/productsync"
	queriesmock "catalog-sync/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for the JWT middleware.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Next()
}

type SyncHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockDispatcher *productsyncmock.MockDispatcher
	mockQueries    *queriesmock.MockSyncQueries
	handler        *api.SyncHandler
}

func (s *SyncHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDispatcher = productsyncmock.NewMockDispatcher(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSyncQueries(s.mockCtrl)
	s.handler = api.NewSyncHandler(s.mockDispatcher, s.mockQueries)

	shops := s.router.Group("/api/shops/:shopId", fakeAuth)
	shops.POST("/sync", s.handler.RunBatch)
	shops.GET("/queue", s.handler.QueueStats)
	shops.GET("/snapshots/:stockId", s.handler.Snapshot)
}

func (s *SyncHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSyncHandlerSuite(t *testing.T) {
	suite.Run(t, new(SyncHandlerTestSuite))
}

// ================================================================================
// TestRunBatch
// ================================================================================

func (s *SyncHandlerTestSuite) TestRunBatch() {
	url := "/api/shops/shop-1/sync"

	s.Run("success: returns the batch summary", func() {
		result := productsync.BatchResult{ShopID: "shop-1", Selected: 3, Claimed: 3, Duplicates: 1, Succeeded: 1, Retrying: 1}
		s.mockDispatcher.EXPECT().Dispatch(gomock.Any(), "shop-1").Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.BatchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.BatchResponse{ShopID: "shop-1", Selected: 3, Claimed: 3, Duplicates: 1, Succeeded: 1, Retrying: 1}, body)
	})

	s.Run("success: skipped shop is not an error", func() {
		s.mockDispatcher.EXPECT().Dispatch(gomock.Any(), "shop-1").
			Return(productsync.BatchResult{ShopID: "shop-1", Skipped: "no brands enabled"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.BatchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("no brands enabled", body.Skipped)
	})

	s.Run("error: unavailable storefront maps to 503", func() {
		s.mockDispatcher.EXPECT().Dispatch(gomock.Any(), "shop-1").
			Return(productsync.BatchResult{ShopID: "shop-1"}, errs.Mark(errors.New("throttled"), errs.ErrUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Sync batch failed")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestQueueStats
// ================================================================================

func (s *SyncHandlerTestSuite) TestQueueStats() {
	url := "/api/shops/shop-1/queue"

	s.Run("success", func() {
		stats := &queries.QueueStats{ShopID: "shop-1", Counts: map[string]int{"create": 2, "failed": 1}, Pending: 2, Total: 3}
		s.mockQueries.EXPECT().QueueStats(gomock.Any(), "shop-1").Return(stats, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.QueueStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Pending)
		s.Equal(3, body.Total)
		s.Equal(1, body.Counts["failed"])
	})

	s.Run("error: 500 on repository failure", func() {
		s.mockQueries.EXPECT().QueueStats(gomock.Any(), "shop-1").Return(nil, errors.New("db down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load queue statistics")
	})
}

// ================================================================================
// TestSnapshot
// ================================================================================

func (s *SyncHandlerTestSuite) TestSnapshot() {
	s.Run("success: options are exposed with their storefront ids", func() {
		view := &queries.SnapshotView{
			ShopID:    "shop-1",
			StockID:   "stock-1",
			ProductID: builder.ProductID,
			Brand:     "Acme",
			Sizes:     []string{"40"},
			Options:   []catalog.OptionMapping{builder.SyncedOption("40")},
			UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		s.mockQueries.EXPECT().Snapshot(gomock.Any(), "shop-1", "stock-1").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shops/shop-1/snapshots/stock-1", nil, "bearer-token")

		var body resdto.SnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(builder.ProductID, body.ProductID)
		s.Require().Len(body.Options, 1)
		s.Equal("gid://shopify/ProductVariant/40", body.Options[0].ProductVariantID)
		s.True(view.UpdatedAt.Equal(body.UpdatedAt))
	})

	s.Run("error: 404 when never synced", func() {
		s.mockQueries.EXPECT().Snapshot(gomock.Any(), "shop-1", "stock-9").Return(nil, queries.ErrSnapshotNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shops/shop-1/snapshots/stock-9", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Snapshot not available")
	})
}
