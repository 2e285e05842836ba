//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"catalog-sync/internal/domain/queue"
	"catalog-sync/internal/handler/api"
	reqdto "catalog-sync/internal/handler/dto/request"
	resdto "catalog-sync/internal/handler/dto/response"
	"catalog-sync/internal/usecase/commands"
	"catalog-sync/tests/common/httptest"
	"catalog-sync/tests/common/testutil"
	commandsmock "catalog-sync/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QueueHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockIntakeCommands
	handler      *api.QueueHandler
}

func (s *QueueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockIntakeCommands(s.mockCtrl)
	s.handler = api.NewQueueHandler(s.mockCommands)

	shops := s.router.Group("/api/shops/:shopId", fakeAuth)
	shops.POST("/queue", s.handler.Enqueue)
	shops.POST("/import", s.handler.Import)
	shops.POST("/requeue", s.handler.Requeue)
}

func (s *QueueHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQueueHandlerSuite(t *testing.T) {
	suite.Run(t, new(QueueHandlerTestSuite))
}

type testCaseQueue struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestEnqueue
// ================================================================================

func (s *QueueHandlerTestSuite) TestEnqueue() {
	url := "/api/shops/shop-1/queue"
	reqBody := reqdto.EnqueueRequest{StockID: "stock-1", Action: "update"}

	s.Run("success: returns 202 with the entry id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Enqueue(gomock.Any(), "shop-1", "stock-1", queue.StatusUpdate).Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.EnqueueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.Equal(id.String(), body.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseQueue{
			{name: "missing field: stockId", mutate: testutil.Field("stockId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: action", mutate: testutil.Field("action", nil), expectCode: http.StatusBadRequest},
			{name: "settled status is not an action", mutate: testutil.Field("action", "success"), expectCode: http.StatusBadRequest},
			{name: "unknown action", mutate: testutil.Field("action", "archive"), expectCode: http.StatusBadRequest},
			{name: "stockId too long", mutate: testutil.Field("stockId", strings.Repeat("x", 256)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: rejected intent maps to 400", func() {
		s.mockCommands.EXPECT().Enqueue(gomock.Any(), "shop-1", "stock-1", queue.StatusUpdate).
			Return(uuid.Nil, commands.ErrInvalidIntent)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Enqueue failed")
	})
}

// ================================================================================
// TestImport
// ================================================================================

func (s *QueueHandlerTestSuite) TestImport() {
	url := "/api/shops/shop-1/import"

	s.Run("success", func() {
		s.mockCommands.EXPECT().Import(gomock.Any(), "shop-1").Return(&commands.ImportResult{Scanned: 10, Enqueued: 4}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.ImportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.Equal(resdto.ImportResponse{Scanned: 10, Enqueued: 4}, body)
	})

	s.Run("error: unknown shop maps to 404", func() {
		s.mockCommands.EXPECT().Import(gomock.Any(), "shop-1").Return(nil, commands.ErrShopNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Import failed")
	})

	s.Run("error: other failures hide the cause", func() {
		s.mockCommands.EXPECT().Import(gomock.Any(), "shop-1").Return(nil, errors.New("pq: secret detail"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Import failed")
		s.NotContains(rec.Body.String(), "secret detail")
	})
}

// ================================================================================
// TestRequeue
// ================================================================================

func (s *QueueHandlerTestSuite) TestRequeue() {
	url := "/api/shops/shop-1/requeue"

	s.Run("success: brands scope", func() {
		s.mockCommands.EXPECT().Requeue(gomock.Any(), "shop-1", commands.RequeueBrands, []string{"Acme"}).Return(12, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.RequeueRequest{Scope: "brands", Values: []string{"Acme"}}, "bearer-token")

		var body resdto.RequeueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.Equal(resdto.RequeueResponse{Scope: "brands", Enqueued: 12}, body)
	})

	s.Run("success: all scope needs no values", func() {
		s.mockCommands.EXPECT().Requeue(gomock.Any(), "shop-1", commands.RequeueAll, gomock.Nil()).Return(3, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"scope": "all"}, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, nil)
	})

	s.Run("error: unknown scope", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"scope": "tags", "values": []string{"x"}}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: empty value in list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"scope": "brands", "values": []string{""}}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: scope without values maps to 400", func() {
		s.mockCommands.EXPECT().Requeue(gomock.Any(), "shop-1", commands.RequeueCategories, gomock.Nil()).
			Return(0, commands.ErrNoRequeueValues)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"scope": "categories"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Requeue failed")
	})
}
