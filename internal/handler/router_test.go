//go:build unit

package handler_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"catalog-sync/internal/handler"
	"catalog-sync/internal/handler/api"
	"catalog-sync/internal/handler/middleware"
	"catalog-sync/internal/pkg/config"
	"catalog-sync/internal/pkg/jwt"
	"catalog-sync/internal/usecase"
	"catalog-sync/internal/usecase/commands"
	"catalog-sync/internal/usecase/productsync"
	"catalog-sync/internal/usecase/queries"
	"catalog-sync/tests/common/authtest"
	"catalog-sync/tests/common/httptest"
	commandsmock "catalog-sync/tests/mock/commands"
	productsyncmock "catalog-sync/tests/mock/productsync"
	queriesmock "catalog-sync/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RouterTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	dispatcher  *productsyncmock.MockDispatcher
	queries     *queriesmock.MockSyncQueries
	intake      *commandsmock.MockIntakeCommands
	maintenance *commandsmock.MockMaintenanceCommands
	jwtHelper   *authtest.JWTHelper
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	s.mockCtrl = gomock.NewController(s.T())
	s.dispatcher = productsyncmock.NewMockDispatcher(s.mockCtrl)
	s.queries = queriesmock.NewMockSyncQueries(s.mockCtrl)
	s.intake = commandsmock.NewMockIntakeCommands(s.mockCtrl)
	s.maintenance = commandsmock.NewMockMaintenanceCommands(s.mockCtrl)
	s.jwtHelper = authtest.NewJWTHelper(cfg.JWT)

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)))
	s.router = gin.New()
	handler.NewRouter(s.router, cfg, handler.Handlers{
		Sync:  api.NewSyncHandler(s.dispatcher, s.queries),
		Queue: api.NewQueueHandler(s.intake),
		Shop:  api.NewShopHandler(s.maintenance),
	}, auth)
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil, "")

	var body map[string]string
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("ok", body["status"])
}

func (s *RouterTestSuite) TestAuthentication() {
	url := "/api/shops/shop-1/queue"

	s.Run("error: missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: malformed token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "not-a-jwt")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: expired token", func() {
		token := s.jwtHelper.CreateExpiredToken(s.T(), "ops@example.com", jwt.RoleAdmin)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: token signed with another secret", func() {
		other := authtest.NewJWTHelper(config.JWTConfig{Secret: "other-secret", Duration: time.Hour})
		token := other.GenerateToken(s.T(), "ops@example.com", jwt.RoleAdmin)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *RouterTestSuite) TestRoleTiers() {
	type testCase struct {
		name   string
		role   jwt.Role
		method string
		path   string
		body   any
		expect func()
		code   int
	}

	allowStats := func() {
		s.queries.EXPECT().QueueStats(gomock.Any(), "shop-1").Return(&queries.QueueStats{ShopID: "shop-1"}, nil)
	}
	allowSync := func() {
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), "shop-1").Return(productsync.BatchResult{ShopID: "shop-1"}, nil)
	}
	allowUninstall := func() {
		s.maintenance.EXPECT().Uninstall(gomock.Any(), "shop-1").Return(&commands.UninstallResult{}, nil)
	}

	cases := []testCase{
		{name: "viewer reads queue stats", role: jwt.RoleViewer, method: http.MethodGet, path: "/api/shops/shop-1/queue", expect: allowStats, code: http.StatusOK},
		{name: "viewer cannot run a batch", role: jwt.RoleViewer, method: http.MethodPost, path: "/api/shops/shop-1/sync", code: http.StatusForbidden},
		{name: "viewer cannot enqueue", role: jwt.RoleViewer, method: http.MethodPost, path: "/api/shops/shop-1/queue",
			body: map[string]any{"stockId": "stock-1", "action": "create"}, code: http.StatusForbidden},
		{name: "operator runs a batch", role: jwt.RoleOperator, method: http.MethodPost, path: "/api/shops/shop-1/sync", expect: allowSync, code: http.StatusOK},
		{name: "operator cannot uninstall", role: jwt.RoleOperator, method: http.MethodDelete, path: "/api/shops/shop-1", code: http.StatusForbidden},
		{name: "admin uninstalls", role: jwt.RoleAdmin, method: http.MethodDelete, path: "/api/shops/shop-1", expect: allowUninstall, code: http.StatusOK},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			if tc.expect != nil {
				tc.expect()
			}
			token := s.jwtHelper.GenerateToken(s.T(), "ops@example.com", tc.role)

			rec := httptest.PerformRequest(s.T(), s.router, tc.method, tc.path, tc.body, token)

			if tc.code == http.StatusForbidden {
				httptest.AssertErrorResponse(s.T(), rec, tc.code, "Insufficient permissions")
				return
			}
			httptest.AssertSuccessResponse(s.T(), rec, tc.code, nil)
		})
	}
}

func (s *RouterTestSuite) TestCORSPreflight() {
	req := nethttptest.NewRequest(http.MethodOptions, "/api/shops/shop-1/sync", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := nethttptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	httptest.AssertHeaders(s.T(), rec, map[string]string{
		"Access-Control-Allow-Origin": "http://localhost:3000",
	})
}
