//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gateops/internal/domain/user"
	"gateops/internal/handler/api"
	resdto "gateops/internal/handler/dto/response"
	"gateops/internal/handler/middleware"
	"gateops/internal/usecase/queries"
	"gateops/tests/common/httptest"
	queriesmock "gateops/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatsHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockStats *queriesmock.MockStatsQueries
	handler   *api.StatsHandler
	role      user.Role
}

func (s *StatsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockStats = queriesmock.NewMockStatsQueries(s.mockCtrl)
	s.handler = api.NewStatsHandler(s.mockStats)
	s.role = user.RoleAdmin

	// Mock authentication middleware for testing; the role check itself is
	// the real one so the admin gate is exercised.
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", s.role)
		c.Next()
	}
	requireAdmin := middleware.NewAuthMiddleware(nil).RequireRoleAtLeast(user.RoleAdmin)

	s.router.GET("/stats", authMiddleware, requireAdmin, s.handler.BranchStats)
}

func (s *StatsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStatsHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatsHandlerTestSuite))
}

func (s *StatsHandlerTestSuite) TestBranchStats() {
	url := "/stats?branch=main"

	s.Run("success: admin gets branch counts", func() {
		s.mockStats.EXPECT().BranchStats(gomock.Any(), "main").
			Return(&queries.BranchStatsView{
				Branch:          "main",
				PendingRequests: 4,
				ActiveVisits:    2,
				OccupiedBays:    1,
				FreeBays:        3,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BranchStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("main", response.Branch)
		s.Equal(4, response.PendingRequests)
		s.Equal(3, response.FreeBays)
	})

	s.Run("error: 403 Forbidden for operators", func() {
		s.role = user.RoleOperator

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)

		s.role = user.RoleAdmin
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request without a branch", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stats", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "branch is required")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockStats.EXPECT().BranchStats(gomock.Any(), "main").
			Return(nil, queries.ErrStatsQueryFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}
