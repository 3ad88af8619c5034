//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"gateops/internal/domain/user"
	"gateops/internal/handler/api"
	resdto "gateops/internal/handler/dto/response"
	"gateops/internal/pkg/errs"
	"gateops/internal/usecase/commands"
	"gateops/internal/usecase/queries"
	"gateops/tests/common/builder"
	"gateops/tests/common/httptest"
	"gateops/tests/common/testutil"
	commandsmock "gateops/tests/mock/commands"
	queriesmock "gateops/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VisitHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockVisitCommands
	mockQueries   *queriesmock.MockVisitQueries
	mockDurations *queriesmock.MockDurationQueries
	handler       *api.VisitHandler
}

func (s *VisitHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVisitCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVisitQueries(s.mockCtrl)
	s.mockDurations = queriesmock.NewMockDurationQueries(s.mockCtrl)
	s.handler = api.NewVisitHandler(s.mockCommands, s.mockQueries, s.mockDurations)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleOperator)
		c.Next()
	}

	s.router.GET("/visits", authMiddleware, s.handler.List)
	s.router.GET("/visits/:id", authMiddleware, s.handler.Get)
	s.router.POST("/visits/:id/close", authMiddleware, s.handler.Close)
	s.router.POST("/visits/walk-ins", authMiddleware, s.handler.AddWalkIn)
	s.router.POST("/visits/truck-logs", authMiddleware, s.handler.LogTruck)
	// Duration preview is public (kiosk).
	s.router.POST("/durations/compute", s.handler.ComputeDuration)
}

func (s *VisitHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVisitHandlerSuite(t *testing.T) {
	suite.Run(t, new(VisitHandlerTestSuite))
}

// ================================================================================
// TestGet
// ================================================================================

func (s *VisitHandlerTestSuite) TestGet() {
	visitID := uuid.New()
	url := "/visits/" + visitID.String()

	returnView := builder.NewVisitBuilder().Truck().BuildView()
	returnView.ID = visitID

	s.Run("success: returns 200 OK with VisitResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), visitID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.VisitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(visitID, response.ID)
		s.Require().NotNil(response.Bay)
		s.Equal("3a", *response.Bay)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/visits/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing visit", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), visitID).
			Return(nil, queries.ErrVisitNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Visit not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *VisitHandlerTestSuite) TestList() {
	baseURL := "/visits"

	items := []*queries.VisitView{
		builder.NewVisitBuilder().BuildView(),
		builder.NewVisitBuilder().Truck().BuildView(),
	}

	s.Run("success: returns visit list", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.VisitFilters{}, 20).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		visits, ok := response["visits"].([]any)
		s.True(ok)
		s.Equal(len(items), len(visits))
	})

	s.Run("success: active_only and branch filters are passed through", func() {
		branch := "main"
		expectedFilters := queries.VisitFilters{Branch: &branch, ActiveOnly: true}

		s.mockQueries.EXPECT().List(gomock.Any(), expectedFilters, 20).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?branch=main&active_only=true", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.VisitFilters{}, 20).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestClose
// ================================================================================

func (s *VisitHandlerTestSuite) TestClose() {
	visitID := uuid.New()
	url := "/visits/" + visitID.String() + "/close"

	timeOut := time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)
	returnView := builder.NewVisitBuilder().
		With(func(b *builder.VisitBuilder) { b.TimeOut = &timeOut }).
		BuildView()
	returnView.ID = visitID

	s.Run("success: returns 200 OK with the closed visit", func() {
		s.mockCommands.EXPECT().Close(gomock.Any(), visitID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), visitID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.VisitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.TimeOut)
		s.Require().NotNil(response.DurationMinutes)
		s.Equal(150, *response.DurationMinutes)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "visit not found",
				commandsError:  commands.ErrVisitNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Visit not found",
			},
			{
				name:           "already closed",
				commandsError:  commands.ErrVisitAlreadyClosed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Visit already closed",
			},
			{
				name:           "invalid interval",
				commandsError:  commands.ErrInvalidInterval,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Time out is earlier than time in",
			},
			{
				name:           "invalid interval with domain detail attached",
				commandsError:  errs.Mark(errs.New("time out is earlier than time in"), commands.ErrInvalidInterval),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Time out is earlier than time in",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Close failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Close(gomock.Any(), visitID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestAddWalkIn
// ================================================================================

func (s *VisitHandlerTestSuite) TestAddWalkIn() {
	url := "/visits/walk-ins"

	reqBody := map[string]any{"subject": "Jane Visitor", "branch": "main"}
	returnView := builder.NewVisitBuilder().BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().AddWalkIn(gomock.Any(), commands.WalkInInput{Subject: "Jane Visitor", Branch: "main"}).
			Return(returnView.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.VisitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Nil(response.TimeOut)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: subject (required)", mutate: testutil.Field("subject", nil)},
			{name: "missing field: branch (required)", mutate: testutil.Field("branch", nil)},
		} {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

// ================================================================================
// TestLogTruck
// ================================================================================

func (s *VisitHandlerTestSuite) TestLogTruck() {
	url := "/visits/truck-logs"

	reqBody := map[string]any{"plate_number": "ABC-1234", "branch": "main", "bay": "2a"}
	returnView := builder.NewVisitBuilder().Truck().BuildView()

	expectedInput := commands.TruckLogInput{PlateNumber: "ABC-1234", Branch: "main", BayCode: "2a"}

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().LogTruck(gomock.Any(), expectedInput).
			Return(returnView.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.VisitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("truck", response.Kind)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "client not registered",
				commandsError:  commands.ErrClientNotRegistered,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Client not registered",
			},
			{
				name:           "bay occupied",
				commandsError:  commands.ErrBayOccupied,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Bay is occupied",
			},
			{
				name:           "unknown bay",
				commandsError:  commands.ErrUnknownBay,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Unknown bay",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Truck log failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().LogTruck(gomock.Any(), expectedInput).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestComputeDuration
// ================================================================================

func (s *VisitHandlerTestSuite) TestComputeDuration() {
	url := "/durations/compute"

	reqBody := map[string]any{"date": "2025-03-10", "time_in": "08:30", "time_out": "11:00"}
	expectedInput := queries.DurationInput{Date: "2025-03-10", TimeIn: "08:30", TimeOut: "11:00"}

	s.Run("success: returns computed minutes", func() {
		s.mockDurations.EXPECT().Compute(gomock.Any(), expectedInput).
			Return(&queries.DurationView{Minutes: 150}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.DurationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(150, response.Minutes)
	})

	s.Run("success: cross-midnight close date is passed through", func() {
		body := map[string]any{"date": "2025-03-10", "time_in": "23:00", "time_out": "01:00", "time_out_date": "2025-03-11"}
		input := queries.DurationInput{Date: "2025-03-10", TimeIn: "23:00", TimeOut: "01:00", TimeOutDate: "2025-03-11"}

		s.mockDurations.EXPECT().Compute(gomock.Any(), input).
			Return(&queries.DurationView{Minutes: 120}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.DurationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(120, response.Minutes)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("time_out", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 422 Unprocessable Entity on negative interval", func() {
		s.mockDurations.EXPECT().Compute(gomock.Any(), expectedInput).
			Return(nil, errs.Mark(errs.New("time out 08:30 is before time in 11:00"), queries.ErrDurationInvalidInterval)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Time out is earlier than time in")
	})

	s.Run("error: 400 Bad Request on malformed input", func() {
		s.mockDurations.EXPECT().Compute(gomock.Any(), expectedInput).
			Return(nil, queries.ErrDurationBadFormat).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid duration input")
	})
}
