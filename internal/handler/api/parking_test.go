//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"vehicle-parking/internal/domain/analytics"
	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/handler/api"
	resdto "vehicle-parking/internal/handler/dto/response"
	"vehicle-parking/internal/handler/httperr"
	"vehicle-parking/internal/usecase/commands"
	"vehicle-parking/internal/usecase/queries"
	"vehicle-parking/tests/common/builder"
	"vehicle-parking/tests/common/httptest"
	"vehicle-parking/tests/common/testutil"
	commandsmock "vehicle-parking/tests/mock/commands"
	queriesmock "vehicle-parking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ParkingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAlloc        *commandsmock.MockAllocationCommands
	mockLots         *queriesmock.MockLotQueries
	mockReservations *queriesmock.MockReservationQueries
	mockAnalytics    *queriesmock.MockAnalyticsQueries
	handler          *api.ParkingHandler
	userID           uuid.UUID
}

func (s *ParkingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAlloc = commandsmock.NewMockAllocationCommands(s.mockCtrl)
	s.mockLots = queriesmock.NewMockLotQueries(s.mockCtrl)
	s.mockReservations = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockAnalytics = queriesmock.NewMockAnalyticsQueries(s.mockCtrl)
	s.handler = api.NewParkingHandler(s.mockAlloc, s.mockLots, s.mockReservations, s.mockAnalytics)
	s.userID = uuid.New()

	g := s.router.Group("/user", fakeAuth(s.userID, user.RoleUser))
	g.GET("/parking-lots", s.handler.ListLots)
	g.POST("/book", s.handler.Book)
	g.POST("/vacate", s.handler.Vacate)
	g.GET("/reservations", s.handler.ListReservations)
	g.GET("/reservations/active", s.handler.ActiveReservation)
	g.GET("/summary", s.handler.Summary)
	g.GET("/charts", s.handler.Charts)
	g.GET("/reports/monthly", s.handler.MonthlyReport)
}

func (s *ParkingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestParkingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ParkingHandlerTestSuite))
}

// ================================================================================
// TestBook
// ================================================================================

func (s *ParkingHandlerTestSuite) TestBook() {
	url := "/user/book"
	lotID := uuid.New()
	reqBody := map[string]any{"lot_id": lotID.String(), "vehicle_number": "KA01AB1234"}

	booked, err := builder.NewReservationBuilder().WithUser(s.userID).BuildBooking()
	s.Require().NoError(err)

	s.Run("success: returns 201 with the assigned spot", func() {
		s.mockAlloc.EXPECT().Book(gomock.Any(), s.userID, lotID, "KA01AB1234").
			Return(booked, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(booked.Reservation.ID(), response.ID)
		s.Require().NotNil(response.SpotNumber)
		s.Equal("1", *response.SpotNumber)
		s.Equal("A1", *response.SpotLabel)
		s.Equal("active", response.Status)
		s.Nil(response.Cost)
		s.Nil(response.EndTime)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: lot_id (required)", mutate: testutil.Field("lot_id", nil)},
			{name: "missing field: vehicle_number (required)", mutate: testutil.Field("vehicle_number", nil)},
			{name: "lot_id is not a uuid", mutate: testutil.Field("lot_id", "lot-1")},
			{name: "empty vehicle_number", mutate: testutil.Field("vehicle_number", "")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps allocation errors to statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{name: "lot full", commandsError: commands.ErrLotFull, expectedStatus: http.StatusConflict, expectedCode: httperr.CodeCapacity},
			{name: "already parked", commandsError: commands.ErrActiveReservationExists, expectedStatus: http.StatusConflict, expectedCode: httperr.CodeConflict},
			{name: "unknown lot", commandsError: commands.ErrLotNotFound, expectedStatus: http.StatusNotFound, expectedCode: httperr.CodeNotFound},
			{name: "bad vehicle number", commandsError: errValidation("vehicle number is invalid"), expectedStatus: http.StatusBadRequest, expectedCode: httperr.CodeValidation},
			{name: "internal error", commandsError: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError, expectedCode: httperr.CodeInternal},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAlloc.EXPECT().Book(gomock.Any(), s.userID, lotID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

// ================================================================================
// TestVacate
// ================================================================================

func (s *ParkingHandlerTestSuite) TestVacate() {
	url := "/user/vacate"

	s.Run("success: returns the cost with the completed reservation", func() {
		released, err := builder.NewReservationBuilder().WithUser(s.userID).WithParked(90 * time.Minute).BuildRelease()
		s.Require().NoError(err)
		s.mockAlloc.EXPECT().Release(gomock.Any(), s.userID).Return(released, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.VacateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		// 40.0/hr for 1.5h
		s.True(decimal.RequireFromString("60").Equal(response.Cost), "cost = %s", response.Cost)
		s.Equal("completed", response.Reservation.Status)
		s.Require().NotNil(response.Reservation.Cost)
		s.True(response.Cost.Equal(*response.Reservation.Cost))
	})

	s.Run("error: 404 without an active reservation", func() {
		s.mockAlloc.EXPECT().Release(gomock.Any(), s.userID).Return(nil, commands.ErrNoActiveReservation).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})
}

// ================================================================================
// TestListReservations
// ================================================================================

func (s *ParkingHandlerTestSuite) TestListReservations() {
	view := builder.NewReservationBuilder().WithUser(s.userID).BuildView()

	s.Run("success: passes cursor and limit through", func() {
		page := &queries.ReservationPage{
			Items: []*queries.ReservationView{view},
			Next:  &queries.Cursor{After: "next-token"},
		}
		s.mockReservations.EXPECT().ListMine(gomock.Any(), s.userID, "abc", 5).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/reservations?after=abc&limit=5", nil, "bearer-token")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Reservations, 1)
		s.Equal(view.ID, response.Reservations[0].ID)
		s.Equal("next-token", response.NextCursor)
	})

	s.Run("success: empty history renders an empty list", func() {
		s.mockReservations.EXPECT().ListMine(gomock.Any(), s.userID, "", queries.DefaultListLimit).
			Return(&queries.ReservationPage{}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/reservations", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"reservations":[]}`, rec.Body.String())
	})

	s.Run("error: 400 for a limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/reservations?limit=500", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
	})

	s.Run("error: 400 for a malformed cursor", func() {
		s.mockReservations.EXPECT().ListMine(gomock.Any(), s.userID, "garbage", queries.DefaultListLimit).
			Return(nil, errValidation("invalid cursor")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/reservations?after=garbage", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
	})
}

func (s *ParkingHandlerTestSuite) TestActiveReservation() {
	s.Run("success: includes the running cost", func() {
		active := builder.NewReservationBuilder().WithUser(s.userID).WithParked(100 * time.Minute).BuildActiveView("66.7")
		s.mockReservations.EXPECT().Active(gomock.Any(), s.userID).Return(active, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/reservations/active", nil, "bearer-token")

		var response queries.ActiveReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("66.7", response.CostSoFar.String())
		s.Equal(int64(100), response.DurationMinutes)
	})

	s.Run("error: 404 when nothing is parked", func() {
		s.mockReservations.EXPECT().Active(gomock.Any(), s.userID).Return(nil, queries.ErrNoActiveReservation).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/reservations/active", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})
}

func (s *ParkingHandlerTestSuite) TestListLots() {
	lots := []*queries.LotView{builder.NewLotBuilder().BuildView()}
	s.mockLots.EXPECT().ListLots(gomock.Any()).Return(lots, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/parking-lots", nil, "bearer-token")

	var response struct {
		ParkingLots []*queries.LotView `json:"parking_lots"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.ParkingLots, 1)
	s.Equal(3, response.ParkingLots[0].AvailableSpots)
}

// ================================================================================
// TestAnalytics
// ================================================================================

func (s *ParkingHandlerTestSuite) TestSummary() {
	start := handlerNow.Add(-time.Hour)
	summary := analytics.UserSummary{
		TotalReservations:     3,
		CompletedReservations: 2,
		Active:                &analytics.ReservationSnapshot{ID: uuid.New(), UserID: s.userID, LotID: uuid.New(), StartTime: start, Status: "active"},
		TotalSpent:            decimal.RequireFromString("25.5"),
		TotalHours:            decimal.RequireFromString("2.5"),
	}
	s.mockAnalytics.EXPECT().UserSummary(gomock.Any(), s.userID).Return(summary, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/summary", nil, "bearer-token")

	var response resdto.UserSummaryResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	want := resdto.UserSummaryResponse{
		TotalReservations:     3,
		CompletedReservations: 2,
		ActiveReservation: &resdto.ActiveSnapshotResponse{
			ID:        summary.Active.ID,
			LotID:     summary.Active.LotID,
			StartTime: start,
			Status:    "active",
		},
		TotalSpent: decimal.RequireFromString("25.5"),
		TotalHours: decimal.RequireFromString("2.5"),
	}
	if diff := cmp.Diff(want, response, decimalComparer); diff != "" {
		s.T().Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func (s *ParkingHandlerTestSuite) TestCharts() {
	lotID := uuid.New()
	charts := analytics.UserCharts{
		DailyUsage:      []analytics.DailyCount{{Date: "2025-03-09", Count: 1}, {Date: "2025-03-10", Count: 2}},
		LotDistribution: []analytics.LotCount{{LotID: lotID, LotName: "Central Plaza", Count: 3}},
	}
	s.mockAnalytics.EXPECT().UserCharts(gomock.Any(), s.userID).Return(charts, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/charts", nil, "bearer-token")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{
		"daily_usage": [{"date":"2025-03-09","count":1},{"date":"2025-03-10","count":2}],
		"lot_distribution": [{"lot_id":"`+lotID.String()+`","lot_name":"Central Plaza","count":3}],
		"status_breakdown": []
	}`, rec.Body.String())
}

func (s *ParkingHandlerTestSuite) TestMonthlyReport() {
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	report := analytics.MonthlyReport{
		Month: "2025-02", PeriodStart: start, PeriodEnd: end,
		TotalReservations: 4, CompletedReservations: 3,
		TotalSpent: decimal.RequireFromString("55"), TotalHours: decimal.RequireFromString("3.5"),
		MostUsedLot: "Central Plaza",
	}

	s.Run("success", func() {
		s.mockAnalytics.EXPECT().MonthlyReport(gomock.Any(), s.userID).Return(report, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/reports/monthly", nil, "bearer-token")

		var response resdto.MonthlyReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		want := resdto.MonthlyReportResponse{
			Month: "2025-02", PeriodStart: start, PeriodEnd: end,
			TotalReservations: 4, CompletedReservations: 3,
			TotalSpent: decimal.RequireFromString("55"), TotalHours: decimal.RequireFromString("3.5"),
			MostUsedLot: "Central Plaza",
		}
		if diff := cmp.Diff(want, response, decimalComparer); diff != "" {
			s.T().Errorf("report mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/reports/monthly", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
