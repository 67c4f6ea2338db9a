package api

import (
	"net/http"

	reqdto "vehicle-parking/internal/handler/dto/request"
	resdto "vehicle-parking/internal/handler/dto/response"
	"vehicle-parking/internal/handler/httperr"
	"vehicle-parking/internal/usecase/commands"
	"vehicle-parking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ParkingHandler serves the driver-facing endpoints.
type ParkingHandler struct {
	alloc        commands.AllocationCommands
	lots         queries.LotQueries
	reservations queries.ReservationQueries
	analytics    queries.AnalyticsQueries
}

func NewParkingHandler(
	alloc commands.AllocationCommands,
	lots queries.LotQueries,
	reservations queries.ReservationQueries,
	analytics queries.AnalyticsQueries,
) *ParkingHandler {
	return &ParkingHandler{
		alloc:        alloc,
		lots:         lots,
		reservations: reservations,
		analytics:    analytics,
	}
}

// @Summary List parking lots
// @Description Lots with current occupancy. Counts may lag by the cache TTL.
// @Tags parking
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.LotView
// @Router /user/parking-lots [get]
func (h *ParkingHandler) ListLots(c *gin.Context) {
	lots, err := h.lots.ListLots(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if lots == nil {
		lots = []*queries.LotView{}
	}
	c.JSON(http.StatusOK, gin.H{"parking_lots": lots})
}

// @Summary Book a spot
// @Description Assigns the lowest available spot of the lot
// @Tags parking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.BookRequest true "Booking request"
// @Success 201 {object} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "conflict, or capacity when the lot is full"
// @Router /user/book [post]
func (h *ParkingHandler) Book(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}

	var req reqdto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.alloc.Book(c.Request.Context(), userID, req.LotID, req.VehicleNumber)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservation(result.Reservation, result.Spot, result.Lot))
}

// @Summary Vacate
// @Description Completes the active reservation and returns the charge
// @Tags parking
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.VacateResponse
// @Failure 404 {object} httperr.Response
// @Router /user/vacate [post]
func (h *ParkingHandler) Vacate(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}

	result, err := h.alloc.Release(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.VacateResponse{
		Cost:        result.Cost,
		Reservation: resdto.FromReservation(result.Reservation, result.Spot, result.Lot),
	})
}

// @Summary List my reservations
// @Tags parking
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /user/reservations [get]
func (h *ParkingHandler) ListReservations(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}

	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}

	page, err := h.reservations.ListMine(c.Request.Context(), userID, q.After, q.PageSize())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationPage(page))
}

// @Summary Active reservation
// @Description The running reservation with its cost so far
// @Tags parking
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.ActiveReservationView
// @Failure 404 {object} httperr.Response
// @Router /user/reservations/active [get]
func (h *ParkingHandler) ActiveReservation(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}

	view, err := h.reservations.Active(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary My summary
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserSummaryResponse
// @Router /user/summary [get]
func (h *ParkingHandler) Summary(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}

	summary, err := h.analytics.UserSummary(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromUserSummary(summary)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// @Summary My charts
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserChartsResponse
// @Router /user/charts [get]
func (h *ParkingHandler) Charts(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}

	charts, err := h.analytics.UserCharts(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromUserCharts(charts)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// @Summary My monthly report
// @Description Covers the calendar month before today.
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MonthlyReportResponse
// @Router /user/reports/monthly [get]
func (h *ParkingHandler) MonthlyReport(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}

	report, err := h.analytics.MonthlyReport(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromMonthlyReport(report)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
