package api

import (
	"net/http"

	"vehicle-parking/internal/domain/user"
	reqdto "vehicle-parking/internal/handler/dto/request"
	resdto "vehicle-parking/internal/handler/dto/response"
	"vehicle-parking/internal/handler/httperr"
	"vehicle-parking/internal/usecase/commands"
	"vehicle-parking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves /api/admin. Routes are behind RequireRole(admin) and
// the commands check the actor's role again.
type AdminHandler struct {
	cmds      commands.AdminCommands
	lots      queries.LotQueries
	users     queries.UserQueries
	analytics queries.AnalyticsQueries
}

func NewAdminHandler(
	cmds commands.AdminCommands,
	lots queries.LotQueries,
	users queries.UserQueries,
	analytics queries.AnalyticsQueries,
) *AdminHandler {
	return &AdminHandler{
		cmds:      cmds,
		lots:      lots,
		users:     users,
		analytics: analytics,
	}
}

func actorOf(userID uuid.UUID, role user.Role) commands.Actor {
	return commands.Actor{UserID: userID, Role: role}
}

// @Summary List parking lots
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.LotView
// @Router /admin/parking-lots [get]
func (h *AdminHandler) ListLots(c *gin.Context) {
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

// @Summary Create parking lot
// @Description Creates the lot with number_of_spots Available spots
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateLotRequest true "Lot"
// @Success 201 {object} queries.LotView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/parking-lots [post]
func (h *AdminHandler) CreateLot(c *gin.Context) {
	userID, role, ok := identity(c)
	if !ok {
		return
	}

	var req reqdto.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	created, err := h.cmds.CreateLot(c.Request.Context(), actorOf(userID, role), req.ToSpec())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.lots.GetLot(c.Request.Context(), created.ID())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Header("Location", "/api/admin/parking-lots/"+created.ID().String())
	c.JSON(http.StatusCreated, view)
}

// @Summary Get parking lot
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lot ID"
// @Success 200 {object} queries.LotView
// @Failure 404 {object} httperr.Response
// @Router /admin/parking-lots/{id} [get]
func (h *AdminHandler) GetLot(c *gin.Context) {
	lotID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := h.lots.GetLot(c.Request.Context(), lotID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Update parking lot
// @Description name, address, pincode and price may change. code and number_of_spots are rejected when they differ.
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lot ID"
// @Param request body reqdto.UpdateLotRequest true "Changes"
// @Success 200 {object} queries.LotView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/parking-lots/{id} [put]
func (h *AdminHandler) UpdateLot(c *gin.Context) {
	userID, role, ok := identity(c)
	if !ok {
		return
	}
	lotID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	if _, err := h.cmds.UpdateLot(c.Request.Context(), actorOf(userID, role), lotID, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.lots.GetLot(c.Request.Context(), lotID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete parking lot
// @Description Fails with 409 while any spot is occupied
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/parking-lots/{id} [delete]
func (h *AdminHandler) DeleteLot(c *gin.Context) {
	userID, role, ok := identity(c)
	if !ok {
		return
	}
	lotID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.DeleteLot(c.Request.Context(), actorOf(userID, role), lotID); err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List spots
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lot ID"
// @Success 200 {array} queries.SpotView
// @Failure 404 {object} httperr.Response
// @Router /admin/parking-lots/{id}/spots [get]
func (h *AdminHandler) ListSpots(c *gin.Context) {
	lotID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	spots, err := h.lots.ListSpots(c.Request.Context(), lotID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if spots == nil {
		spots = []*queries.SpotView{}
	}

	c.JSON(http.StatusOK, gin.H{"spots": spots})
}

// @Summary Delete spot
// @Description Only Available spots can be deleted. The lot keeps its number_of_spots.
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param spotId path string true "Spot ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/parking-lots/{id}/spots/{spotId} [delete]
func (h *AdminHandler) DeleteSpot(c *gin.Context) {
	userID, role, ok := identity(c)
	if !ok {
		return
	}
	lotID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	spotID, ok := uuidParam(c, "spotId")
	if !ok {
		return
	}

	if err := h.cmds.DeleteSpot(c.Request.Context(), actorOf(userID, role), lotID, spotID); err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Spot details
// @Description The spot, its lot and, when occupied, the active reservation and occupant
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param spotId path string true "Spot ID"
// @Success 200 {object} queries.SpotDetailsView
// @Failure 404 {object} httperr.Response
// @Router /admin/spots/{spotId}/details [get]
func (h *AdminHandler) SpotDetails(c *gin.Context) {
	spotID, ok := uuidParam(c, "spotId")
	if !ok {
		return
	}

	details, err := h.lots.SpotDetails(c.Request.Context(), spotID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// @Summary List users
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.UserView
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if users == nil {
		users = []*queries.UserView{}
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// @Summary Admin summary
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AdminSummaryResponse
// @Router /admin/summary [get]
func (h *AdminHandler) Summary(c *gin.Context) {
	summary, err := h.analytics.AdminSummary(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromAdminSummary(summary)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// @Summary Admin charts
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AdminChartsResponse
// @Router /admin/charts [get]
func (h *AdminHandler) Charts(c *gin.Context) {
	charts, err := h.analytics.AdminCharts(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromAdminCharts(charts)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// @Summary Monthly reports
// @Description One report per user for the calendar month before today.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.UserMonthlyReportResponse
// @Router /admin/reports/monthly [get]
func (h *AdminHandler) MonthlyReports(c *gin.Context) {
	reports, err := h.analytics.MonthlyReports(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromMonthlyReports(reports)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": res})
}

// @Summary Reminder candidates
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ReminderDigestResponse
// @Router /admin/reminders [get]
func (h *AdminHandler) Reminders(c *gin.Context) {
	digest, err := h.analytics.Reminders(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReminderDigest(digest))
}
