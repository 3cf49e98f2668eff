package api

import (
	"net/http"

	reqdto "pickup-rsvp/internal/handler/dto/request"
	resdto "pickup-rsvp/internal/handler/dto/response"
	"pickup-rsvp/internal/handler/httperr"
	"pickup-rsvp/internal/handler/middleware"
	"pickup-rsvp/internal/usecase/commands"
	"pickup-rsvp/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	auth      commands.AuthCommands
	cmds      commands.AdminCommands
	games     queries.GameQueries
	roster    queries.ReservationQueries
	operators queries.OperatorQueries
}

func NewAdminHandler(
	auth commands.AuthCommands,
	cmds commands.AdminCommands,
	games queries.GameQueries,
	roster queries.ReservationQueries,
	operators queries.OperatorQueries,
) *AdminHandler {
	return &AdminHandler{
		auth:      auth,
		cmds:      cmds,
		games:     games,
		roster:    roster,
		operators: operators,
	}
}

// @Summary Operator login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/v1/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Current operator
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.OperatorView
// @Failure 401 {object} httperr.Response
// @Router /api/v1/admin/me [get]
func (h *AdminHandler) Me(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingContext, "Unauthorized")
		return
	}
	view, err := h.operators.GetCurrentOperator(c.Request.Context(), operatorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create game
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGameRequest true "Game"
// @Success 201 {object} queries.GameView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/v1/admin/games [post]
func (h *AdminHandler) CreateGame(c *gin.Context) {
	var req reqdto.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	view, err := h.cmds.CreateGame(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update game
// @Description Partial update. Raising capacity promotes the waitlist
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param gameId path string true "Game ID"
// @Param request body reqdto.UpdateGameRequest true "Fields to change"
// @Success 200 {object} resdto.UpdateGameResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/v1/admin/games/{gameId} [patch]
func (h *AdminHandler) UpdateGame(c *gin.Context) {
	var req reqdto.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	result, err := h.cmds.UpdateGame(c.Request.Context(), c.Param("gameId"), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.UpdateGameResponse{Game: result.Game, WaitlistPromoted: result.Promoted})
}

// @Summary Game roster
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param gameId path string true "Game ID"
// @Success 200 {object} queries.RosterView
// @Failure 404 {object} httperr.Response
// @Router /api/v1/admin/games/{gameId}/roster [get]
func (h *AdminHandler) Roster(c *gin.Context) {
	view, err := h.roster.Roster(c.Request.Context(), c.Param("gameId"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Refund reservation
// @Description Issues the provider refund for a cancelled online reservation inside the refund window
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param code path string true "Confirmation code"
// @Success 200 {object} resdto.RefundResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/v1/admin/reservations/{code}/refund [post]
func (h *AdminHandler) Refund(c *gin.Context) {
	result, err := h.cmds.RefundReservation(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefundResult(result))
}

// @Summary Mark no-show
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param code path string true "Confirmation code"
// @Success 200 {object} resdto.NoShowResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/v1/admin/reservations/{code}/no-show [post]
func (h *AdminHandler) NoShow(c *gin.Context) {
	result, err := h.cmds.MarkNoShow(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NoShowResponse{ConfirmationCode: result.ConfirmationCode, Status: result.Status})
}
