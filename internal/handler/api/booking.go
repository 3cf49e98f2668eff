package api

import (
	"net/http"

	reqdto "pickup-rsvp/internal/handler/dto/request"
	resdto "pickup-rsvp/internal/handler/dto/response"
	"pickup-rsvp/internal/handler/httperr"
	"pickup-rsvp/internal/usecase/commands"
	"pickup-rsvp/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds     commands.BookingCommands
	waitlist commands.WaitlistCommands
	q        queries.ReservationQueries
}

func NewBookingHandler(cmds commands.BookingCommands, waitlist commands.WaitlistCommands, q queries.ReservationQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, waitlist: waitlist, q: q}
}

// @Summary Reserve with cash
// @Description Books spots for the holder and guests, paid at the field
// @Tags reservations
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID"
// @Param request body reqdto.ReserveRequest true "Reservation request"
// @Success 201 {object} resdto.ReserveResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/v1/games/{gameId}/reservations [post]
func (h *BookingHandler) Reserve(c *gin.Context) {
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), req.ToCommand(c.Param("gameId"), c.ClientIP()))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}

// @Summary Start online checkout
// @Description Opens a payment session. The spot is booked when the payment provider confirms
// @Tags reservations
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID"
// @Param request body reqdto.ReserveRequest true "Reservation request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/v1/games/{gameId}/checkout [post]
func (h *BookingHandler) Checkout(c *gin.Context) {
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	result, err := h.cmds.InitiateCheckout(c.Request.Context(), req.ToCommand(c.Param("gameId"), c.ClientIP()))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary Cancel reservation
// @Description Requires the confirmation code and the holder email
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CancelRequest true "Cancel request"
// @Success 200 {object} resdto.CancelResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/v1/reservations/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	result, err := h.cmds.Cancel(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary Look up reservation
// @Tags reservations
// @Produce json
// @Param code path string true "Confirmation code"
// @Param email query string true "Holder email"
// @Success 200 {object} queries.ReservationView
// @Failure 404 {object} httperr.Response
// @Router /api/v1/reservations/{code} [get]
func (h *BookingHandler) Lookup(c *gin.Context) {
	view, err := h.q.Lookup(c.Request.Context(), c.Param("code"), c.Query("email"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Join waitlist
// @Tags waitlist
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID"
// @Param request body reqdto.JoinWaitlistRequest true "Waitlist request"
// @Success 201 {object} resdto.WaitlistResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/v1/games/{gameId}/waitlist [post]
func (h *BookingHandler) JoinWaitlist(c *gin.Context) {
	var req reqdto.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	result, err := h.waitlist.Join(c.Request.Context(), req.ToCommand(c.Param("gameId")))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.WaitlistResponse{Position: result.Position})
}
