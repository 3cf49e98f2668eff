package api

import (
	"net/http"
	"strconv"

	resdto "pickup-rsvp/internal/handler/dto/response"
	"pickup-rsvp/internal/handler/httperr"
	"pickup-rsvp/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	q queries.GameQueries
}

func NewGameHandler(q queries.GameQueries) *GameHandler {
	return &GameHandler{q: q}
}

// @Summary List upcoming games
// @Description Games that have not started yet, soonest first
// @Tags games
// @Produce json
// @Param limit query int false "Maximum number of games (default 50, max 200)"
// @Success 200 {object} resdto.GameListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/games [get]
func (h *GameHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidQuery, "limit must be a positive integer")
			return
		}
		limit = n
	}

	views, err := h.q.ListUpcoming(c.Request.Context(), limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGameViews(views))
}

// @Summary Get game
// @Tags games
// @Produce json
// @Param gameId path string true "Game ID"
// @Success 200 {object} queries.GameView
// @Failure 404 {object} httperr.Response
// @Router /api/v1/games/{gameId} [get]
func (h *GameHandler) Get(c *gin.Context) {
	view, err := h.q.GetGame(c.Request.Context(), c.Param("gameId"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
