//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"pickup-rsvp/internal/handler/api"
	resdto "pickup-rsvp/internal/handler/dto/response"
	"pickup-rsvp/internal/usecase/queries"
	"pickup-rsvp/tests/common/builder"
	"pickup-rsvp/tests/common/httptest"
	queriesmock "pickup-rsvp/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockGameQueries
}

func (s *GameHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockGameQueries(s.mockCtrl)
	handler := api.NewGameHandler(s.mockQueries)

	s.router.GET("/games", handler.List)
	s.router.GET("/games/:gameId", handler.Get)
}

func (s *GameHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameHandlerSuite(t *testing.T) {
	suite.Run(t, new(GameHandlerTestSuite))
}

func (s *GameHandlerTestSuite) TestList() {
	s.Run("success: default limit", func() {
		views := []*queries.GameView{
			builder.NewGameBuilder().WithID("sat-a").BuildView(),
			builder.NewGameBuilder().WithID("sun-b").AsFull().BuildView(),
		}
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), 0).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/games", nil, "")

		var body resdto.GameListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Games, 2)
		s.Equal("sat-a", body.Games[0].GameID)
		s.Equal("full", body.Games[1].Status)
		s.Equal(0, body.Games[1].SpotsRemaining)
	})

	s.Run("success: explicit limit", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), 5).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/games?limit=5", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"games":[]}`, rec.Body.String())
	})

	s.Run("error: invalid limit", func() {
		for _, raw := range []string{"0", "-3", "ten"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/games?limit="+raw, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "limit must be a positive integer")
		}
	})

	s.Run("error: store failure is 500", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), gomock.Any()).Return(nil, assert.AnError).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/games", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *GameHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewGameBuilder().WithCapacity(12).BuildView()
		s.mockQueries.EXPECT().GetGame(gomock.Any(), view.GameID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/games/"+view.GameID, nil, "")

		var body queries.GameView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(12, body.Capacity)
		s.Equal(view.Venue, body.Venue)
		s.Equal(view.DayOfWeek, body.DayOfWeek)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetGame(gomock.Any(), "missing").Return(nil, queries.ErrGameNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/games/missing", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, queries.ErrGameNotFound.Error())
	})
}
