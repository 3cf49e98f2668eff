//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/handler/api"
	resdto "pickup-rsvp/internal/handler/dto/response"
	"pickup-rsvp/internal/handler/httperr"
	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/pkg/ptr"
	"pickup-rsvp/internal/usecase/commands"
	"pickup-rsvp/internal/usecase/queries"
	"pickup-rsvp/tests/common/builder"
	"pickup-rsvp/tests/common/httptest"
	commandsmock "pickup-rsvp/tests/mock/commands"
	queriesmock "pickup-rsvp/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockWaitlist *commandsmock.MockWaitlistCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	httperr.UseJSONFieldNames()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockWaitlist = commandsmock.NewMockWaitlistCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockWaitlist, s.mockQueries)

	s.router.POST("/games/:gameId/reservations", s.handler.Reserve)
	s.router.POST("/games/:gameId/checkout", s.handler.Checkout)
	s.router.POST("/games/:gameId/waitlist", s.handler.JoinWaitlist)
	s.router.POST("/reservations/cancel", s.handler.Cancel)
	s.router.GET("/reservations/:code", s.handler.Lookup)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     httptest.Mutation
	expectCode int
}

// ================================================================================
// TestReserve
// ================================================================================

func (s *BookingHandlerTestSuite) TestReserve() {
	url := "/games/2030-06-14-riverside/reservations"
	reqBody := builder.NewReservationBuilder().WithGuests("Sam").BuildRequestDTO()
	result := &commands.ReserveResult{
		ConfirmationCode: "PKP-7KQ2MZXA",
		TotalPlayers:     2,
		TotalAmount:      2000,
		Currency:         "usd",
		PaymentStatus:    "pending",
		SpotsRemaining:   8,
	}

	validation := []testCaseBooking{
		{name: "missing name", mutate: httptest.Drop("name"), expectCode: http.StatusBadRequest},
		{name: "missing email", mutate: httptest.Drop("email"), expectCode: http.StatusBadRequest},
		{name: "malformed email", mutate: httptest.Set("email", "alex-at-example"), expectCode: http.StatusBadRequest},
		{name: "missing phone", mutate: httptest.Drop("phone"), expectCode: http.StatusBadRequest},
		{name: "name too long", mutate: httptest.Set("name", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
		{name: "phone too long", mutate: httptest.Set("phone", strings.Repeat("5", 33)), expectCode: http.StatusBadRequest},
		{name: "guest name too long", mutate: httptest.Set("guests", []string{strings.Repeat("g", 101)}), expectCode: http.StatusBadRequest},
		{name: "blank guest name", mutate: httptest.Set("guests", []string{"Sam", ""}), expectCode: http.StatusBadRequest},
		{name: "five guests", mutate: httptest.Set("guests", []string{"A", "B", "C", "D", "E"}), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with the confirmation", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.ReserveRequest) (*commands.ReserveResult, error) {
				s.Equal("2030-06-14-riverside", req.GameID)
				s.Equal("alex@example.com", req.Email)
				s.Equal([]string{"Sam"}, req.Guests)
				s.True(req.WaiverAccepted)
				s.NotEmpty(req.RequesterIP)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.ReserveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("PKP-7KQ2MZXA", body.ConfirmationCode)
		s.Equal(2, body.TotalPlayers)
		s.Equal(int64(2000), body.TotalAmount)
		s.Equal(8, body.SpotsRemaining)
	})

	s.Run("error: 400 on request validation", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := httptest.JSONWith(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 400 names the offending field", func() {
		requestMap := httptest.JSONWith(s.T(), reqBody, httptest.Set("guests", []string{"A", "B", "C", "D", "E"}))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Equal([]httperr.FieldError{{Field: "guests", Rule: "max"}}, body.Fields)
	})

	s.Run("error: domain rule violations keep their message", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(reservation.ErrWaiverNotAccepted, commands.ErrValidation)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, reservation.ErrWaiverNotAccepted.Error())
	})

	s.Run("error: usecase failures map to statuses", func() {
		cases := []struct {
			err  error
			code int
			msg  string
		}{
			{commands.ErrValidation, http.StatusBadRequest, commands.ErrValidation.Error()},
			{commands.ErrGameNotFound, http.StatusNotFound, commands.ErrGameNotFound.Error()},
			{commands.ErrDuplicateBooking, http.StatusConflict, commands.ErrDuplicateBooking.Error()},
			{commands.ErrCapacityExceeded, http.StatusConflict, commands.ErrCapacityExceeded.Error()},
			{commands.ErrPastGame, http.StatusUnprocessableEntity, commands.ErrPastGame.Error()},
			{commands.ErrGameClosed, http.StatusUnprocessableEntity, commands.ErrGameClosed.Error()},
			{errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.msg, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.code, tc.msg)
			})
		}
	})

	s.Run("error: malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, []byte("{"), map[string]string{"Content-Type": "application/json"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckout() {
	url := "/games/2030-06-14-riverside/checkout"
	reqBody := builder.NewReservationBuilder().BuildRequestDTO()

	s.Run("success: returns the redirect", func() {
		s.mockCommands.EXPECT().InitiateCheckout(gomock.Any(), gomock.Any()).
			Return(&commands.CheckoutResult{
				ConfirmationCode: "PKP-AAAA2222",
				SessionID:        "cs_test_1",
				RedirectURL:      "https://checkout.stripe.test/pay/cs_test_1",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("PKP-AAAA2222", body.ConfirmationCode)
		s.Equal("cs_test_1", body.SessionID)
		s.Contains(body.RedirectURL, "cs_test_1")
	})

	s.Run("error: provider failure is 502", func() {
		s.mockCommands.EXPECT().InitiateCheckout(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrPaymentProvider).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, commands.ErrPaymentProvider.Error())
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	url := "/reservations/cancel"
	reqBody := map[string]any{"confirmation_code": "PKP-7KQ2MZXA", "email": "alex@example.com"}

	s.Run("success: reports refund eligibility", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), commands.CancelRequest{Code: "PKP-7KQ2MZXA", Email: "alex@example.com"}).
			Return(&commands.CancelResult{ConfirmationCode: "PKP-7KQ2MZXA", RefundEligible: ptr.Of(true)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
		s.Require().NotNil(body.RefundEligible)
		s.True(*body.RefundEligible)
	})

	s.Run("success: cash cancellation omits eligibility", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any()).
			Return(&commands.CancelResult{ConfirmationCode: "PKP-7KQ2MZXA"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusOK, rec.Code)
		s.NotContains(rec.Body.String(), "refund_eligible")
	})

	s.Run("error: unknown code and wrong email look the same", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrReservationNotFound).Times(2)

		first := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		second := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"confirmation_code": "PKP-ZZZZZZZZ", "email": "alex@example.com"}, "")

		s.Equal(http.StatusNotFound, first.Code)
		s.Equal(first.Code, second.Code)
		s.JSONEq(first.Body.String(), second.Body.String())
	})

	s.Run("error: already cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrAlreadyCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.ErrAlreadyCancelled.Error())
	})

	s.Run("error: missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "alex@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestLookup
// ================================================================================

func (s *BookingHandlerTestSuite) TestLookup() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().Lookup(gomock.Any(), "PKP-7KQ2MZXA", "alex@example.com").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/PKP-7KQ2MZXA?email=alex@example.com", nil, "")

		var body queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ConfirmationCode, body.ConfirmationCode)
		s.Equal(view.TotalPlayers, body.TotalPlayers)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().Lookup(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/PKP-7KQ2MZXA?email=x@example.com", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestJoinWaitlist
// ================================================================================

func (s *BookingHandlerTestSuite) TestJoinWaitlist() {
	url := "/games/2030-06-14-riverside/waitlist"
	reqBody := map[string]any{"name": "Riley", "email": "riley@example.com", "phone": "555", "language": "es"}

	s.Run("success: returns the position", func() {
		s.mockWaitlist.EXPECT().
			Join(gomock.Any(), commands.JoinWaitlistRequest{
				GameID:   "2030-06-14-riverside",
				Name:     "Riley",
				Email:    "riley@example.com",
				Phone:    "555",
				Language: "es",
			}).
			Return(&commands.JoinWaitlistResult{Position: 3}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.WaitlistResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(3, body.Position)
	})

	s.Run("error: conflicts", func() {
		for _, err := range []error{commands.ErrAlreadyWaitlisted, commands.ErrAlreadyReserved} {
			s.mockWaitlist.EXPECT().Join(gomock.Any(), gomock.Any()).Return(nil, err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, err.Error())
		}
	})
}
