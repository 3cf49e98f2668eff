//go:build e2e

package admin_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"pickup-rsvp/internal/domain/operator"
	reqdto "pickup-rsvp/internal/handler/dto/request"
	resdto "pickup-rsvp/internal/handler/dto/response"
	"pickup-rsvp/internal/usecase/queries"
	"pickup-rsvp/tests/common/authtest"
	"pickup-rsvp/tests/common/builder"
	"pickup-rsvp/tests/common/dbtest"
	"pickup-rsvp/tests/common/httptest"
	"pickup-rsvp/tests/common/paymenttest"
	"pickup-rsvp/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AdminSuite struct {
	e2e.SharedSuite
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) adminToken() string {
	return authtest.SeedAndLogin(s.T(), s.DB, s.Router, "admin@example.com", operator.RoleAdmin)
}

func (s *AdminSuite) staffToken() string {
	return authtest.SeedAndLogin(s.T(), s.DB, s.Router, "staff@example.com", operator.RoleStaff)
}

// bookOnline pays for a reservation end to end and returns its code.
func (s *AdminSuite) bookOnline(gameID, email, eventID string) string {
	t := s.T()
	t.Helper()

	req := builder.NewReservationBuilder().WithEmail(email).BuildRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/v1/games/"+gameID+"/checkout", req, "")
	var checkout resdto.CheckoutResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &checkout)

	session, ok := s.Gateway.Session(checkout.SessionID)
	require.True(t, ok)
	payload, header := paymenttest.SignedPayload(t, s.Config.Stripe.WebhookSecret, paymenttest.CheckoutEvent{
		EventID:         eventID,
		SessionID:       checkout.SessionID,
		PaymentIntentID: "pi_" + eventID,
		Metadata:        session.Metadata,
	})
	w = httptest.PerformRawRequest(t, s.Router, http.MethodPost, "/api/v1/webhooks/stripe", payload,
		map[string]string{"Stripe-Signature": header})
	var hook resdto.WebhookResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &hook)
	require.Equal(t, "processed", hook.Outcome)

	return checkout.ConfirmationCode
}

func (s *AdminSuite) cancel(code, email string) {
	t := s.T()
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/v1/reservations/cancel",
		reqdto.CancelRequest{ConfirmationCode: code, Email: email}, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
}

func (s *AdminSuite) TestLogin() {
	s.Run("valid credentials return a bearer token", func() {
		dbtest.CreateTestOperator(s.T(), s.DB, "admin@example.com", "admin")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/admin/login",
			reqdto.LoginRequest{Email: "Admin@Example.com", Password: dbtest.TestPassword}, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.NotEmpty(body.AccessToken)
		s.Equal("Bearer", body.TokenType)
		s.Equal("admin", body.Role)
	})

	s.Run("wrong password", func() {
		dbtest.CreateTestOperator(s.T(), s.DB, "admin@example.com", "admin")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/admin/login",
			reqdto.LoginRequest{Email: "admin@example.com", Password: "not-the-password"}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "invalid email or password")
	})

	s.Run("inactive operator", func() {
		id := dbtest.CreateTestOperator(s.T(), s.DB, "gone@example.com", "staff")
		dbtest.DeactivateOperator(s.T(), s.DB, id)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/admin/login",
			reqdto.LoginRequest{Email: "gone@example.com", Password: dbtest.TestPassword}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})

	s.Run("me returns the signed in operator", func() {
		token := s.staffToken()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/v1/admin/me", nil, token)

		var me queries.OperatorView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal("staff@example.com", me.Email)
		s.Equal("staff", me.Role)
		s.NotNil(me.LastLogin)
	})

	s.Run("no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/v1/admin/me", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}

func (s *AdminSuite) TestCreateGame() {
	s.Run("admin publishes a game", func() {
		token := s.adminToken()
		req := builder.NewGameBuilder().WithID("2030-07-01-harbor").WithCapacity(14).BuildCreateRequestDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/admin/games", req, token)

		var view queries.GameView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &view)
		s.Equal("2030-07-01-harbor", view.GameID)
		s.Equal(14, view.SpotsRemaining)
		s.Equal(14, dbtest.SpotsRemaining(s.T(), s.DB, "2030-07-01-harbor"))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/v1/games/2030-07-01-harbor", nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("duplicate id", func() {
		token := s.adminToken()
		dbtest.CreateTestGame(s.T(), s.DB, builder.NewGameBuilder().WithID("taken"))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/admin/games",
			builder.NewGameBuilder().WithID("taken").BuildCreateRequestDTO(), token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "a game with this id already exists")
	})

	s.Run("staff cannot manage games", func() {
		token := s.staffToken()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/admin/games",
			builder.NewGameBuilder().BuildCreateRequestDTO(), token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *AdminSuite) TestUpdateGame() {
	s.Run("raising capacity promotes waiting players", func() {
		token := s.adminToken()
		gameID := dbtest.CreateTestGame(s.T(), s.DB, builder.NewGameBuilder().WithCapacity(10).AsFull())
		for _, email := range []string{"one@example.com", "two@example.com", "three@example.com"} {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/games/"+gameID+"/waitlist",
				reqdto.JoinWaitlistRequest{Name: "Player", Email: email, Phone: "+1 555 0199"}, "")
			httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)
		}

		capacity := 12
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/v1/admin/games/"+gameID,
			reqdto.UpdateGameRequest{Capacity: &capacity}, token)

		var body resdto.UpdateGameResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(2, body.WaitlistPromoted)
		s.Equal(12, body.Game.Capacity)
		s.Equal(2, body.Game.SpotsRemaining)
		s.Equal("open", dbtest.GameStatus(s.T(), s.DB, gameID))
		s.True(dbtest.WaitlistNotified(s.T(), s.DB, gameID, "one@example.com"))
		s.True(dbtest.WaitlistNotified(s.T(), s.DB, gameID, "two@example.com"))
		s.False(dbtest.WaitlistNotified(s.T(), s.DB, gameID, "three@example.com"))
	})

	s.Run("capacity below booked players is refused", func() {
		token := s.adminToken()
		gameID := dbtest.CreateTestGame(s.T(), s.DB, builder.NewGameBuilder().WithCapacity(10).WithSpotsRemaining(10))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/games/"+gameID+"/reservations",
			builder.NewReservationBuilder().WithGuests("Sam", "Jo", "Lee").BuildRequestDTO(), "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)

		capacity := 3
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/v1/admin/games/"+gameID,
			reqdto.UpdateGameRequest{Capacity: &capacity}, token)

		s.Equal(http.StatusConflict, w.Code, w.Body.String())
		s.Equal(6, dbtest.SpotsRemaining(s.T(), s.DB, gameID))
	})

	s.Run("rescheduling keeps the refund decision made at cancel time", func() {
		token := s.adminToken()
		early := dbtest.CreateTestGame(s.T(), s.DB, builder.NewGameBuilder().WithID("2030-08-01-early"))
		late := dbtest.CreateTestGame(s.T(), s.DB, builder.NewGameBuilder().WithID("2030-08-02-late").
			WithStartsAt(time.Now().UTC().Add(12*time.Hour).Truncate(time.Second)))
		earlyCode := s.bookOnline(early, "early@example.com", "evt_reschedule_1")
		lateCode := s.bookOnline(late, "late@example.com", "evt_reschedule_2")
		s.cancel(earlyCode, "early@example.com")
		s.cancel(lateCode, "late@example.com")

		eligible := func(code, email string) *bool {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
				"/api/v1/reservations/"+code+"?email="+email, nil, "")
			var view queries.ReservationView
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
			s.Require().NotNil(view.RefundEligible)
			return view.RefundEligible
		}
		s.True(*eligible(earlyCode, "early@example.com"))
		s.False(*eligible(lateCode, "late@example.com"))

		// Move the early game inside the window and the late one far out of it.
		soon := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
		later := time.Now().UTC().Add(10 * 24 * time.Hour).Truncate(time.Second)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/v1/admin/games/"+early,
			reqdto.UpdateGameRequest{StartsAt: &soon}, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/v1/admin/games/"+late,
			reqdto.UpdateGameRequest{StartsAt: &later}, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		s.True(*eligible(earlyCode, "early@example.com"))
		s.False(*eligible(lateCode, "late@example.com"))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/admin/reservations/"+earlyCode+"/refund", nil, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/admin/reservations/"+lateCode+"/refund", nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "reservation is not eligible for a refund")
	})

	s.Run("unknown game", func() {
		token := s.adminToken()
		venue := "Harbor Field"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/v1/admin/games/nope",
			reqdto.UpdateGameRequest{Venue: &venue}, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "game not found")
	})
}

func (s *AdminSuite) TestRefund() {
	s.Run("eligible online cancel is refunded once", func() {
		token := s.adminToken()
		gameID := dbtest.CreateTestGame(s.T(), s.DB, builder.NewGameBuilder())
		code := s.bookOnline(gameID, "payer@example.com", "evt_refund_1")
		s.cancel(code, "payer@example.com")
		before := s.Gateway.RefundCount()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/admin/reservations/"+code+"/refund", nil, token)
		var first resdto.RefundResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)
		s.Equal("refunded", first.PaymentStatus)
		s.NotEmpty(first.RefundID)
		s.False(first.AlreadyRefunded)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/admin/reservations/"+code+"/refund", nil, token)
		var second resdto.RefundResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
		s.True(second.AlreadyRefunded)
		s.Equal(first.RefundID, second.RefundID)

		s.Equal(before+1, s.Gateway.RefundCount())
		_, payment := dbtest.ReservationStatus(s.T(), s.DB, code)
		s.Equal("refunded", payment)
	})

	s.Run("live reservation is not refundable", func() {
		token := s.adminToken()
		gameID := dbtest.CreateTestGame(s.T(), s.DB, builder.NewGameBuilder())
		code := s.bookOnline(gameID, "keeper@example.com", "evt_refund_2")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/admin/reservations/"+code+"/refund", nil, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "reservation is not eligible for a refund")
	})

	s.Run("staff cannot refund", func() {
		token := s.staffToken()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/admin/reservations/PKP-AAAA2222/refund", nil, token)

		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *AdminSuite) TestRosterAndNoShow() {
	s.Run("roster lists holders and the queue", func() {
		token := s.staffToken()
		gameID := dbtest.CreateTestGame(s.T(), s.DB, builder.NewGameBuilder().WithCapacity(4).WithSpotsRemaining(4))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/games/"+gameID+"/reservations",
			builder.NewReservationBuilder().WithGuests("Sam", "Jo", "Lee").BuildRequestDTO(), "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/games/"+gameID+"/waitlist",
			reqdto.JoinWaitlistRequest{Name: "Jordan", Email: "jordan@example.com", Phone: "+1 555 0111"}, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/v1/admin/games/"+gameID+"/roster", nil, token)

		var roster queries.RosterView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &roster)
		s.Require().Len(roster.Reservations, 1)
		s.Equal("alex@example.com", roster.Reservations[0].HolderEmail)
		s.Equal(4, roster.LivePlayers)
		s.Equal(4, roster.CashPlayers)
		s.Require().Len(roster.Waitlist, 1)
		s.Equal(1, roster.Waitlist[0].Position)
	})

	s.Run("no-show only after kickoff", func() {
		token := s.staffToken()
		gameID := dbtest.CreateTestGame(s.T(), s.DB, builder.NewGameBuilder())
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/games/"+gameID+"/reservations",
			builder.NewReservationBuilder().BuildRequestDTO(), "")
		var booked resdto.ReserveResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &booked)
		path := "/api/v1/admin/reservations/" + booked.ConfirmationCode + "/no-show"

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, token)
		s.Equal(http.StatusConflict, w.Code, w.Body.String())

		_, err := s.DB.Exec(context.Background(), "UPDATE games SET starts_at = $1 WHERE game_id = $2",
			time.Now().Add(-time.Hour), gameID)
		s.Require().NoError(err)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, token)
		var body resdto.NoShowResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal("no_show", body.Status)
		status, _ := dbtest.ReservationStatus(s.T(), s.DB, booked.ConfirmationCode)
		s.Equal("no_show", status)
	})
}
