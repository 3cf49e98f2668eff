//go:build unit

package api_test

import (
	"bytes"
	"net/http"
	"testing"

	"pickup-rsvp/internal/handler/api"
	resdto "pickup-rsvp/internal/handler/dto/response"
	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/usecase/commands"
	"pickup-rsvp/tests/common/httptest"
	commandsmock "pickup-rsvp/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.router.POST("/webhooks/stripe", api.NewWebhookHandler(s.mockCommands).Stripe)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestStripe() {
	url := "/webhooks/stripe"
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	headers := map[string]string{"Stripe-Signature": "t=1,v1=abc", "Content-Type": "application/json"}

	s.Run("success: passes the exact bytes and signature through", func() {
		s.mockCommands.EXPECT().HandlePaymentWebhook(gomock.Any(), payload, "t=1,v1=abc").
			Return(&commands.FinalizeResult{Outcome: commands.FinalizeProcessed, ConfirmationCode: "PKP-AAAA2222"}, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		var body resdto.WebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Received)
		s.Equal("processed", body.Outcome)
	})

	s.Run("success: duplicates are acknowledged", func() {
		s.mockCommands.EXPECT().HandlePaymentWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.FinalizeResult{Outcome: commands.FinalizeDuplicate}, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"duplicate"`)
	})

	s.Run("error: bad signature is 400", func() {
		s.mockCommands.EXPECT().HandlePaymentWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("no valid signature"), commands.ErrSignature)).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, commands.ErrSignature.Error())
	})

	s.Run("error: processing failure is 500 so the provider retries", func() {
		s.mockCommands.EXPECT().HandlePaymentWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: oversized body is rejected before processing", func() {
		big := bytes.Repeat([]byte("a"), 65<<10)
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, big, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
