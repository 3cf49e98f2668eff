package api

import (
	"log/slog"
	"net/http"

	resdto "pickup-rsvp/internal/handler/dto/response"
	"pickup-rsvp/internal/handler/httperr"
	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	maxWebhookBodyBytes   = 64 << 10
)

type WebhookHandler struct {
	cmds commands.BookingCommands
}

func NewWebhookHandler(cmds commands.BookingCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Stripe webhook
// @Description Finalizes paid checkouts. Duplicates and irrelevant events are acknowledged with 200
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/v1/webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	payload, err := c.GetRawData()
	if err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	result, err := h.cmds.HandlePaymentWebhook(c.Request.Context(), payload, c.GetHeader(stripeSignatureHeader))
	if err != nil {
		if errs.Is(err, commands.ErrSignature) {
			slog.Warn("webhook rejected", "client_ip", c.ClientIP(), "error", err.Error())
			httperr.AbortWithError(c, http.StatusBadRequest, err, commands.ErrSignature.Error())
			return
		}
		// Anything else is transient. A 500 makes the provider redeliver.
		slog.Error("webhook processing failed", "error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.WebhookResponse{Received: true, Outcome: string(result.Outcome)})
}
