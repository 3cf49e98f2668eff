package response

import (
	"pickup-rsvp/internal/usecase/commands"
)

type ReserveResponse struct {
	ConfirmationCode string `json:"confirmation_code"`
	TotalPlayers     int    `json:"total_players"`
	TotalAmount      int64  `json:"total_amount"`
	Currency         string `json:"currency"`
	PaymentStatus    string `json:"payment_status"`
	SpotsRemaining   int    `json:"spots_remaining"`
}

func FromReserveResult(r *commands.ReserveResult) *ReserveResponse {
	return &ReserveResponse{
		ConfirmationCode: r.ConfirmationCode,
		TotalPlayers:     r.TotalPlayers,
		TotalAmount:      r.TotalAmount,
		Currency:         r.Currency,
		PaymentStatus:    r.PaymentStatus,
		SpotsRemaining:   r.SpotsRemaining,
	}
}

type CheckoutResponse struct {
	ConfirmationCode string `json:"confirmation_code"`
	SessionID        string `json:"session_id"`
	RedirectURL      string `json:"redirect_url"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		ConfirmationCode: r.ConfirmationCode,
		SessionID:        r.SessionID,
		RedirectURL:      r.RedirectURL,
	}
}

type CancelResponse struct {
	ConfirmationCode string `json:"confirmation_code"`
	Status           string `json:"status"`
	RefundEligible   *bool  `json:"refund_eligible,omitempty"`
}

func FromCancelResult(r *commands.CancelResult) *CancelResponse {
	return &CancelResponse{
		ConfirmationCode: r.ConfirmationCode,
		Status:           "cancelled",
		RefundEligible:   r.RefundEligible,
	}
}

type WaitlistResponse struct {
	Position int `json:"position"`
}

type WebhookResponse struct {
	Received bool   `json:"received"`
	Outcome  string `json:"outcome"`
}
