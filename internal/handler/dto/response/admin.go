package response

import (
	"pickup-rsvp/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"`
	OperatorID  uuid.UUID `json:"operator_id"`
	Role        string    `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   r.ExpiresIn,
		OperatorID:  r.OperatorID,
		Role:        r.Role,
	}
}

type RefundResponse struct {
	ConfirmationCode string `json:"confirmation_code"`
	RefundID         string `json:"refund_id"`
	PaymentStatus    string `json:"payment_status"`
	AlreadyRefunded  bool   `json:"already_refunded"`
}

func FromRefundResult(r *commands.RefundResult) *RefundResponse {
	return &RefundResponse{
		ConfirmationCode: r.ConfirmationCode,
		RefundID:         r.RefundID,
		PaymentStatus:    r.PaymentStatus,
		AlreadyRefunded:  r.AlreadyRefunded,
	}
}

type NoShowResponse struct {
	ConfirmationCode string `json:"confirmation_code"`
	Status           string `json:"status"`
}
