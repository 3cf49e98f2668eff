package request

import (
	"pickup-rsvp/internal/usecase/commands"
)

// ReserveRequest is shared by the cash reservation and the checkout endpoints.
type ReserveRequest struct {
	Name           string   `json:"name" binding:"required,max=100"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          string   `json:"phone" binding:"required,max=32"`
	Guests         []string `json:"guests" binding:"omitempty,max=4,dive,required,max=100"`
	WaiverAccepted bool     `json:"waiver_accepted"`
	Language       string   `json:"language"`
}

func (r *ReserveRequest) ToCommand(gameID, requesterIP string) commands.ReserveRequest {
	return commands.ReserveRequest{
		GameID:         gameID,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Guests:         r.Guests,
		WaiverAccepted: r.WaiverAccepted,
		RequesterIP:    requesterIP,
		Language:       r.Language,
	}
}

type CancelRequest struct {
	ConfirmationCode string `json:"confirmation_code" binding:"required"`
	Email            string `json:"email" binding:"required"`
}

func (r *CancelRequest) ToCommand() commands.CancelRequest {
	return commands.CancelRequest{Code: r.ConfirmationCode, Email: r.Email}
}

type JoinWaitlistRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,max=32"`
	Language string `json:"language"`
}

func (r *JoinWaitlistRequest) ToCommand(gameID string) commands.JoinWaitlistRequest {
	return commands.JoinWaitlistRequest{
		GameID:   gameID,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Language: r.Language,
	}
}
