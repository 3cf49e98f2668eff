package request

import (
	"time"

	"pickup-rsvp/internal/usecase/commands"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{Email: r.Email, Password: r.Password}
}

type CreateGameRequest struct {
	GameID          string    `json:"game_id" binding:"required,max=64"`
	StartsAt        time.Time `json:"starts_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,min=1"`
	Venue           string    `json:"venue" binding:"required"`
	Address         string    `json:"address"`
	PriceCents      int64     `json:"price_cents" binding:"min=0"`
	Currency        string    `json:"currency" binding:"required,len=3"`
	Capacity        int       `json:"capacity" binding:"required,min=1"`
	Notes           string    `json:"notes"`
}

func (r *CreateGameRequest) ToCommand() commands.CreateGameRequest {
	return commands.CreateGameRequest{
		GameID:          r.GameID,
		StartsAt:        r.StartsAt,
		DurationMinutes: r.DurationMinutes,
		Venue:           r.Venue,
		Address:         r.Address,
		PriceCents:      r.PriceCents,
		Currency:        r.Currency,
		Capacity:        r.Capacity,
		Notes:           r.Notes,
	}
}

// UpdateGameRequest is a partial update. Omitted fields keep their value.
type UpdateGameRequest struct {
	StartsAt        *time.Time `json:"starts_at"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,min=1"`
	Venue           *string    `json:"venue" binding:"omitempty,min=1"`
	Address         *string    `json:"address"`
	PriceCents      *int64     `json:"price_cents" binding:"omitempty,min=0"`
	Currency        *string    `json:"currency" binding:"omitempty,len=3"`
	Capacity        *int       `json:"capacity" binding:"omitempty,min=1"`
	Status          *string    `json:"status"`
	Notes           *string    `json:"notes"`
}

func (r *UpdateGameRequest) ToCommand() commands.UpdateGameRequest {
	return commands.UpdateGameRequest{
		StartsAt:        r.StartsAt,
		DurationMinutes: r.DurationMinutes,
		Venue:           r.Venue,
		Address:         r.Address,
		PriceCents:      r.PriceCents,
		Currency:        r.Currency,
		Capacity:        r.Capacity,
		Status:          r.Status,
		Notes:           r.Notes,
	}
}
