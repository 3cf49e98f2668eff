package commands

import (
	"pickup-rsvp/internal/domain/game"
	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/domain/waitlist"
)

func gameData(g *game.Game) map[string]any {
	s := g.Schedule()
	return map[string]any{
		"game_id":     g.ID().String(),
		"date":        s.Date(),
		"time":        s.TimeOfDay(),
		"day_of_week": s.DayOfWeek().String(),
		"venue":       s.Venue(),
		"address":     s.Address(),
	}
}

func reservationConfirmed(r *reservation.Reservation, g *game.Game) Notification {
	data := gameData(g)
	data["confirmation_code"] = r.Code().String()
	data["holder_name"] = r.Contact().Name()
	data["guests"] = r.Guests().Names()
	data["total_players"] = r.TotalPlayers()
	data["total_amount"] = r.TotalAmount()
	data["currency"] = r.Currency()
	data["payment_method"] = r.PaymentMethod().String()
	data["payment_status"] = r.PaymentStatus().String()
	return Notification{
		Kind:      NotifyReservationConfirmed,
		Recipient: r.Contact().Email().String(),
		Language:  r.Language().String(),
		Data:      data,
	}
}

func reservationCancelled(r *reservation.Reservation, g *game.Game) Notification {
	data := gameData(g)
	data["confirmation_code"] = r.Code().String()
	data["holder_name"] = r.Contact().Name()
	data["payment_method"] = r.PaymentMethod().String()
	if eligible := r.RefundEligible(); eligible != nil {
		data["refund_eligible"] = *eligible
	}
	return Notification{
		Kind:      NotifyReservationCancelled,
		Recipient: r.Contact().Email().String(),
		Language:  r.Language().String(),
		Data:      data,
	}
}

func waitlistSpotOpened(e *waitlist.Entry, g *game.Game) Notification {
	data := gameData(g)
	data["name"] = e.Contact().Name()
	data["spots_remaining"] = g.SpotsRemaining()
	return Notification{
		Kind:      NotifyWaitlistSpotOpened,
		Recipient: e.Contact().Email().String(),
		Language:  e.Language().String(),
		Data:      data,
	}
}

// RefundAlert describes a payment an operator has to look at.
type RefundAlert struct {
	Reason           string
	ConfirmationCode string
	GameID           string
	SessionID        string
	PaymentIntentID  string
	Amount           int64
	Currency         string
}

func operatorRefundAlert(recipient string, a RefundAlert) Notification {
	return Notification{
		Kind:      NotifyOperatorRefundAlert,
		Recipient: recipient,
		Language:  reservation.LanguageEnglish.String(),
		Data: map[string]any{
			"reason":            a.Reason,
			"confirmation_code": a.ConfirmationCode,
			"game_id":           a.GameID,
			"session_id":        a.SessionID,
			"payment_intent_id": a.PaymentIntentID,
			"amount":            a.Amount,
			"currency":          a.Currency,
		},
	}
}
