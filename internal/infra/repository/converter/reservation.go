package converter

import (
	"pickup-rsvp/internal/domain/reservation"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/pkg/pgconv"
)

func ReservationToCreateParams(r *reservation.Reservation) sqlc.CreateReservationParams {
	c := r.Contact()
	refs := r.Refs()
	return sqlc.CreateReservationParams{
		ConfirmationCode:      r.Code().String(),
		GameID:                r.GameID(),
		HolderName:            c.Name(),
		HolderEmail:           c.Email().String(),
		HolderPhone:           c.Phone(),
		GuestNames:            r.Guests().Names(),
		TotalPlayers:          pgconv.IntToInt32(r.TotalPlayers()),
		UnitPriceCents:        r.UnitPrice(),
		TotalAmountCents:      r.TotalAmount(),
		Currency:              r.Currency(),
		PaymentMethod:         r.PaymentMethod().String(),
		PaymentStatus:         r.PaymentStatus().String(),
		Status:                r.Status().String(),
		WaiverAcceptedAt:      pgconv.TimeToPgtype(r.Waiver().AcceptedAt()),
		WaiverIp:              r.Waiver().IP(),
		Language:              r.Language().String(),
		StripeSessionID:       pgconv.StringPtrToPgtype(&refs.SessionID),
		StripePaymentIntentID: pgconv.StringPtrToPgtype(&refs.PaymentIntentID),
		CreatedAt:             pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReservationToStateParams(r *reservation.Reservation) sqlc.UpdateReservationStateParams {
	refundID := r.Refs().RefundID
	return sqlc.UpdateReservationStateParams{
		Status:           r.Status().String(),
		PaymentStatus:    r.PaymentStatus().String(),
		RefundEligible:   pgconv.BoolPtrToPgtype(r.RefundEligible()),
		RefundID:         pgconv.StringPtrToPgtype(&refundID),
		CancelledAt:      pgconv.TimePtrToPgtype(r.CancelledAt()),
		UpdatedAt:        pgconv.TimeToPgtype(r.UpdatedAt()),
		ConfirmationCode: r.Code().String(),
	}
}

func ReservationFromRow(row sqlc.Reservations) *reservation.Reservation {
	guests := row.GuestNames
	if guests == nil {
		guests = []string{}
	}
	return reservation.Reconstruct(reservation.Snapshot{
		Code:          reservation.ReconstructCode(row.ConfirmationCode),
		GameID:        row.GameID,
		Contact:       reservation.ReconstructContact(row.HolderName, row.HolderEmail, row.HolderPhone),
		Guests:        reservation.ReconstructGuests(guests),
		TotalPlayers:  int(row.TotalPlayers),
		UnitPrice:     row.UnitPriceCents,
		TotalAmount:   row.TotalAmountCents,
		Currency:      row.Currency,
		PaymentMethod: reservation.PaymentMethod(row.PaymentMethod),
		PaymentStatus: reservation.PaymentStatus(row.PaymentStatus),
		Status:        reservation.Status(row.Status),
		Waiver:        reservation.ReconstructWaiver(pgconv.TimeFromPgtype(row.WaiverAcceptedAt), row.WaiverIp),
		Language:      reservation.NewLanguage(row.Language),
		Refs: reservation.PaymentRefs{
			SessionID:       row.StripeSessionID.String,
			PaymentIntentID: row.StripePaymentIntentID.String,
			RefundID:        row.RefundID.String,
		},
		RefundEligible: pgconv.BoolPtrFromPgtype(row.RefundEligible),
		CancelledAt:    pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
