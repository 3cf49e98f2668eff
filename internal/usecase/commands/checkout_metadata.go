package commands

import (
	"encoding/json"
	"strconv"
	"time"

	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/pkg/errs"
)

// Checkout metadata keys. The payment provider echoes them back on the
// completion event, which is the only way finalize learns what was booked.
const (
	metaCode          = "confirmation_code"
	metaGameID        = "game_id"
	metaHolderName    = "holder_name"
	metaHolderEmail   = "holder_email"
	metaHolderPhone   = "holder_phone"
	metaGuests        = "guests"
	metaWaiverAt      = "waiver_accepted_at"
	metaWaiverIP      = "waiver_ip"
	metaLanguage      = "language"
	metaTotalPlayers  = "total_players"
	metaUnitAmount    = "unit_amount"
	metaUnitCurrency  = "currency"
	metaSchemaVersion = "v"
	schemaVersion     = "1"
)

var ErrInvalidMetadata = errs.New("checkout metadata is missing or malformed")

type checkoutMetadata struct {
	Code       reservation.Code
	Draft      reservation.Draft
	UnitAmount int64
	Currency   string
}

func encodeCheckoutMetadata(code reservation.Code, draft reservation.Draft, unitAmount int64, currency string) (map[string]string, error) {
	guests, err := json.Marshal(draft.Guests.Names())
	if err != nil {
		return nil, errs.Wrap(err, "encode guests")
	}
	return map[string]string{
		metaSchemaVersion: schemaVersion,
		metaCode:          code.String(),
		metaGameID:        draft.GameID,
		metaHolderName:    draft.Contact.Name(),
		metaHolderEmail:   draft.Contact.Email().String(),
		metaHolderPhone:   draft.Contact.Phone(),
		metaGuests:        string(guests),
		metaWaiverAt:      draft.Waiver.AcceptedAt().UTC().Format(time.RFC3339Nano),
		metaWaiverIP:      draft.Waiver.IP(),
		metaLanguage:      draft.Language.String(),
		metaTotalPlayers:  strconv.Itoa(draft.TotalPlayers()),
		metaUnitAmount:    strconv.FormatInt(unitAmount, 10),
		metaUnitCurrency:  currency,
	}, nil
}

// decodeCheckoutMetadata applies the same validation as a fresh request.
func decodeCheckoutMetadata(meta map[string]string) (*checkoutMetadata, error) {
	code := reservation.ReconstructCode(meta[metaCode])
	if code.IsZero() || meta[metaGameID] == "" {
		return nil, ErrInvalidMetadata
	}

	contact, err := reservation.NewContact(meta[metaHolderName], meta[metaHolderEmail], meta[metaHolderPhone])
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidMetadata)
	}

	var names []string
	if raw := meta[metaGuests]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &names); err != nil {
			return nil, errs.Mark(err, ErrInvalidMetadata)
		}
	}
	guests, err := reservation.NewGuests(names)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidMetadata)
	}

	acceptedAt, err := time.Parse(time.RFC3339Nano, meta[metaWaiverAt])
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidMetadata)
	}

	unitAmount, err := strconv.ParseInt(meta[metaUnitAmount], 10, 64)
	if err != nil || unitAmount < 0 {
		return nil, ErrInvalidMetadata
	}

	draft := reservation.Draft{
		GameID:   meta[metaGameID],
		Contact:  contact,
		Guests:   guests,
		Waiver:   reservation.ReconstructWaiver(acceptedAt, meta[metaWaiverIP]),
		Language: reservation.NewLanguage(meta[metaLanguage]),
	}
	if total, err := strconv.Atoi(meta[metaTotalPlayers]); err != nil || total != draft.TotalPlayers() {
		return nil, ErrInvalidMetadata
	}

	return &checkoutMetadata{
		Code:       code,
		Draft:      draft,
		UnitAmount: unitAmount,
		Currency:   meta[metaUnitCurrency],
	}, nil
}
