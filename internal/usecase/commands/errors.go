package commands

import (
	"pickup-rsvp/internal/pkg/errs"
)

// Client-facing failures. Handlers map these to HTTP statuses.
var (
	ErrValidation          = errs.New("validation failed")
	ErrGameNotFound        = errs.New("game not found")
	ErrDuplicateBooking    = errs.New("a reservation already exists for this email")
	ErrCapacityExceeded    = errs.New("not enough spots remaining")
	ErrAlreadyCancelled    = errs.New("reservation is already cancelled")
	ErrPastGame            = errs.New("game has already started")
	ErrGameClosed          = errs.New("game is not accepting bookings")
	ErrAlreadyWaitlisted   = errs.New("already on the waitlist for this game")
	ErrAlreadyReserved     = errs.New("already holding a reservation for this game")
	ErrReservationNotFound = errs.New("reservation not found or email does not match")
	ErrNotRefundable       = errs.New("reservation is not eligible for a refund")
	ErrInvalidTransition   = errs.New("reservation cannot change to that status")
	ErrGameExists          = errs.New("a game with this id already exists")
	ErrCapacityBelowBooked = errs.New("capacity cannot be lower than the number of booked players")
	ErrInvalidCredentials  = errs.New("invalid email or password")
	ErrOperatorInactive    = errs.New("operator account is inactive")
)

var (
	ErrCodeGeneration          = errs.New("could not allocate a unique confirmation code")
	ErrPaymentProvider         = errs.New("payment provider request failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrTokenGeneration         = errs.New("token generation failed")
)
