package httperr

import (
	"log/slog"
	"net/http"

	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/usecase/commands"
	"pickup-rsvp/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type mapping struct {
	target error
	status int
	// detail shows the marked cause instead of the sentinel. Only for
	// sentinels whose causes are domain rule messages.
	detail bool
}

// Order matters: the first matching sentinel wins.
var mappings = []mapping{
	{target: commands.ErrValidation, status: http.StatusBadRequest, detail: true},
	{commands.ErrSignature, http.StatusBadRequest},

	{commands.ErrGameNotFound, http.StatusNotFound},
	{queries.ErrGameNotFound, http.StatusNotFound},
	{commands.ErrReservationNotFound, http.StatusNotFound},
	{queries.ErrReservationNotFound, http.StatusNotFound},
	{queries.ErrOperatorNotFound, http.StatusNotFound},

	{commands.ErrDuplicateBooking, http.StatusConflict},
	{commands.ErrCapacityExceeded, http.StatusConflict},
	{commands.ErrAlreadyCancelled, http.StatusConflict},
	{commands.ErrAlreadyWaitlisted, http.StatusConflict},
	{commands.ErrAlreadyReserved, http.StatusConflict},
	{commands.ErrGameExists, http.StatusConflict},
	{commands.ErrCapacityBelowBooked, http.StatusConflict},
	{commands.ErrInvalidTransition, http.StatusConflict},
	{commands.ErrNotRefundable, http.StatusConflict},

	{commands.ErrPastGame, http.StatusUnprocessableEntity},
	{commands.ErrGameClosed, http.StatusUnprocessableEntity},

	{commands.ErrInvalidCredentials, http.StatusUnauthorized},
	{commands.ErrOperatorInactive, http.StatusForbidden},
	{queries.ErrOperatorInactive, http.StatusForbidden},

	{commands.ErrPaymentProvider, http.StatusBadGateway},
}

// StatusOf returns the HTTP status for a usecase error and the message that is
// safe to show the caller. Unknown errors become a generic 500.
func StatusOf(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			if m.detail {
				return m.status, err.Error()
			}
			return m.status, m.target.Error()
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Abort maps err with StatusOf and aborts the request.
func Abort(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"status", status,
			"error", err.Error())
	}
	AbortWithError(c, status, err, msg)
}
