package api

import (
	"pickup-rsvp/internal/pkg/errs"
)

var (
	errInvalidQuery   = errs.New("invalid query parameter")
	errMissingContext = errs.New("operator missing from request context")
)
