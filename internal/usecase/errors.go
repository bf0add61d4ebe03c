package usecase

import "errors"

// Sentinel errors the adaptor layer maps to HTTP statuses.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource already exists")
	ErrForbidden    = errors.New("operation not allowed")
	ErrBadRequest   = errors.New("invalid request")
	ErrInvalidCode  = errors.New("confirmation code mismatch")
	ErrCodeDispatch = errors.New("confirmation code could not be delivered")
)
