package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTooManyAttempts is returned by PinService.Verify while the owner
	// is locked out after consecutive failed verifications.
	ErrTooManyAttempts = errors.New("too many failed pin attempts")
)
