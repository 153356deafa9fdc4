package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrTooManyAttempts     = errors.New("too many attempts")
	ErrInternalServerError = errors.New("internal server error")
)
