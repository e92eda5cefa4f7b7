package adapter

import "errors"

var (
	ErrUnknownTransport = errors.New("unknown mail transport")

	ErrBadRequest          = errors.New("mail api: bad request")
	ErrUnauthorized        = errors.New("mail api: unauthorized")
	ErrForbidden           = errors.New("mail api: forbidden")
	ErrNotFound            = errors.New("mail api: not found")
	ErrTooManyRequests     = errors.New("mail api: rate limited")
	ErrInternalServerError = errors.New("mail api: internal server error")
	ErrBadGateway          = errors.New("mail api: bad gateway")
	ErrServiceUnavailable  = errors.New("mail api: service unavailable")
)
