package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("crm rejected the request")
	ErrUnauthorized        = errors.New("crm authentication failed")
	ErrNotFound            = errors.New("contact unknown to crm")
	ErrInternalServerError = errors.New("crm internal error")
)
