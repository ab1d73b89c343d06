package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidBook        = errors.New("invalid book data")
	ErrMalformedContent   = errors.New("malformed digital content")
	ErrEmptyOrder         = errors.New("order has no items")
)
