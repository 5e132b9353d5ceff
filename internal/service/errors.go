package service

import "errors"

var (
	// ErrInvalidCredentials is returned when the email/password pair does not match a seller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrValidation is returned when a request fails client-side field checks.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when the requested resource does not exist or
	// is not owned by the seller.
	ErrNotFound = errors.New("not found")
)
