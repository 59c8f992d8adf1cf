package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAuthDisabled is returned unconditionally by sign-in and sign-out
	// when the site runs in static publishing mode. The wording is fixed;
	// the admin UI surfaces it verbatim.
	ErrAuthDisabled = errors.New("authentication is disabled in static publishing mode; deploy with a dynamic backend to enable admin features")
)
