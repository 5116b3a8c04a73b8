package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request reaches the service
	// layer with required fields missing.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on any login failure. It
	// deliberately collapses "no such user" and "wrong password" into one
	// indistinguishable error so the endpoint cannot be used as an account
	// enumeration oracle.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the normalized error for every token
	// verification failure: malformed token, signature mismatch, wrong
	// issuer, or expiry.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotOwner is returned when an authenticated user requests a data
	// point owned by a different user.
	ErrNotOwner = errors.New("data point belongs to another user")
)
