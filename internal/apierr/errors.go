// Package apierr defines the typed errors the auth service exposes to its
// callers. Each kind carries a stable machine-readable code and the HTTP
// status transports should map it to.
package apierr

import (
	"fmt"
	"net/http"
)

// Error is a typed API error.
type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewErrInvalidEmailFormat reports a malformed registration email.
func NewErrInvalidEmailFormat(email string) *Error {
	return &Error{
		Code:    "invalid_email_format",
		Status:  http.StatusUnprocessableEntity,
		Message: fmt.Sprintf("email %q is not a valid email address", email),
	}
}

// NewErrWeakPassword reports a registration password below the minimum length.
func NewErrWeakPassword(minLength int) *Error {
	return &Error{
		Code:    "weak_password",
		Status:  http.StatusUnprocessableEntity,
		Message: fmt.Sprintf("password must be at least %d characters long", minLength),
	}
}

// NewErrEmailIsTaken reports a registration against an email that already has
// an account.
func NewErrEmailIsTaken(email string) *Error {
	return &Error{
		Code:    "email_already_in_use",
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("email %q is already in use", email),
	}
}

// NewErrInvalidCredentials reports a failed login. It is deliberately the same
// for an unknown email and for a wrong password.
func NewErrInvalidCredentials() *Error {
	return &Error{
		Code:    "invalid_credentials",
		Status:  http.StatusUnauthorized,
		Message: "invalid credentials",
	}
}

// NewErrAccountDisabled reports a login with correct credentials against a
// deactivated account.
func NewErrAccountDisabled() *Error {
	return &Error{
		Code:    "account_disabled",
		Status:  http.StatusForbidden,
		Message: "account is disabled",
	}
}

// NewErrInvalidToken reports any token verification failure: bad signature,
// malformed token, expiry, or a subject that no longer exists.
func NewErrInvalidToken() *Error {
	return &Error{
		Code:    "invalid_token",
		Status:  http.StatusUnauthorized,
		Message: "invalid token",
	}
}

// NewErrMissingAuthorizationToken reports a request to a protected endpoint
// without a bearer token.
func NewErrMissingAuthorizationToken() *Error {
	return &Error{
		Code:    "missing_authorization_token",
		Status:  http.StatusUnauthorized,
		Message: "missing authorization token",
	}
}
