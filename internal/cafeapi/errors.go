package cafeapi

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusSessionExpired is the non-standard status code the cafe API uses
// for expired tokens.
const StatusSessionExpired = 419

// AuthReason classifies why the API rejected a credential.
type AuthReason string

const (
	AuthReasonInvalid AuthReason = "invalid"
	AuthReasonExpired AuthReason = "expired"
)

// AuthError is raised when the API rejects a request as unauthenticated
// (401) or session-expired (419). It is distinct from domain errors: the
// caller is expected to clear the session and send the user back to the
// login page.
type AuthError struct {
	Reason AuthReason
}

func (e *AuthError) Error() string {
	if e.Reason == AuthReasonExpired {
		return "Your session has expired. Please log in again."
	}
	return "Your session is invalid. Please log in again."
}

// CheckAuth inspects a response status code and returns a classified auth
// error for 401 and 419. Any other status is a no-op; interpreting
// success and domain failure codes is each call site's responsibility.
func CheckAuth(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return &AuthError{Reason: AuthReasonInvalid}
	case StatusSessionExpired:
		return &AuthError{Reason: AuthReasonExpired}
	}
	return nil
}

// IsAuthError reports whether err (or anything it wraps) is a classified
// auth error.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// NotFoundError reports a missing resource, carrying the identifier the
// caller asked for so views can echo it back.
type NotFoundError struct {
	Kind string // "cafe", "post", "user"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s with ID %q was found", e.Kind, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Domain errors surfaced by specific endpoints. Each maps to exactly one
// upstream status code documented on the client method that returns it.
var (
	ErrNotOwner           = errors.New("you are not the cafe owner")
	ErrNotMember          = errors.New("you are not a member of this cafe")
	ErrNotAuthor          = errors.New("you are not the author")
	ErrUsernameTaken      = errors.New("that username is already taken")
	ErrWrongPassword      = errors.New("the password does not match")
	ErrCredentialMismatch = errors.New("username or password does not match")

	// ErrServer is the catch-all for 500s and unexpected status codes.
	ErrServer = errors.New("the server reported an error")
)

// serverError maps an unexpected status to the generic server error,
// keeping the status visible for logs.
func serverError(status int) error {
	if status == http.StatusInternalServerError {
		return ErrServer
	}
	return fmt.Errorf("%w (status %d)", ErrServer, status)
}
