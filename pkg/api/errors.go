package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized marks any authenticated call the server rejected with 401.
// It is the only error class that forces a session transition; callers
// surface it to the session manager instead of treating it as a plain
// request failure.
var ErrUnauthorized = errors.New("session invalid")

// AuthError is a login rejection: bad credentials or a disabled account.
// The session and credential store are left untouched when it occurs.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	if e.Reason == "" {
		return "authentication failed"
	}
	return e.Reason
}

// ValidationError is a client-detected bad request that never reaches the
// network, such as an empty submission.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StatusError is a non-2xx response not attributable to authentication. It
// is shown inline on whichever view or form issued the call.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server returned status %d", e.Code)
	}
	return e.Detail
}

// IsUnauthorized reports whether err is the session-invalid class.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
