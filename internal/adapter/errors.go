package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure classes of a single call.
var (
	// ErrTimeout is returned when the client-side deadline expired before a
	// response arrived. The in-flight request is cancelled.
	ErrTimeout = errors.New("request timed out")

	// ErrNetwork is returned when no response was received at all.
	ErrNetwork = errors.New("network error")

	// ErrHTTPStatus is matched by every [*StatusError].
	ErrHTTPStatus = errors.New("unexpected http status")

	// ErrUnauthorized is matched by a [*StatusError] with code 401 or 403.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrRejected is returned when the envelope carries success:false.
	ErrRejected = errors.New("request rejected by server")

	// ErrDecode is returned when the payload does not match the expected
	// schema, including a missing or non-array collection field.
	ErrDecode = errors.New("malformed payload")
)

// StatusError reports a response with a non-2xx status code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.Code)
	}
	return fmt.Sprintf("http %d: %s", e.Code, body)
}

// Is makes errors.Is(err, ErrHTTPStatus) hold for every status error and
// errors.Is(err, ErrUnauthorized) hold for 401 and 403.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrHTTPStatus:
		return true
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
	default:
		return false
	}
}

// IsTransient reports whether err is a timeout or a connection failure,
// as opposed to an answer from the server.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrNetwork)
}
