package kitsu

import (
	"errors"
	"fmt"
)

// Kind classifies a failed request.
type Kind int

const (
	// Network is a transport failure, including timeouts.
	Network Kind = iota + 1
	// HTTPStatus is a non-2xx response. Kitsu reports unknown ids this way.
	HTTPStatus
	// Decode is a body that is not the expected JSON:API document.
	Decode
	// Cancelled means the caller gave up on the request. It is not a user-facing error.
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case Network:
		return "network"
	case HTTPStatus:
		return "http_status"
	case Decode:
		return "decode"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// FetchError is returned by every failed request.
type FetchError struct {
	Kind Kind
	// Op is "page" or "one".
	Op string
	// StatusCode is set for HTTPStatus.
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case HTTPStatus:
		if e.Op == opOne {
			return fmt.Sprintf("failed to fetch anime details: status %d", e.StatusCode)
		}
		return fmt.Sprintf("failed to fetch items: status %d", e.StatusCode)
	case Cancelled:
		return "request cancelled"
	default:
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf extracts the kind of err, or 0 when err is not a *FetchError.
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

// IsCancelled reports whether err is a cancelled request.
func IsCancelled(err error) bool {
	return KindOf(err) == Cancelled
}
