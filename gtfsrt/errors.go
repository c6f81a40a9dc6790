package gtfsrt

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
)

var (
	// ErrUpstreamFetch matches every *FetchError
	ErrUpstreamFetch = errors.New("upstream fetch failed")
	// ErrDecode matches every *DecodeError
	ErrDecode = errors.New("decode failed")
)

// FetchError reports an unreachable source or a non-200 upstream status.
// StatusCode is zero when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrUpstreamFetch }

// DecodeError carries the protobuf parse diagnostic for a rejected payload
type DecodeError struct {
	Message protoreflect.FullName
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Message, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
