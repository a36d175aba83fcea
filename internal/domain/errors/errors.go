package errors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrUpstream          = errors.New("upstream error")
	ErrUpstreamTimeout   = errors.New("upstream timeout")
	ErrPersistence       = errors.New("persistence error")
)

// UpstreamError describes a failed call to a downstream service.
//
// Passthrough marks a rejection of a single entity call (read, create,
// update or delete of one resource) whose 4xx may be shown to the caller.
// Rejections of lists and summaries are never passed through.
type UpstreamError struct {
	Service     string
	StatusCode  int
	Body        string
	Timeout     bool
	Passthrough bool
	Err         error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("%s: timed out: %v", e.Service, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: responded with status %d", e.Service, e.StatusCode)
	default:
		return fmt.Sprintf("%s: %v", e.Service, e.Err)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is matches ErrUpstream for every upstream failure and ErrUpstreamTimeout for timeouts.
func (e *UpstreamError) Is(target error) bool {
	switch target {
	case ErrUpstream:
		return true
	case ErrUpstreamTimeout:
		return e.Timeout
	}
	return false
}

// ClientStatus reports the downstream 4xx status of a passthrough rejection.
func (e *UpstreamError) ClientStatus() (int, bool) {
	if e.Passthrough && e.StatusCode >= 400 && e.StatusCode < 500 {
		return e.StatusCode, true
	}
	return 0, false
}
