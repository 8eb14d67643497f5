package clients

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNetwork  = errors.New("upstream unreachable")
	ErrNotFound = errors.New("upstream resource not found")
	ErrRejected = errors.New("upstream rejected request")
	ErrServer   = errors.New("upstream server error")
	ErrDecode   = errors.New("upstream response malformed")
)

// UpstreamError describes a failed upstream call. Kind is one of the
// package sentinels, so callers branch with errors.Is.
type UpstreamError struct {
	Service    string
	Op         string
	Kind       error
	StatusCode int
	Detail     string
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Service, e.Op, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Is(target error) bool { return target == e.Kind }

func (e *UpstreamError) Unwrap() error { return e.Err }

func kindForStatus(code int) error {
	switch {
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return ErrServer
	default:
		return ErrRejected
	}
}
