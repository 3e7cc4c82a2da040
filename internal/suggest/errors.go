// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a suggestion request produced nothing.
type FailureKind string

const (
	FailureNetwork    FailureKind = "network"
	FailureTimeout    FailureKind = "timeout"
	FailureHTTPStatus FailureKind = "http_status"
	FailureParse      FailureKind = "parse"
)

// Sentinels matched by errors.Is against a *FetchError of the same kind.
var (
	ErrNetwork    = errors.New("network failure")
	ErrTimeout    = errors.New("request timed out")
	ErrHTTPStatus = errors.New("unexpected HTTP status")
	ErrParse      = errors.New("malformed response")
)

// FetchError describes a failed suggestion request.
type FetchError struct {
	Kind    FailureKind
	Service Service
	Query   string

	// StatusCode is set for FailureHTTPStatus.
	StatusCode int

	Err error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FailureHTTPStatus:
		return fmt.Sprintf("%s suggest %q: HTTP %d", e.Service, e.Query, e.StatusCode)
	default:
		return fmt.Sprintf("%s suggest %q: %s: %v", e.Service, e.Query, e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *FetchError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k FailureKind) sentinel() error {
	switch k {
	case FailureNetwork:
		return ErrNetwork
	case FailureTimeout:
		return ErrTimeout
	case FailureHTTPStatus:
		return ErrHTTPStatus
	case FailureParse:
		return ErrParse
	}
	return nil
}

// KindOf returns the failure kind of err, or "" if err is not a *FetchError.
func KindOf(err error) FailureKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
