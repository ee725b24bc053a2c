// Package errors provides the closed set of failure kinds surfaced by chart computation.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can branch without string matching.
type Kind int

const (
	// KindInput means the caller's request was malformed or incomplete.
	KindInput Kind = iota + 1
	// KindUpstream means an external collaborator (ephemeris, geocoder, advisor) failed.
	KindUpstream
	// KindInternal means a value outside a closed enumeration reached the core.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindUpstream:
		return "upstream"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by Error values for finer branching.
var (
	ErrCityNotFound       = errors.New("city not found")
	ErrLocationRequired   = errors.New("need city or lat/lon")
	ErrAdvisorUnavailable = errors.New("advisory service unavailable")
)

// Error is the single error type produced by the chart packages.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error [%s]: %s: %v", e.Kind, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error [%s]: %s", e.Kind, e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Input builds a KindInput error.
func Input(op, message string, err error) *Error {
	return &Error{Kind: KindInput, Op: op, Message: message, Err: err}
}

// Upstream builds a KindUpstream error.
func Upstream(op, message string, err error) *Error {
	return &Error{Kind: KindUpstream, Op: op, Message: message, Err: err}
}

// Internal builds a KindInternal error.
func Internal(op, message string, err error) *Error {
	return &Error{Kind: KindInternal, Op: op, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal
// when err carries no classification.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err has the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
