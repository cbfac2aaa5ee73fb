package apifootball

import (
	stderrors "errors"
	"fmt"
)

// ErrorKind classifies gateway failures. Callers that only want the
// degrade-to-empty contract can treat every kind uniformly; the kind
// exists for logging and tests.
type ErrorKind string

const (
	// ErrorKindConfig: API key missing at call time. No network call
	// was attempted.
	ErrorKindConfig ErrorKind = "config"
	// ErrorKindTransport: connection failure or timeout.
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindUpstream: non-2xx status, or a 2xx envelope whose
	// response field is empty or carries provider errors.
	ErrorKindUpstream ErrorKind = "upstream"
	// ErrorKindDecode: response body is not the JSON shape expected.
	ErrorKindDecode ErrorKind = "decode"
)

// Error is the single error type raised by the client. Every public
// fetcher either succeeds or returns *Error.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("apifootball %s: %s failure", e.Op, e.Kind)
	}
	return fmt.Sprintf("apifootball %s: %s failure: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError unwraps err to the client's error type.
func AsError(err error) (*Error, bool) {
	var gw *Error
	if stderrors.As(err, &gw) {
		return gw, true
	}
	return nil, false
}

func newError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
