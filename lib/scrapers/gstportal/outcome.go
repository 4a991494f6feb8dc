package gstportal

import (
	"context"
	"errors"
	"net"
)

var ErrInvalidGstin = errors.New("invalid gstin format")
var ErrExhaustedRetries = errors.New("retries exhausted")

type OutcomeKind int

const (
	OutcomeSucceeded OutcomeKind = iota
	// structurally invalid identifier, no request was made
	OutcomeInvalid
	// every allowed attempt failed with a transient error
	OutcomeExhausted
	// an error outside the anticipated network/parse categories,
	// not retried
	OutcomeUnexpected
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeUnexpected:
		return "unexpected"
	}
	return "unknown"
}

// Outcome is the result of exactly one pipeline invocation.
type Outcome struct {
	Gstin    string
	Kind     OutcomeKind
	Record   *Record
	Attempts int
	Err      error
}

func (o Outcome) OK() bool {
	return o.Kind == OutcomeSucceeded
}

// transient reports whether err warrants another attempt. Transport and
// timeout errors from resty arrive as url.Error values which satisfy
// net.Error, anything else is assumed non-transient.
func transient(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded)
}
