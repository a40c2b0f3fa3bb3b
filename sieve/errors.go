package sieve

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies the error conditions named in spec.md §7.
type Kind int

const (
	// KindConfiguration covers sieveSize out of range, maxPrime/sieveSize
	// mismatch, start > stop, and flag conflicts. Detected synchronously
	// at construction or at Run entry; no segment work is performed.
	KindConfiguration Kind = iota
	// KindArithmeticBound covers a requested stop beyond 2^64-1's
	// expressible range, or arithmetic that would overflow while
	// computing segment boundaries.
	KindArithmeticBound
	// KindCallbackStop is not a failure; it is the cooperative
	// cancellation signal a user callback raises to stop early.
	KindCallbackStop
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration error"
	case KindArithmeticBound:
		return "arithmetic bound error"
	case KindCallbackStop:
		return "callback stop"
	default:
		return "unknown sieve error"
	}
}

// Error is the typed error returned for configuration and arithmetic
// failures. It is wrapped with github.com/pkg/errors so the construction
// call site remains attached to the message.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.Kind.String() + ": " + e.msg + ": " + e.err.Error()
	}
	return e.Kind.String() + ": " + e.msg
}

func (e *Error) Unwrap() error { return e.err }

func newConfigError(format string, args ...interface{}) error {
	return pkgerrors.WithStack(&Error{Kind: KindConfiguration, msg: pkgerrors.Errorf(format, args...).Error()})
}

func newArithmeticBoundError(msg string) error {
	return pkgerrors.WithStack(&Error{Kind: KindArithmeticBound, msg: msg})
}

// Stop is the sentinel error a user callback returns (or the engine
// returns internally) to request early, cooperative termination. It is
// not reported to the caller of Run as a failure: Run returns it to the
// primesieve package, which maps it back to a clean, non-error return
// together with the partial counts accumulated via callback side effects.
var Stop = &Error{Kind: KindCallbackStop, msg: "stopped by callback"}

// IsStop reports whether err is (or wraps) the cooperative-stop sentinel.
func IsStop(err error) bool {
	return errors.Is(err, Stop)
}

func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind && e == other
}
