// Package apperr holds the ledger error taxonomy. Every error surfaced by the
// usecases carries exactly one Kind so callers can match it with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation: malformed or out-of-range input, nothing was written.
	ErrValidation = errors.New("validation error")
	// ErrNotFound: a referenced customer/account/loan/CDP does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConstraint: duplicate national ID, duplicate currency account,
	// currency mismatch between parties, closed loan.
	ErrConstraint = errors.New("constraint violation")
	// ErrInsufficientFunds: the debited account cannot cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrPersistence: the store rejected a read or write.
	ErrPersistence = errors.New("persistence error")
	// ErrConsistency: a compensating step failed, the ledger may be out of balance.
	ErrConsistency = errors.New("ledger consistency error")
)

// Error is a classified failure with a human-readable reason.
type Error struct {
	Kind   error
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newf(kind error, cause error, format string, args ...any) error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...), Err: cause}
}

func Validation(format string, args ...any) error {
	return newf(ErrValidation, nil, format, args...)
}

func NotFound(format string, args ...any) error {
	return newf(ErrNotFound, nil, format, args...)
}

func Constraint(format string, args ...any) error {
	return newf(ErrConstraint, nil, format, args...)
}

func InsufficientFunds(format string, args ...any) error {
	return newf(ErrInsufficientFunds, nil, format, args...)
}

// Persistence wraps a store failure. Already classified errors pass through.
func Persistence(err error, format string, args ...any) error {
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return newf(ErrPersistence, err, format, args...)
}

// Consistency reports that undoing a failed operation itself failed.
// Both the original cause and the undo failure stay reachable via errors.Is.
func Consistency(cause, undoErr error) error {
	return &Error{
		Kind:   ErrConsistency,
		Reason: "compensation failed, ledger may be out of balance",
		Err:    errors.Join(cause, undoErr),
	}
}

// KindOf returns the sentinel kind of err, or nil when err is unclassified.
// Consistency wins over any kind carried by the wrapped cause.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range []error{ErrConsistency, ErrValidation, ErrNotFound, ErrConstraint, ErrInsufficientFunds, ErrPersistence} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// Reason returns the human-readable part of a classified error.
func Reason(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Reason
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
