package service

import (
	"database/sql"
	"errors"
	"fmt"
)

// Sentinel errors forming the user-facing taxonomy. Services wrap them with
// context via fmt.Errorf("...: %w", ...); the HTTP layer maps them to status
// codes with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrPreconditionFailed  = errors.New("precondition failed")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrVerificationFailed  = errors.New("payment verification failed")
	ErrAlreadyCompleted    = errors.New("payment already completed")
	ErrNoPenaltyApplicable = errors.New("no penalty applicable")
)

// GatewayError wraps an opaque failure from the payment gateway or its
// response mapping. The underlying message is preserved for diagnosis.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway: %v", e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// PaymentError wraps unexpected failures during payment verification,
// preserving the original cause message.
type PaymentError struct {
	Err error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment error: %v", e.Err)
}

func (e *PaymentError) Unwrap() error { return e.Err }

// asNotFound converts a missing-row error into the taxonomy, leaving other
// database errors untouched.
func asNotFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}
