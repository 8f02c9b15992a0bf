package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrUnknownOption       = errors.New("unknown catalog option")
	ErrIncompleteConfig    = errors.New("configuration incomplete")
	ErrStageLocked         = errors.New("previous wizard stage incomplete")
	ErrVoucherNotUsable    = errors.New("voucher not usable")
	ErrAddressUnresolved   = errors.New("could not validate address")
	ErrShippingUnavailable = errors.New("shipping fee unavailable")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrSuperseded          = errors.New("superseded by a newer request")
)

// ValidationError names the form fields a wizard stage still requires.
type ValidationError struct {
	Stage   string
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("stage %s incomplete: missing %s", e.Stage, strings.Join(e.Missing, ", "))
}

// PartialSubmissionError reports a checkout that created a real backend order
// but failed afterwards; the order exists and was not advanced.
type PartialSubmissionError struct {
	OrderID string
	Err     error
}

func (e *PartialSubmissionError) Error() string {
	return fmt.Sprintf("order %s created but not advanced: %v", e.OrderID, e.Err)
}

func (e *PartialSubmissionError) Unwrap() error { return e.Err }
