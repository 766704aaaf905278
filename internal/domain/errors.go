package domain

import (
	"errors"
	"fmt"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationExists   = errors.New("reservation already exists")
	ErrDuplicatePayment    = errors.New("payment already recorded")
)

// pricing
var (
	ErrInvalidDateRange = errors.New("check-out must be at least one night after check-in")
	ErrInvalidQuantity  = errors.New("room quantity must be at least 1")
	ErrNoRooms          = errors.New("stay has no rooms")
	ErrUnknownAddOn     = errors.New("add-on has no configured price")
)

// configuration
var (
	ErrInvalidMultiplier    = errors.New("invalid multiplier")
	ErrInvalidTaxRate       = errors.New("tax rate must be between 0 and 1")
	ErrInvalidPricingConfig = errors.New("invalid pricing config")
	ErrInvalidLoyaltyConfig = errors.New("invalid loyalty config")
)

// discounts and loyalty
var (
	ErrPercentOutOfRange = errors.New("discount percent must be between 0 and 100")
	ErrPercentPrecision  = errors.New("discount percent allows at most 2 decimal places")
	ErrRoleLimitExceeded = errors.New("discount exceeds role limit")
	ErrUnknownRole       = errors.New("unknown role")
	ErrNegativePoints    = errors.New("loyalty points must not be negative")
	ErrNegativeAmount    = errors.New("amount must not be negative")
)

// ledger
var (
	ErrNonPositiveAmount  = errors.New("payment amount must be positive")
	ErrUnknownPaymentKind = errors.New("unknown payment kind")
	ErrRefundExceedsPaid  = errors.New("refund exceeds amount paid")
)

// lifecycle
var (
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrOutstandingBalance = errors.New("reservation has an outstanding balance")
	ErrFeedbackPending    = errors.New("feedback has not been submitted")
	ErrAlreadyCheckedIn   = errors.New("reservation can no longer be cancelled")
	ErrFeedbackNotAllowed = errors.New("feedback is only accepted after check-out")
)

var (
	ErrValidation = errors.New("validation error")
	ErrLockBusy   = errors.New("reservation is locked by another operation")
)

// TransitionError reports a rejected status change together with both states.
type TransitionError struct {
	From ReservationStatus
	To   ReservationStatus
	Err  error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s -> %s: %v", e.From, e.To, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

func AsTransitionError(err error) (*TransitionError, bool) {
	var te *TransitionError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
