package lifecycle

import (
	"fmt"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

type rule int

const (
	illegal rule = iota
	allow
	requireSettled
	requireFeedback
	tooLateToCancel
)

// table lists every allowed or specially rejected move. Missing pairs are illegal.
var table = map[domain.ReservationStatus]map[domain.ReservationStatus]rule{
	domain.StatusBooked: {
		domain.StatusConfirmed: allow,
		domain.StatusCancelled: allow,
	},
	domain.StatusConfirmed: {
		domain.StatusCheckedIn: allow,
		domain.StatusCancelled: allow,
	},
	domain.StatusCheckedIn: {
		domain.StatusCheckedOut: requireSettled,
		domain.StatusCancelled:  allow,
	},
	domain.StatusCheckedOut: {
		domain.StatusCompleted: requireFeedback,
		domain.StatusCancelled: tooLateToCancel,
	},
	domain.StatusCompleted: {
		domain.StatusCancelled: tooLateToCancel,
	},
	domain.StatusCancelled: {},
}

// Facts is the snapshot a transition is judged against.
type Facts struct {
	Balance           decimal.Decimal
	FeedbackSubmitted bool
	Override          bool
}

type Policy struct {
	// RequireFeedback gates CHECKED_OUT -> COMPLETED on submitted feedback
	// unless the operator overrides.
	RequireFeedback bool
}

func DefaultPolicy() Policy {
	return Policy{RequireFeedback: true}
}

// Attempt returns the new status or a *domain.TransitionError.
func (p Policy) Attempt(current, requested domain.ReservationStatus, f Facts) (domain.ReservationStatus, error) {
	reject := func(err error) (domain.ReservationStatus, error) {
		return current, &domain.TransitionError{From: current, To: requested, Err: err}
	}

	switch table[current][requested] {
	case allow:
		return requested, nil
	case requireSettled:
		if f.Balance.IsPositive() {
			return reject(fmt.Errorf("%w: %s due", domain.ErrOutstandingBalance, f.Balance.StringFixed(2)))
		}
		return requested, nil
	case requireFeedback:
		if p.RequireFeedback && !f.FeedbackSubmitted && !f.Override {
			return reject(domain.ErrFeedbackPending)
		}
		return requested, nil
	case tooLateToCancel:
		return reject(domain.ErrAlreadyCheckedIn)
	default:
		return reject(domain.ErrIllegalTransition)
	}
}

// Attempt applies DefaultPolicy.
func Attempt(current, requested domain.ReservationStatus, f Facts) (domain.ReservationStatus, error) {
	return DefaultPolicy().Attempt(current, requested, f)
}

// Next lists the statuses reachable from current, ignoring guards.
func Next(current domain.ReservationStatus) []domain.ReservationStatus {
	var out []domain.ReservationStatus
	for _, s := range domain.Statuses {
		switch table[current][s] {
		case allow, requireSettled, requireFeedback:
			out = append(out, s)
		}
	}
	return out
}
