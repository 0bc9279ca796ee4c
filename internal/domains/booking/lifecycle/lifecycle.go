// Package lifecycle holds the booking state machine and the refund policy
// math. Everything here is pure so the rules can be tested without a database.
package lifecycle

import (
	"fmt"
	"lodgy/shared/failure"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Actor identifies who is driving a transition. It is a closed set resolved
// once at the service boundary, so downstream code never re-derives it.
type Actor int

const (
	ActorGuest Actor = iota
	ActorHost
	ActorAdmin
	ActorSystem
)

func (a Actor) Label() string {
	switch a {
	case ActorGuest:
		return "guest"
	case ActorHost:
		return "owner"
	case ActorAdmin:
		return "admin"
	case ActorSystem:
		return "system"
	default:
		return "unknown"
	}
}

func (a Actor) Valid() bool {
	return a >= ActorGuest && a <= ActorSystem
}

var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// ValidateTransition returns a conflict error when the move is not legal from
// the current status.
func ValidateTransition(from, to Status) error {
	if !CanTransition(from, to) {
		return failure.InvalidState(fmt.Sprintf("cannot move booking from %s to %s", from, to))
	}

	return nil
}

// Cancellable reports whether a booking may still be cancelled.
func Cancellable(status Status) bool {
	return CanTransition(status, StatusCancelled)
}
