package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// BookingState is the query tag used to filter booking listings. Unlike
// BookingStatus it is never stored; it is parsed once at the delivery
// boundary and dispatched to a dedicated repository call per variant.
type BookingState int

const (
	StateAll BookingState = iota
	StateCurrent
	StateFuture
	StatePast
	StateWaiting
	StateRejected
	StateApproved
)

// ErrUnsupportedState is returned by ParseBookingState for inputs outside
// the tag set. Callers at the boundary translate it into the stable
// "Unknown state" response message.
var ErrUnsupportedState = errors.New("unsupported booking state")

var bookingStates = map[string]BookingState{
	"ALL":      StateAll,
	"CURRENT":  StateCurrent,
	"FUTURE":   StateFuture,
	"PAST":     StatePast,
	"WAITING":  StateWaiting,
	"REJECTED": StateRejected,
	"APPROVED": StateApproved,
}

// ParseBookingState parses a query-string tag. The empty string defaults
// to ALL.
func ParseBookingState(raw string) (BookingState, error) {
	if raw == "" {
		return StateAll, nil
	}

	state, ok := bookingStates[strings.ToUpper(raw)]
	if !ok {
		return StateAll, errors.Wrap(ErrUnsupportedState, raw)
	}

	return state, nil
}

// Status returns the stored status a status-variant tag filters by.
// It is only meaningful for StateWaiting, StateRejected and StateApproved.
func (s BookingState) Status() BookingStatus {
	switch s {
	case StateWaiting:
		return StatusWaiting
	case StateRejected:
		return StatusRejected
	case StateApproved:
		return StatusApproved
	default:
		return ""
	}
}

func (s BookingState) String() string {
	for name, state := range bookingStates {
		if state == s {
			return name
		}
	}

	return "ALL"
}
