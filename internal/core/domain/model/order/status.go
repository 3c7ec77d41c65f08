package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status is the persisted state of an order.
//
//	Placed ──> Processing ──> Ready ──> In Route ──> Delivered
//	   │            │           │          │
//	   └────────────┴───────────┴──────────┴──> Canceled
//
// The integer values are stored in the orders table, so existing constants must keep
// their values.
type Status int

const (
	// Unknown is the zero value and never a valid stored status.
	Unknown Status = iota
	Placed
	Processing
	Ready
	InRoute
	Delivered
	Canceled
)

// forwardSequence is the only order in which in-progress statuses may advance.
var forwardSequence = [...]Status{Placed, Processing, Ready, InRoute, Delivered}

var statusNames = map[Status]string{
	Unknown:    "Unknown",
	Placed:     "Placed",
	Processing: "Processing",
	Ready:      "Ready",
	InRoute:    "In Route",
	Delivered:  "Delivered",
	Canceled:   "Canceled",
}

// ForwardSequence returns a copy of the forward sequence, Placed first.
func ForwardSequence() []Status {
	out := make([]Status, len(forwardSequence))
	copy(out, forwardSequence[:])
	return out
}

// ParseStatus normalizes s through the synonym table. Anything that is not a
// storable status, including "Received", yields Unknown.
func ParseStatus(s string) Status {
	status, ok := ParseTarget(s).Status()
	if !ok {
		return Unknown
	}
	return status
}

// String returns the display name, e.g. "In Route". Invalid values render as "Unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// Validate reports whether s may be persisted.
func (s Status) Validate() error {
	if s == Canceled {
		return nil
	}
	if _, ok := s.SequenceIndex(); ok {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
}

// SequenceIndex returns the position of s in the forward sequence.
// Canceled and invalid statuses report false.
func (s Status) SequenceIndex() (int, bool) {
	for i, step := range forwardSequence {
		if step == s {
			return i, true
		}
	}
	return -1, false
}

// IsTerminal reports whether no further progress is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}
