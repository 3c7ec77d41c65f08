package order

import "strings"

// Target is what an actor asks the order to become. It is a superset of the storable
// statuses: Received is an acknowledgment by the customer and has no Status.
type Target int

const (
	TargetUnknown Target = iota
	TargetPlaced
	TargetProcessing
	TargetReady
	TargetInRoute
	TargetDelivered
	TargetCanceled
	TargetReceived
)

// synonyms maps trimmed, lower-cased input to its target. Canonical display names
// are listed in lower case so "In Route" and "in route" resolve the same way.
var synonyms = map[string]Target{
	"placed":           TargetPlaced,
	"processing":       TargetProcessing,
	"preparing":        TargetProcessing,
	"ready":            TargetReady,
	"in route":         TargetInRoute,
	"in_route":         TargetInRoute,
	"in-route":         TargetInRoute,
	"out for delivery": TargetInRoute,
	"out_for_delivery": TargetInRoute,
	"out-for-delivery": TargetInRoute,
	"delivered":        TargetDelivered,
	"canceled":         TargetCanceled,
	"cancelled":        TargetCanceled,
	"cancel":           TargetCanceled,
	"received":         TargetReceived,
}

var targetStatuses = map[Target]Status{
	TargetPlaced:     Placed,
	TargetProcessing: Processing,
	TargetReady:      Ready,
	TargetInRoute:    InRoute,
	TargetDelivered:  Delivered,
	TargetCanceled:   Canceled,
}

// ParseTarget resolves raw input through the synonym table. Empty and unmapped
// input return TargetUnknown.
func ParseTarget(raw string) Target {
	if t, ok := synonyms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return t
	}
	return TargetUnknown
}

// TargetFor returns the target that requests status s.
func TargetFor(s Status) Target {
	for t, st := range targetStatuses {
		if st == s {
			return t
		}
	}
	return TargetUnknown
}

// Status returns the storable status for t. Received and Unknown report false.
func (t Target) Status() (Status, bool) {
	s, ok := targetStatuses[t]
	return s, ok
}

// IsRecognized reports whether t is one of the seven supported targets.
func (t Target) IsRecognized() bool {
	return t > TargetUnknown && t <= TargetReceived
}

func (t Target) String() string {
	if t == TargetReceived {
		return "Received"
	}
	if s, ok := t.Status(); ok {
		return s.String()
	}
	return "Unknown"
}
