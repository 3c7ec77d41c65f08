package order

import "net/http"

// Outcome classifies a Decision.
type Outcome int

const (
	Rejected Outcome = iota
	// Transitioned means the stored status must change to Decision.Next.
	Transitioned
	// Unchanged is an idempotent repeat of the current status.
	Unchanged
	// Acknowledged is a customer receipt; nothing is stored.
	Acknowledged
)

var outcomeNames = map[Outcome]string{
	Rejected:     "Rejected",
	Transitioned: "Transitioned",
	Unchanged:    "Unchanged",
	Acknowledged: "Acknowledged",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "Unknown"
}

// RejectionKind explains a rejected Decision.
type RejectionKind int

const (
	NotRejected RejectionKind = iota
	// InvalidRequest covers missing and unparseable statuses.
	InvalidRequest
	// Forbidden means the role may not request the target.
	Forbidden
	// Conflict means the request breaks forward-only or terminal-state rules.
	Conflict
)

var rejectionCodes = map[RejectionKind]int{
	NotRejected:    http.StatusOK,
	InvalidRequest: http.StatusBadRequest,
	Forbidden:      http.StatusForbidden,
	Conflict:       http.StatusConflict,
}

// Code returns the HTTP status reported for the kind.
func (k RejectionKind) Code() int {
	if code, ok := rejectionCodes[k]; ok {
		return code
	}
	return http.StatusBadRequest
}

// Decision is the verdict on a status change request. It is a plain value: callers
// surface Code and Message verbatim and persist Next only when PersistChange is true.
type Decision struct {
	outcome Outcome
	kind    RejectionKind
	message string
	next    Status
}

// NewTransition accepts a change that must be stored.
func NewTransition(next Status, message string) Decision {
	return Decision{outcome: Transitioned, message: message, next: next}
}

// NewUnchanged accepts a request that leaves current as it is.
func NewUnchanged(current Status, message string) Decision {
	return Decision{outcome: Unchanged, message: message, next: current}
}

// NewAcknowledgement accepts a receipt confirmation for an order in current.
func NewAcknowledgement(current Status, message string) Decision {
	return Decision{outcome: Acknowledged, message: message, next: current}
}

// NewRejection refuses a request. A NotRejected kind is treated as InvalidRequest.
func NewRejection(kind RejectionKind, message string) Decision {
	if kind == NotRejected {
		kind = InvalidRequest
	}
	return Decision{outcome: Rejected, kind: kind, message: message}
}

func (d Decision) Outcome() Outcome {
	return d.outcome
}

func (d Decision) Kind() RejectionKind {
	if d.outcome != Rejected {
		return NotRejected
	}
	return d.kind
}

// OK reports whether the request was accepted.
func (d Decision) OK() bool {
	return d.outcome != Rejected
}

// PersistChange reports whether Next must be written.
func (d Decision) PersistChange() bool {
	return d.outcome == Transitioned
}

// Next returns the status the order holds after the decision. Rejections report Unknown.
func (d Decision) Next() Status {
	return d.next
}

// Code is 200 for accepted decisions and 400, 403 or 409 for rejections.
func (d Decision) Code() int {
	return d.Kind().Code()
}

func (d Decision) Message() string {
	return d.message
}
