package services

import (
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/order"
)

const (
	msgInvalidStatus     = "Invalid or missing orderStatus"
	msgUnsupportedStatus = "Unsupported status \"%s\""
	msgBackwards         = "Status cannot move backwards"
	msgUnchanged         = "Status unchanged"
	msgRoleDenied        = "Status not allowed for your role"
	msgUpdated           = "Order status updated"
	msgNotDelivered      = "Order must be Delivered before it can be marked as Received"
	msgAcknowledged      = "Order receipt acknowledged"
	msgDeliveredCancel   = "Delivered orders cannot be canceled"
	msgAlreadyCanceled   = "Order already canceled"
	msgCanceled          = "Order canceled"
)

// permissions lists the targets each role may request. Roles without an entry may request nothing.
var permissions = map[order.Role]map[order.Target]bool{
	order.RoleCustomer: {
		order.TargetCanceled: true,
		order.TargetReceived: true,
	},
	order.RoleRestaurantOwner: {
		order.TargetProcessing: true,
		order.TargetReady:      true,
		order.TargetInRoute:    true,
		order.TargetDelivered:  true,
		order.TargetCanceled:   true,
	},
}

// StatusEngine decides status change requests.
//
// Rules, applied in order:
//   - empty request: 400
//   - request that is not a known status or synonym: 400
//   - forward-sequence target: backwards is 409, same position is a no-op, forward needs role
//     permission (403 otherwise). From a status outside the sequence, such as Canceled, a
//     permitted forward target is accepted without comparison.
//   - Received: customers only (403); requires Delivered (409); acknowledged, never stored
//   - Canceled: Delivered orders give 409; Canceled orders give a no-op; otherwise stored
//
// The backwards check runs before the role check, so a backwards request is 409 even for a
// role that could not make it anyway.
type StatusEngine struct{}

func NewStatusEngine() StatusEngine {
	return StatusEngine{}
}

// Evaluate decides a request where both statuses arrive as text, e.g. straight from storage
// or a request body. current goes through the same synonym table as requested.
func (e StatusEngine) Evaluate(current, requested string, role order.Role) order.Decision {
	return e.Decide(order.ParseStatus(current), requested, role)
}

// Decide decides a request against a stored status.
func (e StatusEngine) Decide(current order.Status, requested string, role order.Role) order.Decision {
	if strings.TrimSpace(requested) == "" {
		return order.NewRejection(order.InvalidRequest, msgInvalidStatus)
	}

	target := order.ParseTarget(requested)
	if !target.IsRecognized() {
		return order.NewRejection(order.InvalidRequest, fmt.Sprintf(msgUnsupportedStatus, requested))
	}

	switch target {
	case order.TargetReceived:
		return e.acknowledge(current, role)
	case order.TargetCanceled:
		return e.cancel(current, role)
	default:
		return e.advance(current, target, role)
	}
}

func (e StatusEngine) advance(current order.Status, target order.Target, role order.Role) order.Decision {
	next, _ := target.Status()
	ni, _ := next.SequenceIndex()

	if ci, ok := current.SequenceIndex(); ok {
		if ni < ci {
			return order.NewRejection(order.Conflict, msgBackwards)
		}
		if ni == ci {
			return order.NewUnchanged(current, msgUnchanged)
		}
	}

	if !isAllowed(role, target) {
		return order.NewRejection(order.Forbidden, msgRoleDenied)
	}
	return order.NewTransition(next, msgUpdated)
}

func (e StatusEngine) acknowledge(current order.Status, role order.Role) order.Decision {
	if !isAllowed(role, order.TargetReceived) {
		return order.NewRejection(order.Forbidden, msgRoleDenied)
	}
	if current != order.Delivered {
		return order.NewRejection(order.Conflict, msgNotDelivered)
	}
	return order.NewAcknowledgement(current, msgAcknowledged)
}

func (e StatusEngine) cancel(current order.Status, role order.Role) order.Decision {
	if !isAllowed(role, order.TargetCanceled) {
		return order.NewRejection(order.Forbidden, msgRoleDenied)
	}

	switch current {
	case order.Delivered:
		return order.NewRejection(order.Conflict, msgDeliveredCancel)
	case order.Canceled:
		return order.NewUnchanged(current, msgAlreadyCanceled)
	default:
		return order.NewTransition(order.Canceled, msgCanceled)
	}
}

func isAllowed(role order.Role, target order.Target) bool {
	return permissions[role][target]
}
