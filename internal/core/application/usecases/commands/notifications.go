package commands

import (
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// DriversTopic is the broadcast topic drivers subscribe to for orders awaiting pick-up.
const DriversTopic = "drivers"

const orderMessageType = "order"

type pushMessage struct {
	title string
	body  string
}

// pushMessages holds the customer push per stored status. Placed has none.
var pushMessages = map[order.Status]pushMessage{
	order.Processing: {
		title: "Order Accepted and Preparing",
		body:  "Your order is being prepared and will be ready soon",
	},
	order.Ready: {
		title: "Order Awaits Pick Up",
		body:  "Your order prepared and is waiting to be picked up",
	},
	order.InRoute: {
		title: "Order Picked Up and Out for Delivery",
		body:  "Your order has been picked up and now getting delivered.",
	},
	order.Delivered: {
		title: "Food Delivered",
		body:  "Thank you for ordering from us! Your order has been successfully delivered.",
	},
	order.Canceled: {
		title: "Order Cancelled",
		body:  "Your order has been cancelled. Contact the restaurant for more information",
	},
}

// CustomerNotification builds the customer push for a status change.
// It reports false for statuses that notify nobody.
func CustomerNotification(event order.StatusChanged) (ports.Notification, bool) {
	msg, ok := pushMessages[event.Status]
	if !ok {
		return ports.Notification{}, false
	}

	return ports.Notification{
		OrderID:     event.OrderID,
		RecipientID: event.CustomerID,
		Status:      event.Status,
		Title:       msg.title,
		Body:        msg.body,
		MessageType: orderMessageType,
	}, true
}

// BroadcastsToDrivers reports whether the status is announced on DriversTopic.
func BroadcastsToDrivers(status order.Status) bool {
	return status == order.Ready
}
