// Package rabbitmq hands push notifications to the delivery service over an AMQP topic
// exchange. The delivery service resolves device tokens and talks to the push provider.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker/v2"
)

const (
	// CustomerRoutingKeyPrefix prefixes the routing key of direct customer pushes,
	// followed by the customer id.
	CustomerRoutingKeyPrefix = "push.customer."

	// TopicRoutingKeyPrefix prefixes the routing key of topic broadcasts, followed by
	// the topic name.
	TopicRoutingKeyPrefix = "push.topic."

	publishTimeout = 5 * time.Second
)

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// pushMessage is the JSON body consumed by the push delivery service. Data mirrors the
// payload the mobile apps expect next to the visible notification.
type pushMessage struct {
	RecipientID string            `json:"recipientId,omitempty"`
	Topic       string            `json:"topic,omitempty"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data"`
}

// NotificationPublisher implements ports.NotificationPublisher. Publishing goes through a
// circuit breaker so a broker outage fails relay batches fast instead of blocking on
// every event; undelivered events stay in the outbox.
type NotificationPublisher struct {
	ch       Channel
	exchange string
	breaker  *gobreaker.CircuitBreaker[struct{}]
	logger   *slog.Logger
}

// NewNotificationPublisher declares the durable topic exchange and returns a publisher
// bound to it.
func NewNotificationPublisher(ch Channel, exchange string, logger *slog.Logger) (*NotificationPublisher, error) {
	if ch == nil {
		return nil, errs.NewValueIsRequiredError("channel")
	}
	if exchange == "" {
		return nil, errs.NewValueIsRequiredError("exchange")
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "NotificationPublisher")

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "notifications",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &NotificationPublisher{
		ch:       ch,
		exchange: exchange,
		breaker:  breaker,
		logger:   logger,
	}, nil
}

func (p *NotificationPublisher) NotifyCustomer(ctx context.Context, n ports.Notification) error {
	if err := n.RecipientID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("recipientId", err)
	}

	return p.publish(ctx, CustomerRoutingKeyPrefix+n.RecipientID.String(), pushMessage{
		RecipientID: n.RecipientID.String(),
		Title:       n.Title,
		Body:        n.Body,
		Data:        data(n),
	})
}

func (p *NotificationPublisher) BroadcastTopic(ctx context.Context, topic string, n ports.Notification) error {
	if topic == "" {
		return errs.NewValueIsRequiredError("topic")
	}

	return p.publish(ctx, TopicRoutingKeyPrefix+topic, pushMessage{
		Topic: topic,
		Title: n.Title,
		Body:  n.Body,
		Data:  data(n),
	})
}

func (p *NotificationPublisher) publish(ctx context.Context, key string, msg pushMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	_, err = p.breaker.Execute(func() (struct{}, error) {
		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()

		return struct{}{}, p.ch.PublishWithContext(pubCtx, p.exchange, key, false, false, amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    time.Now().UTC(),
			Body:         body,
		})
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			p.logger.Debug("publish skipped", "routing_key", key, "error", err)
		}
		return fmt.Errorf("publish %s: %w", key, err)
	}

	return nil
}

func data(n ports.Notification) map[string]string {
	return map[string]string{
		"orderId":     n.OrderID.String(),
		"messageType": n.MessageType,
		"status":      n.Status.String(),
	}
}
