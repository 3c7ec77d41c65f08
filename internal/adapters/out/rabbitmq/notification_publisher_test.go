package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fooddelivery/internal/adapters/out/rabbitmq"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const exchange = "notifications"

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *MockChannel) PublishWithContext(
	ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing,
) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func newPublisher(t *testing.T, ch *MockChannel) *rabbitmq.NotificationPublisher {
	t.Helper()

	ch.On("ExchangeDeclare", exchange, "topic", true, false, false, false, amqp.Table(nil)).Return(nil).Once()
	publisher, err := rabbitmq.NewNotificationPublisher(ch, exchange, nil)
	require.NoError(t, err)
	return publisher
}

func sampleNotification() ports.Notification {
	return ports.Notification{
		OrderID:     kernel.NewUUID(),
		RecipientID: kernel.NewUUID(),
		Status:      order.Ready,
		Title:       "Order Awaits Pick Up",
		Body:        "Your order prepared and is waiting to be picked up",
		MessageType: "order",
	}
}

type published struct {
	RecipientID string            `json:"recipientId"`
	Topic       string            `json:"topic"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data"`
}

func decode(t *testing.T, msg amqp.Publishing) published {
	t.Helper()

	var out published
	require.NoError(t, json.Unmarshal(msg.Body, &out))
	return out
}

func TestNewNotificationPublisher(t *testing.T) {
	t.Run("should declare durable topic exchange", func(t *testing.T) {
		ch := new(MockChannel)

		newPublisher(t, ch)

		ch.AssertExpectations(t)
	})

	t.Run("should fail when exchange cannot be declared", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("ExchangeDeclare", exchange, "topic", true, false, false, false, amqp.Table(nil)).
			Return(errors.New("access refused"))

		_, err := rabbitmq.NewNotificationPublisher(ch, exchange, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "access refused")
	})

	t.Run("should require exchange name", func(t *testing.T) {
		_, err := rabbitmq.NewNotificationPublisher(new(MockChannel), "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNotificationPublisher_NotifyCustomer(t *testing.T) {
	t.Run("should publish persistent json to customer routing key", func(t *testing.T) {
		ch := new(MockChannel)
		publisher := newPublisher(t, ch)
		n := sampleNotification()

		var sent amqp.Publishing
		ch.On("PublishWithContext", mock.Anything, exchange, "push.customer."+n.RecipientID.String(), false, false, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(5).(amqp.Publishing) }).
			Return(nil).Once()

		err := publisher.NotifyCustomer(t.Context(), n)

		require.NoError(t, err)
		ch.AssertExpectations(t)
		assert.Equal(t, amqp.Persistent, sent.DeliveryMode)
		assert.Equal(t, "application/json", sent.ContentType)

		body := decode(t, sent)
		assert.Equal(t, n.RecipientID.String(), body.RecipientID)
		assert.Empty(t, body.Topic)
		assert.Equal(t, n.Title, body.Title)
		assert.Equal(t, n.Body, body.Body)
		assert.Equal(t, map[string]string{
			"orderId":     n.OrderID.String(),
			"messageType": "order",
			"status":      "Ready",
		}, body.Data)
	})

	t.Run("should reject missing recipient", func(t *testing.T) {
		ch := new(MockChannel)
		publisher := newPublisher(t, ch)
		n := sampleNotification()
		n.RecipientID = kernel.UUID{}

		err := publisher.NotifyCustomer(t.Context(), n)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		ch.AssertNotCalled(t, "PublishWithContext")
	})

	t.Run("should return broker errors", func(t *testing.T) {
		ch := new(MockChannel)
		publisher := newPublisher(t, ch)
		ch.On("PublishWithContext", mock.Anything, exchange, mock.Anything, false, false, mock.Anything).
			Return(amqp.ErrClosed).Once()

		err := publisher.NotifyCustomer(t.Context(), sampleNotification())

		require.ErrorIs(t, err, amqp.ErrClosed)
	})
}

func TestNotificationPublisher_BroadcastTopic(t *testing.T) {
	t.Run("should publish to topic routing key", func(t *testing.T) {
		ch := new(MockChannel)
		publisher := newPublisher(t, ch)
		n := sampleNotification()

		var sent amqp.Publishing
		ch.On("PublishWithContext", mock.Anything, exchange, "push.topic.drivers", false, false, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(5).(amqp.Publishing) }).
			Return(nil).Once()

		err := publisher.BroadcastTopic(t.Context(), "drivers", n)

		require.NoError(t, err)
		body := decode(t, sent)
		assert.Equal(t, "drivers", body.Topic)
		assert.Empty(t, body.RecipientID)
		assert.Equal(t, n.OrderID.String(), body.Data["orderId"])
	})

	t.Run("should require topic", func(t *testing.T) {
		publisher := newPublisher(t, new(MockChannel))

		err := publisher.BroadcastTopic(t.Context(), "", sampleNotification())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNotificationPublisher_CircuitBreaker(t *testing.T) {
	t.Run("should stop calling the broker after repeated failures", func(t *testing.T) {
		ch := new(MockChannel)
		publisher := newPublisher(t, ch)
		ch.On("PublishWithContext", mock.Anything, exchange, mock.Anything, false, false, mock.Anything).
			Return(amqp.ErrClosed).Times(5)

		for range 5 {
			require.ErrorIs(t, publisher.NotifyCustomer(t.Context(), sampleNotification()), amqp.ErrClosed)
		}

		err := publisher.NotifyCustomer(t.Context(), sampleNotification())

		require.ErrorIs(t, err, gobreaker.ErrOpenState)
		ch.AssertNumberOfCalls(t, "PublishWithContext", 5)
	})
}
