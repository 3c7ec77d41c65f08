// Package outboxrepo stores order status events until the relay has delivered them.
package outboxrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// EventTypeStatusChanged tags rows holding an order.StatusChanged payload.
const EventTypeStatusChanged = "order.status_changed"

// OutboxDTO is a row of the outbox table. PublishedAt stays nil until delivery.
type OutboxDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null"`
	EventType   string     `gorm:"type:varchar(64);not null"`
	Payload     string     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null"`
	PublishedAt *time.Time `gorm:"index"`
}

func (OutboxDTO) TableName() string {
	return "outbox"
}

type statusChangedPayload struct {
	EventID      uuid.UUID  `json:"eventId"`
	OrderID      uuid.UUID  `json:"orderId"`
	CustomerID   uuid.UUID  `json:"customerId"`
	RestaurantID uuid.UUID  `json:"restaurantId"`
	DriverID     *uuid.UUID `json:"driverId,omitempty"`
	Status       int        `json:"status"`
	StatusName   string     `json:"statusName"`
	OccurredAt   time.Time  `json:"occurredAt"`
}

func fromDomain(event order.StatusChanged) (OutboxDTO, error) {
	payload := statusChangedPayload{
		EventID:      event.EventID.Raw(),
		OrderID:      event.OrderID.Raw(),
		CustomerID:   event.CustomerID.Raw(),
		RestaurantID: event.RestaurantID.Raw(),
		Status:       int(event.Status),
		StatusName:   event.Status.String(),
		OccurredAt:   event.OccurredAt.UTC(),
	}
	if event.DriverID != nil {
		raw := event.DriverID.Raw()
		payload.DriverID = &raw
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return OutboxDTO{}, err
	}

	return OutboxDTO{
		ID:          payload.EventID,
		AggregateID: payload.OrderID,
		EventType:   EventTypeStatusChanged,
		Payload:     string(data),
		OccurredAt:  payload.OccurredAt,
	}, nil
}

func toDomain(dto OutboxDTO) (order.StatusChanged, error) {
	if dto.EventType != EventTypeStatusChanged {
		return order.StatusChanged{}, fmt.Errorf("outbox event %s: unknown type %q", dto.ID, dto.EventType)
	}

	var payload statusChangedPayload
	if err := json.Unmarshal([]byte(dto.Payload), &payload); err != nil {
		return order.StatusChanged{}, fmt.Errorf("outbox event %s: %w", dto.ID, err)
	}

	event := order.StatusChanged{
		Status:     order.Status(payload.Status),
		OccurredAt: payload.OccurredAt,
	}

	var err error
	if event.EventID, err = kernel.UUIDFromBytes(payload.EventID[:]); err != nil {
		return order.StatusChanged{}, err
	}
	if event.OrderID, err = kernel.UUIDFromBytes(payload.OrderID[:]); err != nil {
		return order.StatusChanged{}, err
	}
	if event.CustomerID, err = kernel.UUIDFromBytes(payload.CustomerID[:]); err != nil {
		return order.StatusChanged{}, err
	}
	if event.RestaurantID, err = kernel.UUIDFromBytes(payload.RestaurantID[:]); err != nil {
		return order.StatusChanged{}, err
	}
	if payload.DriverID != nil {
		driverID, driverErr := kernel.UUIDFromBytes(payload.DriverID[:])
		if driverErr != nil {
			return order.StatusChanged{}, driverErr
		}
		event.DriverID = &driverID
	}

	if err = event.Status.Validate(); err != nil {
		return order.StatusChanged{}, err
	}
	return event, nil
}
