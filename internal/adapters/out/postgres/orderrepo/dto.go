// Package orderrepo maps the order aggregate to the orders and order_items tables.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table. The pricing breakdown is stored flat
// next to the inputs it was computed from.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid;not null"`
	DriverID        *uuid.UUID      `gorm:"type:uuid"`
	DeliveryFee     decimal.Decimal `gorm:"type:numeric;not null"`
	Tip             decimal.Decimal `gorm:"type:numeric;not null"`
	CouponCode      string          `gorm:"type:varchar(64);not null"`
	ItemsTotal      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	DiscountAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	GrandTotal      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          int             `gorm:"type:smallint;not null"`
	PlacedAt        time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line item. Position keeps the order in which the customer
// listed the items.
type OrderItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey"`
	ItemID    string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric;not null"`
	Quantity  int             `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// statusUpdate holds the columns that change after placement.
type statusUpdate struct {
	DriverID  *uuid.UUID
	Status    int
	UpdatedAt time.Time
}

func fromDomain(aggregate *order.Order, now time.Time) OrderDTO {
	orderID := aggregate.ID().Raw()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			Position:  i,
			ItemID:    item.ItemID(),
			UnitPrice: item.UnitPrice().Decimal(),
			Quantity:  item.Quantity(),
		})
	}

	breakdown := aggregate.Breakdown()
	return OrderDTO{
		ID:              orderID,
		CustomerID:      aggregate.CustomerID().Raw(),
		RestaurantID:    aggregate.RestaurantID().Raw(),
		DriverID:        driverIDFromDomain(aggregate),
		DeliveryFee:     aggregate.DeliveryFee().Decimal(),
		Tip:             aggregate.Tip().Decimal(),
		CouponCode:      aggregate.CouponCode(),
		ItemsTotal:      breakdown.ItemsTotal().Decimal(),
		DiscountPercent: breakdown.DiscountPercent(),
		DiscountAmount:  breakdown.DiscountAmount().Decimal(),
		GrandTotal:      breakdown.GrandTotal().Decimal(),
		Status:          int(aggregate.Status()),
		PlacedAt:        aggregate.PlacedAt(),
		UpdatedAt:       now,
		Items:           items,
	}
}

func driverIDFromDomain(aggregate *order.Order) *uuid.UUID {
	if id := aggregate.DriverID(); id != nil {
		raw := id.Raw()
		return &raw
	}
	return nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		items = append(items, order.NewItem(itemDTO.ItemID, price, itemDTO.Quantity))
	}

	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	tip, err := kernel.NewMoney(dto.Tip)
	if err != nil {
		return nil, err
	}

	breakdown, err := breakdownToDomain(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, restaurantID, driverID, items, fee, tip,
		dto.CouponCode, breakdown, order.Status(dto.Status), dto.PlacedAt)
}

func breakdownToDomain(dto OrderDTO) (order.Breakdown, error) {
	itemsTotal, err := kernel.NewMoney(dto.ItemsTotal)
	if err != nil {
		return order.Breakdown{}, err
	}
	discount, err := kernel.NewMoney(dto.DiscountAmount)
	if err != nil {
		return order.Breakdown{}, err
	}
	grandTotal, err := kernel.NewMoney(dto.GrandTotal)
	if err != nil {
		return order.Breakdown{}, err
	}
	return order.NewBreakdown(itemsTotal, dto.DiscountPercent, discount, grandTotal), nil
}
