package http

import (
	"encoding/json"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Request and response bodies of the order API. Names follow the schemas of api/openapi.json.
// Money amounts are written as json.Number so they keep their two decimal places on the wire.

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is a requested line item. Price and quantity stay untyped so that
// malformed values reach the pricing coercion instead of failing the decode.
type NewOrderItem struct {
	FoodId   string `json:"foodId"`
	Price    any    `json:"price"`
	Quantity any    `json:"quantity"`
}

type NewOrder struct {
	RestaurantId openapi_types.UUID `json:"restaurantId"`
	OrderItems   []NewOrderItem     `json:"orderItems"`
	DeliveryFee  any                `json:"deliveryFee"`
	TipAmount    any                `json:"tipAmount"`
	CouponCode   string             `json:"couponCode"`
}

type PlacedOrder struct {
	OrderId         openapi_types.UUID `json:"orderId"`
	ItemsTotal      json.Number        `json:"itemsTotal"`
	DiscountPercent json.Number        `json:"discountPercent"`
	DiscountAmount  json.Number        `json:"discountAmount"`
	GrandTotal      json.Number        `json:"grandTotal"`
}

type OrderItem struct {
	FoodId   string      `json:"foodId"`
	Price    json.Number `json:"price"`
	Quantity int         `json:"quantity"`
}

type Order struct {
	Id              openapi_types.UUID  `json:"id"`
	CustomerId      openapi_types.UUID  `json:"customerId"`
	RestaurantId    openapi_types.UUID  `json:"restaurantId"`
	DriverId        *openapi_types.UUID `json:"driverId"`
	OrderStatus     string              `json:"orderStatus"`
	OrderItems      []OrderItem         `json:"orderItems"`
	DeliveryFee     json.Number         `json:"deliveryFee"`
	TipAmount       json.Number         `json:"tipAmount"`
	CouponCode      string              `json:"couponCode,omitempty"`
	ItemsTotal      json.Number         `json:"itemsTotal"`
	DiscountPercent json.Number         `json:"discountPercent"`
	DiscountAmount  json.Number         `json:"discountAmount"`
	GrandTotal      json.Number         `json:"grandTotal"`
	PlacedAt        time.Time           `json:"placedAt"`
}

type OrderSummary struct {
	Id          openapi_types.UUID  `json:"id"`
	CustomerId  openapi_types.UUID  `json:"customerId"`
	DriverId    *openapi_types.UUID `json:"driverId"`
	OrderStatus string              `json:"orderStatus"`
	GrandTotal  json.Number         `json:"grandTotal"`
	PlacedAt    time.Time           `json:"placedAt"`
}

// StatusChange carries the requested status. Anything but a string is treated as missing.
type StatusChange struct {
	OrderStatus any `json:"orderStatus"`
}

type StatusDecision struct {
	Status      bool   `json:"status"`
	Message     string `json:"message"`
	OrderStatus string `json:"orderStatus,omitempty"`
}

type NewCoupon struct {
	Code        string      `json:"code"`
	PercentOff  json.Number `json:"percentOff"`
	Active      *bool       `json:"active"`
	ExpiresAt   *time.Time  `json:"expiresAt"`
	MaxDiscount any         `json:"maxDiscount"`
}

// PlaceOrderParams defines parameters for PlaceOrder.
type PlaceOrderParams struct {
	XUserID openapi_types.UUID `json:"X-User-ID"`
}

// ChangeOrderStatusParams defines parameters for ChangeOrderStatus.
type ChangeOrderStatusParams struct {
	XUserID   openapi_types.UUID `json:"X-User-ID"`
	XUserRole *string            `json:"X-User-Role,omitempty"`
}

// GetRestaurantOrdersParams defines parameters for GetRestaurantOrders.
type GetRestaurantOrdersParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}
