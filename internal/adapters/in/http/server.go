// Package http is the inbound REST adapter. It binds requests described by api/openapi.json
// to the command and query handlers and maps their results and errors to responses.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (order.Breakdown, error)
	}

	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (order.Decision, error)
	}

	AssignDriverHandler interface {
		Handle(ctx context.Context, cmd commands.AssignDriverCommand) error
	}

	CreateCouponHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCouponCommand) error
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}

	GetRestaurantOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetRestaurantOrdersQuery) ([]queries.RestaurantOrderView, error)
	}
)

// Server implements ServerInterface on top of the use cases.
type Server struct {
	// Command handlers
	placeOrderHandler   PlaceOrderHandler
	changeStatusHandler ChangeOrderStatusHandler
	assignDriverHandler AssignDriverHandler
	createCouponHandler CreateCouponHandler

	// Query handlers
	getOrderHandler            GetOrderHandler
	getRestaurantOrdersHandler GetRestaurantOrdersHandler

	logger *slog.Logger
}

func NewServer(
	placeOrderHandler PlaceOrderHandler,
	changeStatusHandler ChangeOrderStatusHandler,
	assignDriverHandler AssignDriverHandler,
	createCouponHandler CreateCouponHandler,
	getOrderHandler GetOrderHandler,
	getRestaurantOrdersHandler GetRestaurantOrdersHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		placeOrderHandler:          placeOrderHandler,
		changeStatusHandler:        changeStatusHandler,
		assignDriverHandler:        assignDriverHandler,
		createCouponHandler:        createCouponHandler,
		getOrderHandler:            getOrderHandler,
		getRestaurantOrdersHandler: getRestaurantOrdersHandler,
		logger:                     logger.With("component", "http"),
	}
}

var _ ServerInterface = (*Server)(nil)

// PlaceOrder handles POST /api/v1/orders. The caller is the customer.
func (s *Server) PlaceOrder(ctx echo.Context, params PlaceOrderParams) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	customerID, err := toKernelUUID("X-User-ID", params.XUserID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	restaurantID, err := toKernelUUID("restaurantId", body.RestaurantId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	items := make([]order.Item, 0, len(body.OrderItems))
	for _, item := range body.OrderItems {
		items = append(items, order.NewItem(item.FoodId, kernel.CoerceMoney(item.Price), order.CoerceQuantity(item.Quantity)))
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), customerID, restaurantID, items,
		kernel.CoerceMoney(body.DeliveryFee), kernel.CoerceMoney(body.TipAmount), body.CouponCode)
	if err != nil {
		return s.writeError(ctx, err)
	}

	breakdown, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlacedOrder{
		OrderId:         cmd.OrderID().Raw(),
		ItemsTotal:      money(breakdown.ItemsTotal()),
		DiscountPercent: number(breakdown.DiscountPercent()),
		DiscountAmount:  money(breakdown.DiscountAmount()),
		GrandTotal:      money(breakdown.GrandTotal()),
	})
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := toKernelUUID("id", id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	items := make([]OrderItem, len(details.Items))
	for i, item := range details.Items {
		items[i] = OrderItem{
			FoodId:   item.ItemID,
			Price:    money(item.UnitPrice),
			Quantity: item.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, Order{
		Id:              details.ID.Raw(),
		CustomerId:      details.CustomerID.Raw(),
		RestaurantId:    details.RestaurantID.Raw(),
		DriverId:        optionalID(details.DriverID),
		OrderStatus:     details.Status.String(),
		OrderItems:      items,
		DeliveryFee:     money(details.DeliveryFee),
		TipAmount:       money(details.Tip),
		CouponCode:      details.CouponCode,
		ItemsTotal:      money(details.ItemsTotal),
		DiscountPercent: number(details.DiscountPercent),
		DiscountAmount:  money(details.DiscountAmount),
		GrandTotal:      money(details.GrandTotal),
		PlacedAt:        details.PlacedAt,
	})
}

// ChangeOrderStatus handles POST /api/v1/orders/{id}/status. The decision's code and
// message are returned as they are, including rejections.
func (s *Server) ChangeOrderStatus(ctx echo.Context, id openapi_types.UUID, params ChangeOrderStatusParams) error {
	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	orderID, err := toKernelUUID("id", id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	actorID, err := toKernelUUID("X-User-ID", params.XUserID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	role := order.RoleUnknown
	if params.XUserRole != nil {
		role = order.ParseRole(*params.XUserRole)
	}

	requested, _ := body.OrderStatus.(string)

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actorID, role, requested)
	if err != nil {
		return s.writeError(ctx, err)
	}

	decision, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := StatusDecision{
		Status:  decision.OK(),
		Message: decision.Message(),
	}
	if decision.OK() {
		response.OrderStatus = decision.Next().String()
	}

	return ctx.JSON(decision.Code(), response)
}

// AssignDriver handles PUT /api/v1/orders/{id}/driver/{driverId}.
func (s *Server) AssignDriver(ctx echo.Context, id openapi_types.UUID, driverId openapi_types.UUID) error {
	orderID, err := toKernelUUID("id", id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	driverID, err := toKernelUUID("driverId", driverId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRestaurantOrders handles GET /api/v1/restaurants/{id}/orders, newest first.
func (s *Server) GetRestaurantOrders(ctx echo.Context, id openapi_types.UUID, params GetRestaurantOrdersParams) error {
	restaurantID, err := toKernelUUID("id", id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	status := ""
	if params.Status != nil {
		status = *params.Status
	}

	query, err := queries.NewGetRestaurantOrdersQuery(restaurantID, status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.getRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]OrderSummary, len(views))
	for i, view := range views {
		response[i] = OrderSummary{
			Id:          view.ID.Raw(),
			CustomerId:  view.CustomerID.Raw(),
			DriverId:    optionalID(view.DriverID),
			OrderStatus: view.Status.String(),
			GrandTotal:  money(view.GrandTotal),
			PlacedAt:    view.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCoupon handles POST /api/v1/coupons. Coupons are active unless stated otherwise.
func (s *Server) CreateCoupon(ctx echo.Context) error {
	var body NewCoupon
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	percentOff, err := decimal.NewFromString(body.PercentOff.String())
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("percentOff", err))
	}

	active := true
	if body.Active != nil {
		active = *body.Active
	}

	cmd, err := commands.NewCreateCouponCommand(body.Code, percentOff, active, body.ExpiresAt,
		kernel.CoerceMoney(body.MaxDiscount))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.createCouponHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

func toKernelUUID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	out, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return out, nil
}

func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Raw()
	return &raw
}

func money(m kernel.Money) json.Number {
	return json.Number(m.String())
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
