package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists the operations of api/openapi.json.
type ServerInterface interface {
	// (POST /api/v1/coupons)
	CreateCoupon(ctx echo.Context) error
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context, params PlaceOrderParams) error
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /api/v1/orders/{id}/driver/{driverId})
	AssignDriver(ctx echo.Context, id openapi_types.UUID, driverId openapi_types.UUID) error
	// (POST /api/v1/orders/{id}/status)
	ChangeOrderStatus(ctx echo.Context, id openapi_types.UUID, params ChangeOrderStatusParams) error
	// (GET /api/v1/restaurants/{id}/orders)
	GetRestaurantOrders(ctx echo.Context, id openapi_types.UUID, params GetRestaurantOrdersParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateCoupon(ctx echo.Context) error {
	return w.Handler.CreateCoupon(ctx)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	var params PlaceOrderParams

	userID, err := bindUserID(ctx)
	if err != nil {
		return err
	}
	params.XUserID = userID

	return w.Handler.PlaceOrder(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}

	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) AssignDriver(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}

	driverID, err := bindPathUUID(ctx, "driverId")
	if err != nil {
		return err
	}

	return w.Handler.AssignDriver(ctx, id, driverID)
}

func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}

	var params ChangeOrderStatusParams

	params.XUserID, err = bindUserID(ctx)
	if err != nil {
		return err
	}

	if valueList, found := ctx.Request().Header[http.CanonicalHeaderKey("X-User-Role")]; found {
		var role string
		if len(valueList) != 1 {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Expected one value for X-User-Role, got %d", len(valueList)))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "X-User-Role", valueList[0], &role,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Invalid format for parameter X-User-Role: %s", err))
		}
		params.XUserRole = &role
	}

	return w.Handler.ChangeOrderStatus(ctx, id, params)
}

func (w *ServerInterfaceWrapper) GetRestaurantOrders(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}

	var params GetRestaurantOrdersParams

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.GetRestaurantOrders(ctx, id, params)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/coupons", wrapper.CreateCoupon)
	router.POST(baseURL+"/api/v1/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders/:id", wrapper.GetOrder)
	router.PUT(baseURL+"/api/v1/orders/:id/driver/:driverId", wrapper.AssignDriver)
	router.POST(baseURL+"/api/v1/orders/:id/status", wrapper.ChangeOrderStatus)
	router.GET(baseURL+"/api/v1/restaurants/:id/orders", wrapper.GetRestaurantOrders)
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}

	return id, nil
}

func bindUserID(ctx echo.Context) (openapi_types.UUID, error) {
	var userID openapi_types.UUID

	valueList, found := ctx.Request().Header[http.CanonicalHeaderKey("X-User-ID")]
	if !found {
		return userID, echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-User-ID is required, but not found")
	}
	if len(valueList) != 1 {
		return userID, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Expected one value for X-User-ID, got %d", len(valueList)))
	}

	err := runtime.BindStyledParameterWithOptions("simple", "X-User-ID", valueList[0], &userID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return userID, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid format for parameter X-User-ID: %s", err))
	}

	return userID, nil
}
