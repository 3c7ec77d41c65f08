package http

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"fooddelivery/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// LoadOpenAPI parses and validates the embedded API document.
func LoadOpenAPI() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	return doc, nil
}

// OpenAPIValidator rejects requests that do not match the document with 400. Paths the
// document does not describe, such as /health and /swagger, pass through untouched.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	// Routes are matched on the path alone, whatever host serves them.
	doc.Servers = nil

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				if errors.Is(findErr, routers.ErrPathNotFound) || errors.Is(findErr, routers.ErrMethodNotAllowed) {
					return next(ctx)
				}
				return echo.NewHTTPError(http.StatusBadRequest, findErr.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(validateErr)).SetInternal(validateErr)
			}

			return next(ctx)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Error()
	}
	return err.Error()
}

type embeddedDoc struct{}

func (embeddedDoc) ReadDoc() string {
	return string(api.OpenAPI)
}

var registerDocOnce sync.Once

// RegisterSwagger serves the embedded document and Swagger UI under /swagger/.
func RegisterSwagger(e *echo.Echo) {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, embeddedDoc{})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
