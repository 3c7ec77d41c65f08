package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/domain/model/coupon"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application errors to status codes. Unknown errors are logged and
// reported as 500 without their details.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &notFound):
		return writeJSONError(ctx, http.StatusNotFound, fmt.Sprintf("%s not found", notFound.ParamName))
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeJSONError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, coupon.ErrCodeIsTaken):
		return writeJSONError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeJSONError(ctx, http.StatusBadRequest, err.Error())
	}

	s.logger.ErrorContext(ctx.Request().Context(), "request failed",
		slog.String("method", ctx.Request().Method),
		slog.String("path", ctx.Path()),
		slog.Any("error", err))
	return writeJSONError(ctx, http.StatusInternalServerError, "Internal server error")
}

func writeJSONError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// ErrorHandler renders echo errors, including binding and validation failures, as Error bodies.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		} else {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error",
				slog.String("path", ctx.Path()), slog.Any("error", err))
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = writeJSONError(ctx, code, message)
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", slog.Any("error", writeErr))
		}
	}
}
