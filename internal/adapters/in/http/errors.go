package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an application error to its HTTP status code.
//
//	not found                                          -> 404
//	duplicate, illegal transition, concurrent update   -> 409
//	invalid input, empty order, bad quantity or price  -> 400
//	anything else                                      -> 500
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, pricing.ErrDuplicateOverride),
		errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, pricing.ErrInvalidPricingInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal errors are logged and their
// details kept out of the response.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
