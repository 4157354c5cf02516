package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/generated/servers"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// jsonError writes the shared error envelope.
func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

// respondError maps application and domain errors to HTTP status codes.
// Scope mismatches surface as ObjectNotFound from the repositories, so a
// vendor probing another vendor's order gets the same 404 as a missing one.
func respondError(ctx echo.Context, err error) error {
	var illegalTransition *order.IllegalTransitionError

	switch {
	case errors.As(err, &illegalTransition),
		errors.Is(err, commands.ErrVendorConflict),
		errors.Is(err, commands.ErrMenuItemUnavailable),
		errors.Is(err, commands.ErrEmailAlreadyRegistered):
		return jsonError(ctx, http.StatusConflict, err.Error())

	case errors.Is(err, queries.ErrInvalidCredentials):
		return jsonError(ctx, http.StatusUnauthorized, err.Error())

	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrCartIsEmpty),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return jsonError(ctx, http.StatusBadRequest, err.Error())

	default:
		return jsonError(ctx, http.StatusInternalServerError, "internal error")
	}
}

// badRequest reports a malformed body or invalid command input.
func badRequest(ctx echo.Context, err error) error {
	return jsonError(ctx, http.StatusBadRequest, err.Error())
}
