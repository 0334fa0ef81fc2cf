package http

import (
	"errors"
	"net/http"

	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// HeaderResultDegraded is set on a listing response whose page could not be read.
const HeaderResultDegraded = "X-Result-Degraded"

// StatusFor maps an application error to its HTTP status code.
func StatusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errs.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as a servers.Error body. Unexpected errors are handed back to
// echo instead, so the request logger records the cause while ErrorHandler answers
// with the bare status text.
func writeError(ctx echo.Context, err error) error {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		return echo.NewHTTPError(status, http.StatusText(status)).SetInternal(err)
	}

	return renderError(ctx, status, err.Error())
}

func badRequest(ctx echo.Context, message string) error {
	return renderError(ctx, http.StatusBadRequest, message)
}

func renderError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

// ErrorHandler renders errors that escaped the handlers, such as echo.HTTPError from
// parameter binding or routing, with the same body as handler errors.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = renderError(ctx, httpErr.Code, message)
		return
	}

	status := StatusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	_ = renderError(ctx, status, message)
}
