package handler

import (
	"errors"
	"net/http"

	"usersync/internal/usersync/client"
	"usersync/internal/usersync/model"

	"github.com/labstack/echo/v4"
)

// Helper to map errors to HTTP status and body. Every upstream or local failure
// reaching the boundary is reported as a generic server error with its message.
func httpError(c echo.Context, err error) (int, model.ErrorResponse) {
	status := http.StatusInternalServerError
	code := "internal_error"

	var detail *model.ErrorDetail
	var transportErr *client.TransportError
	var remoteErr *client.RemoteError
	var validationErr *model.ValidationError

	switch {
	case errors.As(err, &detail):
		status = http.StatusBadRequest
		code = detail.Code
	case errors.As(err, &transportErr):
		code = "upstream_unreachable"
	case errors.As(err, &remoteErr):
		code = "upstream_error"
	case errors.As(err, &validationErr):
		code = "upstream_invalid_payload"
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{
			Code:      code,
			Message:   err.Error(),
			RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
		},
	}
}

func respondError(c echo.Context, err error) error {
	code, body := httpError(c, err)
	return c.JSON(code, body)
}
