package handler

import (
	"net/http"

	"usersync/internal/usersync/model"
	"usersync/internal/usersync/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Service service.UserSyncService
}

func NewUserHandler(s service.UserSyncService) *UserHandler {
	return &UserHandler{Service: s}
}

// GetMissingEmail handles GET /users/missing-email
func (h *UserHandler) GetMissingEmail(c echo.Context) error {
	users, err := h.Service.GetUsersMissingEmail(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// PostUpdateEmails handles POST /users/update-emails
func (h *UserHandler) PostUpdateEmails(c echo.Context) error {
	updated, errs, err := h.Service.UpdateMissingEmails(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.NewUpdateEmailsResponse(updated, errs))
}

// GetReconcileRuns handles GET /runs
func (h *UserHandler) GetReconcileRuns(c echo.Context) error {
	var req model.GetReconcileRunsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}

	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	resp, err := h.Service.GetReconcileRuns(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the user email sync API. Use GET /users/missing-email and POST /users/update-emails.",
	})
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
