package router

import (
	"usersync/internal/usersync/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h *handler.UserHandler) {
	e.Use(handler.RequestIDMiddleware)

	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	users := e.Group("/users")
	users.GET("/missing-email", h.GetMissingEmail)
	users.POST("/update-emails", h.PostUpdateEmails)

	e.GET("/runs", h.GetReconcileRuns)
}
