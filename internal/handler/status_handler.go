package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// 稼働確認
type StatusHandler struct{}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

func (h *StatusHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.status)
}

func (h *StatusHandler) status(c echo.Context) error {
	return c.String(http.StatusOK, "ecommerce api is up and running")
}
