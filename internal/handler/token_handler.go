package handler

import (
	"net/http"

	"ecommerce/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /token のAPI（認証不要）
type TokenHandler struct {
	uc *usecase.LoginUsecase
}

// DI
func NewTokenHandler(uc *usecase.LoginUsecase) *TokenHandler {
	return &TokenHandler{uc: uc}
}

func (h *TokenHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/token", h.generate)
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *TokenHandler) generate(c echo.Context) error {
	var in usecase.LoginInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	token, err := h.uc.GenerateToken(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, tokenResponse{Token: token})
}
