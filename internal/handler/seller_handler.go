package handler

import (
	"net/http"

	"ecommerce/internal/middleware"
	"ecommerce/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /seller のAPI
type SellerHandler struct {
	uc *usecase.SellerUsecase
}

// DI
func NewSellerHandler(uc *usecase.SellerUsecase) *SellerHandler {
	return &SellerHandler{uc: uc}
}

// 登録だけは認証不要
func (h *SellerHandler) RegisterPublicRoutes(e *echo.Echo) {
	e.POST("/seller", h.create)
}

func (h *SellerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/seller/:sellerId", h.detail)
	g.PUT("/seller/:sellerId", h.update)
	g.DELETE("/seller/:sellerId", h.delete)
}

func (h *SellerHandler) create(c echo.Context) error {
	var in usecase.CreateSellerInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	created, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *SellerHandler) detail(c echo.Context) error {
	caller := middleware.PrincipalFrom(c)

	s, err := h.uc.Get(c.Request().Context(), caller.SellerID, c.Param("sellerId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SellerHandler) update(c echo.Context) error {
	caller := middleware.PrincipalFrom(c)

	var in usecase.UpdateSellerInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Update(c.Request().Context(), caller.SellerID, c.Param("sellerId"), in); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *SellerHandler) delete(c echo.Context) error {
	caller := middleware.PrincipalFrom(c)

	if err := h.uc.Delete(c.Request().Context(), caller.SellerID, c.Param("sellerId")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}
