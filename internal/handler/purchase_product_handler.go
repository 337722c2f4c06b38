package handler

import (
	"net/http"

	"ecommerce/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /purchaseProduct のAPI。複合キーはbodyで受ける。
type PurchaseProductHandler struct {
	uc *usecase.PurchaseProductUsecase
}

// DI
func NewPurchaseProductHandler(uc *usecase.PurchaseProductUsecase) *PurchaseProductHandler {
	return &PurchaseProductHandler{uc: uc}
}

func (h *PurchaseProductHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/purchaseProduct", h.create)
	g.GET("/purchaseProduct", h.detail)
	g.PUT("/purchaseProduct", h.update)
	g.DELETE("/purchaseProduct", h.delete)
}

type purchaseProductKey struct {
	PurchaseID string `json:"purchase_id"`
	ProductID  string `json:"product_id"`
}

func (h *PurchaseProductHandler) create(c echo.Context) error {
	var in usecase.CreatePurchaseProductInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	created, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *PurchaseProductHandler) detail(c echo.Context) error {
	var key purchaseProductKey
	if err := c.Bind(&key); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	pp, err := h.uc.Get(c.Request().Context(), key.PurchaseID, key.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, pp)
}

func (h *PurchaseProductHandler) update(c echo.Context) error {
	var in usecase.UpdatePurchaseProductInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Update(c.Request().Context(), in); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *PurchaseProductHandler) delete(c echo.Context) error {
	var key purchaseProductKey
	if err := c.Bind(&key); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Delete(c.Request().Context(), key.PurchaseID, key.ProductID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}
