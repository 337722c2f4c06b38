package handler

import (
	"net/http"
	"strconv"

	"ecommerce/internal/domain/model"
	"ecommerce/internal/middleware"
	"ecommerce/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /purchase のAPI
type PurchaseHandler struct {
	uc *usecase.PurchaseUsecase
}

// DI
func NewPurchaseHandler(uc *usecase.PurchaseUsecase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

func (h *PurchaseHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/purchase", h.create)
	g.GET("/purchase/:purchaseId", h.detail)
	g.DELETE("/purchase/:purchaseId", h.delete)
	g.PATCH("/purchase/:purchaseId/purchaseStatus/:purchaseStatus", h.updateStatus)
}

func (h *PurchaseHandler) create(c echo.Context) error {
	caller := middleware.PrincipalFrom(c)

	created, err := h.uc.Create(c.Request().Context(), caller.SellerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *PurchaseHandler) detail(c echo.Context) error {
	caller := middleware.PrincipalFrom(c)

	p, err := h.uc.Get(c.Request().Context(), caller.SellerID, c.Param("purchaseId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PurchaseHandler) delete(c echo.Context) error {
	caller := middleware.PrincipalFrom(c)

	if err := h.uc.Delete(c.Request().Context(), caller.SellerID, c.Param("purchaseId")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *PurchaseHandler) updateStatus(c echo.Context) error {
	caller := middleware.PrincipalFrom(c)

	statusCode, err := strconv.ParseInt(c.Param("purchaseStatus"), 10, 16)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid purchase status"})
	}

	err = h.uc.UpdateStatus(c.Request().Context(), caller.SellerID, c.Param("purchaseId"), model.PurchaseStatus(statusCode))
	if err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}
