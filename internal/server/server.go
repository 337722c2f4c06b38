package server

import (
	"time"

	"ecommerce/internal/config"
	"ecommerce/internal/handler"
	"ecommerce/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Handlers struct {
	Status          *handler.StatusHandler
	Token           *handler.TokenHandler
	Seller          *handler.SellerHandler
	Product         *handler.ProductHandler
	Purchase        *handler.PurchaseHandler
	PurchaseProduct *handler.PurchaseProductHandler
}

// New はルーティング済みのechoを返す。
func New(cfg config.Config, log *zap.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(requestLog(log))

	//認証不要
	h.Status.RegisterRoutes(e)
	h.Token.RegisterRoutes(e)
	h.Seller.RegisterPublicRoutes(e)

	//bearerToken必須
	g := e.Group("", middleware.AuthJWT(cfg))
	h.Seller.RegisterRoutes(g)
	h.Product.RegisterRoutes(g)
	h.Purchase.RegisterRoutes(g)
	h.PurchaseProduct.RegisterRoutes(g)

	return e
}

func Start(e *echo.Echo, port string) error {
	return e.Start(":" + port)
}

// 入出力のリクエストログ
func requestLog(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			log.Info("handled HTTP request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.String("duration", duration.String()),
			)
			return err
		}
	}
}
