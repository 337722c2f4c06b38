package main

import (
	"time"

	"ecommerce/internal/config"
	"ecommerce/internal/domain/model"
	"ecommerce/internal/handler"
	"ecommerce/internal/infra/cache"
	"ecommerce/internal/infra/db"
	"ecommerce/internal/infra/events"
	infraRepo "ecommerce/internal/infra/repository"
	"ecommerce/internal/logger"
	"ecommerce/internal/server"
	"ecommerce/internal/usecase"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	//.envがあれば読む（無くても可）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Seller{},
		&model.Product{},
		&model.Purchase{},
		&model.PurchaseProduct{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	sellerRepo := infraRepo.NewSellerGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	purchaseRepo := infraRepo.NewPurchaseGormRepository(gormDB)
	purchaseProductRepo := infraRepo.NewPurchaseProductGormRepository(gormDB)

	//商品キャッシュ（REDIS_ADDRが空なら無効）
	var productCache usecase.ProductCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		productCache = cache.NewProductCache(client, 30*time.Second)
	}

	//イベント発行（AMQP_URLが空ならnoop）
	var publisher usecase.PurchaseEventPublisher = events.NoopPublisher{}
	if cfg.AMQPURL != "" {
		conn, ch, err := events.SetupConn(cfg.AMQPURL)
		if err != nil {
			panic(err)
		}
		defer conn.Close()
		publisher = events.NewAMQPPublisher(ch)
	}

	//Usecase生成
	sellerUC := usecase.NewSellerUsecase(sellerRepo)
	productUC := usecase.NewProductUsecase(productRepo, productCache)
	purchaseUC := usecase.NewPurchaseUsecase(purchaseRepo, sellerRepo, publisher, log)
	purchaseProductUC := usecase.NewPurchaseProductUsecase(purchaseProductRepo, purchaseRepo, productRepo, productCache)
	loginUC := usecase.NewLoginUsecase(sellerRepo, cfg)

	//Handler生成
	handlers := server.Handlers{
		Status:          handler.NewStatusHandler(),
		Token:           handler.NewTokenHandler(loginUC),
		Seller:          handler.NewSellerHandler(sellerUC),
		Product:         handler.NewProductHandler(productUC),
		Purchase:        handler.NewPurchaseHandler(purchaseUC),
		PurchaseProduct: handler.NewPurchaseProductHandler(purchaseProductUC),
	}

	//Server起動
	e := server.New(cfg, log, handlers)
	if err := server.Start(e, cfg.Port); err != nil {
		panic(err)
	}
}
