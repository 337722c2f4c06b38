package repository

import (
	"context"

	"ecommerce/internal/domain/model"
)

type PurchaseProductRepository interface {
	// (purchase, product)の有効な関連が既にあればErrConflict。
	Create(ctx context.Context, pp model.PurchaseProduct) (model.PurchaseProduct, error)
	FindByID(ctx context.Context, purchaseID string, productID string) (model.PurchaseProduct, error)
	// 更新0行はErrNotModified。
	UpdateAmount(ctx context.Context, purchaseID string, productID string, amount int64) error
	SoftDelete(ctx context.Context, purchaseID string, productID string) error
}
