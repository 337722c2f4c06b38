package repository

import (
	"context"

	"ecommerce/internal/domain/model"
)

// 部分更新の入力。nil/空は「変更しない」。
type ProductUpdate struct {
	Name   string
	Amount *int64
	Price  *float64
}

// 商品の永続化だけを約束。
type ProductRepository interface {
	// 同名の商品が使用中ならErrConflict。
	Create(ctx context.Context, p model.Product) (model.Product, error)
	FindByID(ctx context.Context, productID string) (model.Product, error)
	Update(ctx context.Context, productID string, in ProductUpdate) error
	SoftDelete(ctx context.Context, productID string) error
}
