package repository

import (
	"context"

	"ecommerce/internal/domain/model"
)

type PurchaseRepository interface {
	Create(ctx context.Context, p model.Purchase) (model.Purchase, error)
	FindByID(ctx context.Context, purchaseID string) (model.Purchase, error)
	// 更新0行はErrNotModified。
	UpdateStatus(ctx context.Context, purchaseID string, status model.PurchaseStatus) error
	SoftDelete(ctx context.Context, purchaseID string) error
}
