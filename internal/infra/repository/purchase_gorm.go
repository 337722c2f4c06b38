package repository

import (
	"context"
	"errors"
	"fmt"

	"ecommerce/internal/domain/model"
	repo "ecommerce/internal/repository"

	"gorm.io/gorm"
)

type PurchaseGormRepository struct {
	db *gorm.DB
}

// DI
func NewPurchaseGormRepository(db *gorm.DB) *PurchaseGormRepository {
	return &PurchaseGormRepository{db: db}
}

// 購入の作成
func (r *PurchaseGormRepository) Create(ctx context.Context, p model.Purchase) (model.Purchase, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Purchase{}, err
	}
	return p, nil
}

// IDで購入を取得
func (r *PurchaseGormRepository) FindByID(ctx context.Context, purchaseID string) (model.Purchase, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).First(&p, "id = ?", purchaseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Purchase{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Purchase{}, err
	}
	return p, nil
}

// ステータス更新。1行更新が成功、0行はErrNotModified。
func (r *PurchaseGormRepository) UpdateStatus(ctx context.Context, purchaseID string, status model.PurchaseStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("id = ?", purchaseID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	switch res.RowsAffected {
	case 0:
		return repo.ErrNotModified
	case 1:
		return nil
	default:
		return fmt.Errorf("purchase update affected %d rows", res.RowsAffected)
	}
}

// 購入削除（soft delete）
func (r *PurchaseGormRepository) SoftDelete(ctx context.Context, purchaseID string) error {
	res := r.db.WithContext(ctx).Delete(&model.Purchase{}, "id = ?", purchaseID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
