package repository

import (
	"context"
	"errors"
	"fmt"

	"ecommerce/internal/domain/model"
	repo "ecommerce/internal/repository"

	"gorm.io/gorm"
)

type PurchaseProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewPurchaseProductGormRepository(db *gorm.DB) *PurchaseProductGormRepository {
	return &PurchaseProductGormRepository{db: db}
}

// 関連の作成。有効な関連が既にあればErrConflict。
func (r *PurchaseProductGormRepository) Create(ctx context.Context, pp model.PurchaseProduct) (model.PurchaseProduct, error) {
	var exists model.PurchaseProduct
	err := r.db.WithContext(ctx).
		Where("purchase_id = ? AND product_id = ?", pp.PurchaseID, pp.ProductID).
		First(&exists).Error
	if err == nil {
		return model.PurchaseProduct{}, repo.ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PurchaseProduct{}, err
	}

	if err := r.db.WithContext(ctx).Create(&pp).Error; err != nil {
		return model.PurchaseProduct{}, err
	}
	return pp, nil
}

// 複合キーで関連を取得
func (r *PurchaseProductGormRepository) FindByID(ctx context.Context, purchaseID string, productID string) (model.PurchaseProduct, error) {
	var pp model.PurchaseProduct
	err := r.db.WithContext(ctx).
		Where("purchase_id = ? AND product_id = ?", purchaseID, productID).
		First(&pp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PurchaseProduct{}, repo.ErrNotFound
	}
	if err != nil {
		return model.PurchaseProduct{}, err
	}
	return pp, nil
}

// 数量更新。0行はErrNotModified（304に対応）。
func (r *PurchaseProductGormRepository) UpdateAmount(ctx context.Context, purchaseID string, productID string, amount int64) error {
	res := r.db.WithContext(ctx).Model(&model.PurchaseProduct{}).
		Where("purchase_id = ? AND product_id = ?", purchaseID, productID).
		Update("product_amount", amount)
	if res.Error != nil {
		return res.Error
	}
	switch res.RowsAffected {
	case 0:
		return repo.ErrNotModified
	case 1:
		return nil
	default:
		return fmt.Errorf("purchase product update affected %d rows", res.RowsAffected)
	}
}

// 関連削除（soft delete）
func (r *PurchaseProductGormRepository) SoftDelete(ctx context.Context, purchaseID string, productID string) error {
	res := r.db.WithContext(ctx).
		Where("purchase_id = ? AND product_id = ?", purchaseID, productID).
		Delete(&model.PurchaseProduct{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
