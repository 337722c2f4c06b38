package repository

import (
	"context"
	"errors"

	"ecommerce/internal/domain/model"
	repo "ecommerce/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 商品の作成。同名（削除済みは除く）はErrConflict。
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	var exists model.Product
	err := r.db.WithContext(ctx).
		Where("name = ?", p.Name).
		First(&exists).Error
	if err == nil {
		return model.Product{}, repo.ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, err
	}

	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, productID string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の部分更新。nil/空のフィールドは変更しない。
func (r *ProductGormRepository) Update(ctx context.Context, productID string, in repo.ProductUpdate) error {
	updates := map[string]interface{}{}
	if in.Name != "" {
		updates["name"] = in.Name
	}
	if in.Amount != nil {
		updates["amount"] = *in.Amount
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}

	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", productID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除（soft delete）
func (r *ProductGormRepository) SoftDelete(ctx context.Context, productID string) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", productID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
