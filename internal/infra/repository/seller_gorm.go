package repository

import (
	"context"
	"errors"

	"ecommerce/internal/domain/model"
	repo "ecommerce/internal/repository"

	"gorm.io/gorm"
)

type SellerGormRepository struct {
	db *gorm.DB
}

// DI
func NewSellerGormRepository(db *gorm.DB) *SellerGormRepository {
	return &SellerGormRepository{db: db}
}

// 販売者の作成。自然キーの重複（削除済みは除く）はErrConflict。
func (r *SellerGormRepository) Create(ctx context.Context, s model.Seller) (model.Seller, error) {
	var exists model.Seller
	err := r.db.WithContext(ctx).
		Where("cpf = ? OR email = ? OR telephone = ?", s.Cpf, s.Email, s.Telephone).
		First(&exists).Error
	if err == nil {
		return model.Seller{}, repo.ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Seller{}, err
	}

	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Seller{}, err
	}
	return s, nil
}

// IDで販売者を取得
func (r *SellerGormRepository) FindByID(ctx context.Context, sellerID string) (model.Seller, error) {
	var s model.Seller
	err := r.db.WithContext(ctx).First(&s, "id = ?", sellerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Seller{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Seller{}, err
	}
	return s, nil
}

// cpf+emailでのログイン照合
func (r *SellerGormRepository) FindByLogin(ctx context.Context, cpf string, email string) (model.Seller, error) {
	var s model.Seller
	err := r.db.WithContext(ctx).
		Where("cpf = ? AND email = ?", cpf, email).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Seller{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Seller{}, err
	}
	return s, nil
}

// 販売者の部分更新。空のフィールドは変更しない。
func (r *SellerGormRepository) Update(ctx context.Context, sellerID string, in repo.SellerUpdate) error {
	updates := map[string]interface{}{}
	if in.Cpf != "" {
		updates["cpf"] = in.Cpf
	}
	if in.Name != "" {
		updates["name"] = in.Name
	}
	if in.Email != "" {
		updates["email"] = in.Email
	}
	if in.Telephone != "" {
		updates["telephone"] = in.Telephone
	}

	res := r.db.WithContext(ctx).Model(&model.Seller{}).
		Where("id = ?", sellerID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 販売者削除（soft delete）
func (r *SellerGormRepository) SoftDelete(ctx context.Context, sellerID string) error {
	res := r.db.WithContext(ctx).Delete(&model.Seller{}, "id = ?", sellerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
