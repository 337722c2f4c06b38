package repository

import (
	"context"
	"errors"

	"ecommerce/internal/domain/model"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrNotModified = errors.New("not modified")
)

// 部分更新の入力。空文字は「変更しない」。
type SellerUpdate struct {
	Cpf       string
	Name      string
	Email     string
	Telephone string
}

// 販売者の永続化だけを約束。
type SellerRepository interface {
	// 自然キー（cpf/email/telephone）のいずれかが使用中ならErrConflict。
	Create(ctx context.Context, s model.Seller) (model.Seller, error)
	FindByID(ctx context.Context, sellerID string) (model.Seller, error)
	// cpf+emailでのログイン照合。
	FindByLogin(ctx context.Context, cpf string, email string) (model.Seller, error)
	Update(ctx context.Context, sellerID string, in SellerUpdate) error
	SoftDelete(ctx context.Context, sellerID string) error
}
