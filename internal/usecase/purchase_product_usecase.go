package usecase

import (
	"context"
	"errors"
	"net/http"

	"ecommerce/internal/domain/model"
	repo "ecommerce/internal/repository"
)

type PurchaseProductUsecase struct {
	purchaseProducts repo.PurchaseProductRepository
	purchases        repo.PurchaseRepository
	products         repo.ProductRepository
	cache            ProductCache // nilなら無効
}

// DI
func NewPurchaseProductUsecase(
	purchaseProducts repo.PurchaseProductRepository,
	purchases repo.PurchaseRepository,
	products repo.ProductRepository,
	cache ProductCache,
) *PurchaseProductUsecase {
	return &PurchaseProductUsecase{
		purchaseProducts: purchaseProducts,
		purchases:        purchases,
		products:         products,
		cache:            cache,
	}
}

type CreatePurchaseProductInput struct {
	PurchaseID    string `json:"purchase_id"`
	ProductID     string `json:"product_id"`
	ProductAmount int64  `json:"product_amount"`
}

type UpdatePurchaseProductInput struct {
	PurchaseID    string `json:"purchase_id"`
	ProductID     string `json:"product_id"`
	ProductAmount *int64 `json:"product_amount"`
}

// 関連の作成と在庫減算。
// 減算より先に関連の存在を確認する（重複リクエストで在庫を二重に減らさない）。
// 減算結果が負になる場合は在庫不足として弾く。
func (u *PurchaseProductUsecase) Create(ctx context.Context, in CreatePurchaseProductInput) (model.PurchaseProduct, error) {
	if in.PurchaseID == "" {
		return model.PurchaseProduct{}, NewHTTPError(http.StatusBadRequest, "purchase id doesn't exist")
	}
	_, err := u.purchases.FindByID(ctx, in.PurchaseID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.PurchaseProduct{}, NewHTTPError(http.StatusBadRequest, "purchase id doesn't exist")
	}
	if err != nil {
		return model.PurchaseProduct{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.ProductID == "" {
		return model.PurchaseProduct{}, NewHTTPError(http.StatusBadRequest, "product id doesn't exist")
	}
	product, err := u.products.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.PurchaseProduct{}, NewHTTPError(http.StatusBadRequest, "product id doesn't exist")
	}
	if err != nil {
		return model.PurchaseProduct{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.ProductAmount < 1 {
		return model.PurchaseProduct{}, NewHTTPError(http.StatusBadRequest, "invalid product amount")
	}

	//関連の存在チェックは在庫に触る前
	_, err = u.purchaseProducts.FindByID(ctx, in.PurchaseID, in.ProductID)
	if err == nil {
		return model.PurchaseProduct{}, NewHTTPError(http.StatusConflict, "conflict")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.PurchaseProduct{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//在庫減算（負にはしない）
	if product.Amount == nil || *product.Amount-in.ProductAmount < 0 {
		return model.PurchaseProduct{}, NewHTTPError(http.StatusBadRequest, "insufficient product amount")
	}
	newAmount := *product.Amount - in.ProductAmount

	if err := u.products.Update(ctx, in.ProductID, repo.ProductUpdate{Amount: &newAmount}); err != nil {
		return model.PurchaseProduct{}, NewHTTPError(http.StatusBadRequest, "could not update product amount")
	}
	if u.cache != nil {
		u.cache.Invalidate(ctx, in.ProductID)
	}

	created, err := u.purchaseProducts.Create(ctx, model.PurchaseProduct{
		PurchaseID:    in.PurchaseID,
		ProductID:     in.ProductID,
		ProductAmount: in.ProductAmount,
	})
	if errors.Is(err, repo.ErrConflict) {
		return model.PurchaseProduct{}, NewHTTPError(http.StatusConflict, "conflict")
	}
	if err != nil {
		return model.PurchaseProduct{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *PurchaseProductUsecase) Get(ctx context.Context, purchaseID string, productID string) (model.PurchaseProduct, error) {
	pp, err := u.purchaseProducts.FindByID(ctx, purchaseID, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.PurchaseProduct{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.PurchaseProduct{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return pp, nil
}

// リクエストで指定されたフィールドだけを更新する
func (u *PurchaseProductUsecase) Update(ctx context.Context, in UpdatePurchaseProductInput) error {
	if in.PurchaseID == "" || in.ProductID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.ProductAmount == nil {
		return NewHTTPError(http.StatusBadRequest, "nothing to update")
	}
	if *in.ProductAmount < 1 {
		return NewHTTPError(http.StatusBadRequest, "invalid product amount")
	}

	_, err := u.purchaseProducts.FindByID(ctx, in.PurchaseID, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	err = u.purchaseProducts.UpdateAmount(ctx, in.PurchaseID, in.ProductID, *in.ProductAmount)
	if errors.Is(err, repo.ErrNotModified) {
		return NewHTTPError(http.StatusNotModified, "not modified")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *PurchaseProductUsecase) Delete(ctx context.Context, purchaseID string, productID string) error {
	err := u.purchaseProducts.SoftDelete(ctx, purchaseID, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
