package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ecommerce/internal/domain/model"
	repo "ecommerce/internal/repository"

	"github.com/google/uuid"
)

// 商品読み込みのキャッシュ（cache-aside）。実装はinfra/cache。
type ProductCache interface {
	Load(ctx context.Context, productID string, loader func(ctx context.Context) (model.Product, error)) (model.Product, error)
	Invalidate(ctx context.Context, productID string)
}

type ProductUsecase struct {
	products repo.ProductRepository
	cache    ProductCache // nilなら無効
}

// DI
func NewProductUsecase(products repo.ProductRepository, cache ProductCache) *ProductUsecase {
	return &ProductUsecase{products: products, cache: cache}
}

type CreateProductInput struct {
	Name   string   `json:"name"`
	Amount *int64   `json:"amount"`
	Price  *float64 `json:"price"`
}

type UpdateProductInput struct {
	Name   string   `json:"name"`
	Amount *int64   `json:"amount"`
	Price  *float64 `json:"price"`
}

func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "missing product name")
	}
	if in.Amount == nil || *in.Amount < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product amount")
	}
	if in.Price == nil || *in.Price <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product price")
	}

	created, err := u.products.Create(ctx, model.Product{
		ID:     uuid.NewString(),
		Name:   name,
		Amount: in.Amount,
		Price:  *in.Price,
	})
	if errors.Is(err, repo.ErrConflict) {
		return model.Product{}, NewHTTPError(http.StatusConflict, "conflict")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *ProductUsecase) Get(ctx context.Context, productID string) (model.Product, error) {
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	load := func(ctx context.Context) (model.Product, error) {
		return u.products.FindByID(ctx, productID)
	}

	var p model.Product
	var err error
	if u.cache != nil {
		p, err = u.cache.Load(ctx, productID, load)
	} else {
		p, err = load(ctx)
	}
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// 指定されたフィールドだけを更新する
func (u *ProductUsecase) Update(ctx context.Context, productID string, in UpdateProductInput) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" && in.Amount == nil && in.Price == nil {
		return NewHTTPError(http.StatusBadRequest, "nothing to update")
	}
	if in.Amount != nil && *in.Amount < 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product amount")
	}
	if in.Price != nil && *in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product price")
	}

	err := u.products.Update(ctx, productID, repo.ProductUpdate{
		Name:   name,
		Amount: in.Amount,
		Price:  in.Price,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if u.cache != nil {
		u.cache.Invalidate(ctx, productID)
	}
	return nil
}

func (u *ProductUsecase) Delete(ctx context.Context, productID string) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.products.SoftDelete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if u.cache != nil {
		u.cache.Invalidate(ctx, productID)
	}
	return nil
}
