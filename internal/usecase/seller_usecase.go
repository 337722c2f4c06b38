package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ecommerce/internal/domain/model"
	repo "ecommerce/internal/repository"
	"ecommerce/internal/validator"

	"github.com/google/uuid"
)

type SellerUsecase struct {
	sellers repo.SellerRepository
}

// DI
func NewSellerUsecase(sellers repo.SellerRepository) *SellerUsecase {
	return &SellerUsecase{sellers: sellers}
}

type CreateSellerInput struct {
	Cpf       string `json:"cpf"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
}

type UpdateSellerInput struct {
	Cpf       string `json:"cpf"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
}

func (u *SellerUsecase) Create(ctx context.Context, in CreateSellerInput) (model.Seller, error) {
	cpf := strings.TrimSpace(in.Cpf)
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	telephone := strings.TrimSpace(in.Telephone)

	if cpf == "" || !validator.IsCpfValid(cpf) {
		return model.Seller{}, NewHTTPError(http.StatusBadRequest, "invalid cpf")
	}
	if name == "" || !validator.IsNameValid(name) {
		return model.Seller{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if email == "" || !validator.IsEmailValid(email) {
		return model.Seller{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if telephone == "" || !validator.IsTelephoneValid(telephone) {
		return model.Seller{}, NewHTTPError(http.StatusBadRequest, "invalid telephone")
	}

	created, err := u.sellers.Create(ctx, model.Seller{
		ID:        uuid.NewString(),
		Cpf:       cpf,
		Name:      name,
		Email:     email,
		Telephone: telephone,
	})
	if errors.Is(err, repo.ErrConflict) {
		return model.Seller{}, NewHTTPError(http.StatusConflict, "conflict")
	}
	if err != nil {
		return model.Seller{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// 自分自身のみ取得できる
func (u *SellerUsecase) Get(ctx context.Context, callerSellerID string, sellerID string) (model.Seller, error) {
	if err := CheckOwnership(callerSellerID, sellerID); err != nil {
		return model.Seller{}, err
	}

	s, err := u.sellers.FindByID(ctx, sellerID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Seller{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Seller{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

// 自分自身のみ更新できる。空のフィールドは変更しない。
func (u *SellerUsecase) Update(ctx context.Context, callerSellerID string, sellerID string, in UpdateSellerInput) error {
	if err := CheckOwnership(callerSellerID, sellerID); err != nil {
		return err
	}

	cpf := strings.TrimSpace(in.Cpf)
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	telephone := strings.TrimSpace(in.Telephone)

	if cpf == "" && name == "" && email == "" && telephone == "" {
		return NewHTTPError(http.StatusBadRequest, "nothing to update")
	}

	if cpf != "" && !validator.IsCpfValid(cpf) {
		return NewHTTPError(http.StatusBadRequest, "invalid cpf")
	}
	if name != "" && !validator.IsNameValid(name) {
		return NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if email != "" && !validator.IsEmailValid(email) {
		return NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if telephone != "" && !validator.IsTelephoneValid(telephone) {
		return NewHTTPError(http.StatusBadRequest, "invalid telephone")
	}

	err := u.sellers.Update(ctx, sellerID, repo.SellerUpdate{
		Cpf:       cpf,
		Name:      name,
		Email:     email,
		Telephone: telephone,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 自分自身のみ削除できる
func (u *SellerUsecase) Delete(ctx context.Context, callerSellerID string, sellerID string) error {
	if err := CheckOwnership(callerSellerID, sellerID); err != nil {
		return err
	}

	err := u.sellers.SoftDelete(ctx, sellerID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
