package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"ecommerce/internal/config"
	repo "ecommerce/internal/repository"
	"ecommerce/internal/validator"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// トークンの有効期限
const tokenTTL = time.Hour

type LoginUsecase struct {
	sellers repo.SellerRepository
	cfg     config.Config
}

// DI
func NewLoginUsecase(sellers repo.SellerRepository, cfg config.Config) *LoginUsecase {
	return &LoginUsecase{sellers: sellers, cfg: cfg}
}

type LoginInput struct {
	Cpf   string `json:"cpf"`
	Email string `json:"email"`
}

// GenerateToken はcpf+emailの照合に成功したらsellerId claim入りのJWTを返す。
func (u *LoginUsecase) GenerateToken(ctx context.Context, in LoginInput) (string, error) {
	cpf := strings.TrimSpace(in.Cpf)
	email := strings.TrimSpace(in.Email)

	if cpf == "" || email == "" ||
		!validator.IsCpfValid(cpf) || !validator.IsEmailValid(email) {
		return "", NewHTTPError(http.StatusBadRequest, "invalid credentials")
	}

	seller, err := u.sellers.FindByLogin(ctx, cpf, email)
	if errors.Is(err, repo.ErrNotFound) {
		return "", NewHTTPError(http.StatusBadRequest, "invalid credentials")
	}
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      u.cfg.JWTSubject,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"iss":      u.cfg.JWTIssuer,
		"aud":      u.cfg.JWTAudience,
		"exp":      now.Add(tokenTTL).Unix(),
		"sellerId": seller.ID,
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(u.cfg.JWTKey))
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return signed, nil
}
