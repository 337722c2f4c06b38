package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"ecommerce/internal/config"
	"ecommerce/internal/domain/model"
	repo "ecommerce/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testJWTConfig() config.Config {
	return config.Config{
		JWTKey:      "test_key",
		JWTIssuer:   "ecommerce-test",
		JWTAudience: "ecommerce-clients",
		JWTSubject:  "ecommerce-api",
	}
}

func TestLoginUsecase_GenerateToken_InvalidCpf(t *testing.T) {
	uc := NewLoginUsecase(new(SellerRepoMock), testJWTConfig())

	_, err := uc.GenerateToken(context.Background(), LoginInput{
		Cpf:   "not-a-cpf",
		Email: "johndoe@email.com",
	})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestLoginUsecase_GenerateToken_InvalidEmail(t *testing.T) {
	uc := NewLoginUsecase(new(SellerRepoMock), testJWTConfig())

	_, err := uc.GenerateToken(context.Background(), LoginInput{
		Cpf:   "123.456.789-01",
		Email: "not-an-email",
	})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestLoginUsecase_GenerateToken_SellerNotFound(t *testing.T) {
	sellers := new(SellerRepoMock)
	sellers.On("FindByLogin", mock.Anything, "123.456.789-01", "johndoe@email.com").
		Return(model.Seller{}, repo.ErrNotFound)

	uc := NewLoginUsecase(sellers, testJWTConfig())

	_, err := uc.GenerateToken(context.Background(), LoginInput{
		Cpf:   "123.456.789-01",
		Email: "johndoe@email.com",
	})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestLoginUsecase_GenerateToken_Success(t *testing.T) {
	sellers := new(SellerRepoMock)
	sellers.On("FindByLogin", mock.Anything, "123.456.789-01", "johndoe@email.com").
		Return(model.Seller{ID: "seller-1"}, nil)

	cfg := testJWTConfig()
	uc := NewLoginUsecase(sellers, cfg)

	signed, err := uc.GenerateToken(context.Background(), LoginInput{
		Cpf:   "123.456.789-01",
		Email: "johndoe@email.com",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	//署名とclaimsを検証する
	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWTKey), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "seller-1", claims["sellerId"])
	assert.Equal(t, cfg.JWTSubject, claims["sub"])
	assert.Equal(t, cfg.JWTIssuer, claims["iss"])
	assert.Equal(t, cfg.JWTAudience, claims["aud"])
	assert.NotEmpty(t, claims["jti"])
	assert.NotNil(t, claims["iat"])
	assert.NotNil(t, claims["exp"])
}
