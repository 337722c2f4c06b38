package middleware

import (
	"errors"
	"net/http"
	"strings"

	"ecommerce/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const ctxPrincipalKey = "principal"

// Principal は検証済みトークンから一度だけ作る認証主体。
// sellerId claimが無い/壊れている場合はSellerIDが空のまま通り、
// 各usecaseが400で弾く（unauthorizedとは区別する）。
type Principal struct {
	SellerID string
}

// PrincipalFrom はミドルウェアが保存したPrincipalを取り出す。
func PrincipalFrom(c echo.Context) Principal {
	p, _ := c.Get(ctxPrincipalKey).(Principal)
	return p
}

// bearerAuth用のJWT検証ミドルウェア。
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//JWTをパースして検証する
			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTKey), nil
			})
			if err != nil || token == nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//claimsを取り出す
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//issuer/audienceを確認
			if !claims.VerifyIssuer(cfg.JWTIssuer, true) {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			if !claims.VerifyAudience(cfg.JWTAudience, true) {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//sellerIdからPrincipalを作る（無ければ空のまま）
			sellerID, _ := claims["sellerId"].(string)
			c.Set(ctxPrincipalKey, Principal{SellerID: sellerID})

			return next(c)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
