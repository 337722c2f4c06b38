package usecase

import "net/http"

// CheckOwnership は認証済みの販売者が対象リソースを扱えるか判定する。
// 副作用なしの純粋な判定。
//   - callerが空（claim欠落など）は400。401とは区別する。
//   - caller≠所有者は401。
func CheckOwnership(callerSellerID string, ownerSellerID string) error {
	if callerSellerID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid seller id")
	}
	if callerSellerID != ownerSellerID {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return nil
}
