package model

import "time"

// 購入ステータス遷移のドメインイベント
type PurchaseStatusChangedEvent struct {
	PurchaseID string         `json:"purchase_id"`
	SellerID   string         `json:"seller_id"`
	From       PurchaseStatus `json:"from"`
	FromName   string         `json:"from_name"`
	To         PurchaseStatus `json:"to"`
	ToName     string         `json:"to_name"`
	OccurredAt time.Time      `json:"occurred_at"`
}
