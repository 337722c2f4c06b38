package model

// PurchaseStatus は購入のステータスコード。
type PurchaseStatus int16

const (
	PurchaseStatusWaitingPayment  PurchaseStatus = 100
	PurchaseStatusPaymentApproved PurchaseStatus = 200
	PurchaseStatusShipping        PurchaseStatus = 201
	PurchaseStatusDelivered       PurchaseStatus = 202
	PurchaseStatusRejected        PurchaseStatus = 300
	PurchaseStatusCancelled       PurchaseStatus = 400
)

// 現在ステータス → 遷移可能な次ステータス。
// Delivered / Rejected / Cancelled は終端（遷移先なし）。
var purchaseStatusTransitions = map[PurchaseStatus][]PurchaseStatus{
	PurchaseStatusWaitingPayment:  {PurchaseStatusPaymentApproved, PurchaseStatusCancelled, PurchaseStatusRejected},
	PurchaseStatusPaymentApproved: {PurchaseStatusShipping, PurchaseStatusCancelled},
	PurchaseStatusShipping:        {PurchaseStatusDelivered},
	PurchaseStatusDelivered:       {},
	PurchaseStatusRejected:        {},
	PurchaseStatusCancelled:       {},
}

// Known は定義済みの6ステータスのいずれかかどうか。
func (s PurchaseStatus) Known() bool {
	_, ok := purchaseStatusTransitions[s]
	return ok
}

// CanTransitionTo は現在ステータスからnextへの遷移可否（テーブル参照のみ）。
// 飛び越し（WaitingPayment→Shippingなど）は許可しない。
func (s PurchaseStatus) CanTransitionTo(next PurchaseStatus) bool {
	for _, allowed := range purchaseStatusTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

func (s PurchaseStatus) String() string {
	switch s {
	case PurchaseStatusWaitingPayment:
		return "WaitingPayment"
	case PurchaseStatusPaymentApproved:
		return "PaymentApproved"
	case PurchaseStatusShipping:
		return "Shipping"
	case PurchaseStatusDelivered:
		return "Delivered"
	case PurchaseStatusRejected:
		return "Rejected"
	case PurchaseStatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
