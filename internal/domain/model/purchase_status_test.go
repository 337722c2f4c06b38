package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPurchaseStatus_Known(t *testing.T) {
	for _, s := range []PurchaseStatus{
		PurchaseStatusWaitingPayment,
		PurchaseStatusPaymentApproved,
		PurchaseStatusShipping,
		PurchaseStatusDelivered,
		PurchaseStatusRejected,
		PurchaseStatusCancelled,
	} {
		assert.True(t, s.Known(), s.String())
	}

	assert.False(t, PurchaseStatus(0).Known())
	assert.False(t, PurchaseStatus(99).Known())
	assert.False(t, PurchaseStatus(101).Known())
	assert.False(t, PurchaseStatus(500).Known())
	assert.False(t, PurchaseStatus(-1).Known())
}

func TestPurchaseStatus_Transitions_WaitingPayment(t *testing.T) {
	from := PurchaseStatusWaitingPayment

	assert.True(t, from.CanTransitionTo(PurchaseStatusPaymentApproved))
	assert.True(t, from.CanTransitionTo(PurchaseStatusCancelled))
	assert.True(t, from.CanTransitionTo(PurchaseStatusRejected))

	//飛び越しは不可
	assert.False(t, from.CanTransitionTo(PurchaseStatusShipping))
	assert.False(t, from.CanTransitionTo(PurchaseStatusDelivered))
	assert.False(t, from.CanTransitionTo(PurchaseStatusWaitingPayment))
}

func TestPurchaseStatus_Transitions_PaymentApproved(t *testing.T) {
	from := PurchaseStatusPaymentApproved

	assert.True(t, from.CanTransitionTo(PurchaseStatusShipping))
	assert.True(t, from.CanTransitionTo(PurchaseStatusCancelled))

	assert.False(t, from.CanTransitionTo(PurchaseStatusWaitingPayment))
	assert.False(t, from.CanTransitionTo(PurchaseStatusDelivered))
	assert.False(t, from.CanTransitionTo(PurchaseStatusRejected))
	assert.False(t, from.CanTransitionTo(PurchaseStatusPaymentApproved))
}

func TestPurchaseStatus_Transitions_Shipping(t *testing.T) {
	from := PurchaseStatusShipping

	assert.True(t, from.CanTransitionTo(PurchaseStatusDelivered))

	assert.False(t, from.CanTransitionTo(PurchaseStatusWaitingPayment))
	assert.False(t, from.CanTransitionTo(PurchaseStatusPaymentApproved))
	assert.False(t, from.CanTransitionTo(PurchaseStatusShipping))
	assert.False(t, from.CanTransitionTo(PurchaseStatusRejected))
	assert.False(t, from.CanTransitionTo(PurchaseStatusCancelled))
}

func TestPurchaseStatus_Transitions_TerminalStates(t *testing.T) {
	all := []PurchaseStatus{
		PurchaseStatusWaitingPayment,
		PurchaseStatusPaymentApproved,
		PurchaseStatusShipping,
		PurchaseStatusDelivered,
		PurchaseStatusRejected,
		PurchaseStatusCancelled,
	}

	for _, from := range []PurchaseStatus{
		PurchaseStatusDelivered,
		PurchaseStatusRejected,
		PurchaseStatusCancelled,
	} {
		for _, to := range all {
			assert.False(t, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestPurchaseStatus_String(t *testing.T) {
	assert.Equal(t, "WaitingPayment", PurchaseStatusWaitingPayment.String())
	assert.Equal(t, "Cancelled", PurchaseStatusCancelled.String())
	assert.Equal(t, "Unknown", PurchaseStatus(7).String())
}
