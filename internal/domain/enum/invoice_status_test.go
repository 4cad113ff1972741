package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceStatusIsValid(t *testing.T) {
	for _, s := range []InvoiceStatus{InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue} {
		assert.True(t, s.IsValid(), "%s must be valid", s)
	}
	assert.False(t, InvoiceStatus("cancelled").IsValid())
	assert.False(t, InvoiceStatus("").IsValid())
}

func TestInvoiceStatusTransitions(t *testing.T) {
	allowed := map[InvoiceStatus][]InvoiceStatus{
		InvoiceStatusDraft:   {InvoiceStatusSent},
		InvoiceStatusSent:    {InvoiceStatusPaid, InvoiceStatusOverdue},
		InvoiceStatusOverdue: {InvoiceStatusPaid},
		InvoiceStatusPaid:    {},
	}
	all := []InvoiceStatus{InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue}

	for from, targets := range allowed {
		ok := make(map[InvoiceStatus]bool)
		for _, to := range targets {
			ok[to] = true
		}
		for _, to := range all {
			assert.Equal(t, ok[to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestPaidIsTerminal(t *testing.T) {
	for _, to := range []InvoiceStatus{InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusOverdue, InvoiceStatusPaid} {
		assert.False(t, InvoiceStatusPaid.CanTransitionTo(to), "paid -> %s must be rejected", to)
	}
}
