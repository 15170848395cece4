package services

import (
	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/order"
	"algexpress/internal/core/domain/model/payment"
)

// PaymentLedger aggregates the payments recorded against an order to answer
// settlement questions. Only approved payments count towards coverage;
// pending, rejected, cancelled, and refunded payments do not.
type PaymentLedger struct{}

// NewPaymentLedger creates a new PaymentLedger instance.
func NewPaymentLedger() PaymentLedger {
	return PaymentLedger{}
}

// SumApproved returns the total approved amount across the given payments.
func (l PaymentLedger) SumApproved(payments []*payment.Payment) kernel.Money {
	sum := kernel.Zero()
	for _, p := range payments {
		if p.Status() == payment.Approved {
			sum = sum.Add(p.AmountDue())
		}
	}
	return sum
}

// IsFullyPaid reports whether the approved payments cover the order total.
func (l PaymentLedger) IsFullyPaid(o *order.Order, payments []*payment.Payment) bool {
	return l.SumApproved(payments).GreaterOrEqual(o.Total())
}

// HasApproved reports whether any payment in the set is approved.
// Cancelling an order with approved payments flags it for refund.
func (l PaymentLedger) HasApproved(payments []*payment.Payment) bool {
	for _, p := range payments {
		if p.Status() == payment.Approved {
			return true
		}
	}
	return false
}

// ChangeDue returns the total change owed back across the given payments.
func (l PaymentLedger) ChangeDue(payments []*payment.Payment) kernel.Money {
	change := kernel.Zero()
	for _, p := range payments {
		if p.Status() == payment.Approved {
			change = change.Add(p.Change())
		}
	}
	return change
}
