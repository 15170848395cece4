// Package payment contains the Payment entity and its collaborating value
// objects.
//
// A payment is recorded against an order for a concrete method (cash, cards,
// instant transfer, vouchers) and moves through its own status machine:
// Pending -> Processing -> Approved or Rejected, Approved -> Refunded, and
// Cancelled from Pending or Processing. Methods differ in capability: cash
// requires change computation, card-like methods require an authorization
// reference before processing, vouchers require neither.
//
// The entity deliberately knows nothing about order totals beyond its own
// amount due; whether an order is fully paid is the payment ledger service's
// concern.
package payment
