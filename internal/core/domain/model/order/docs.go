// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with line composition,
// derived totals, and lifecycle state transitions.
//
// The package includes:
//   - Order: the aggregate root owning lines, totals, and the status machine
//   - Line: one priced entry (item + size + modifiers + quantity)
//   - Status: a state machine enforcing the fulfillment workflow
//   - Kind: the fulfillment kind (delivery, pickup, dine-in)
//
// Key business rules:
//   - total = subtotal - discount + deliveryFee after every mutation
//   - subtotal is always the sum of line totals
//   - Lines can be added, removed, or re-priced only while Pending
//   - Status follows Pending -> Confirmed -> Preparing -> Ready ->
//     OutForDelivery -> Delivered; pickup and dine-in skip OutForDelivery
//   - Cancelled is reachable from any non-terminal status
//   - Cancelling an order that already has approved payments flags the order
//     for refund orchestration by an external collaborator
package order
