// Package services provides domain services that implement business logic
// spanning multiple aggregates of the ordering system.
//
// The package includes:
//   - PricingEngine: computes line prices from the catalog and the customer's
//     size and modifier choices
//   - PaymentLedger: aggregates the payments recorded against an order to
//     answer settlement questions
//
// Domain services coordinate between aggregates, implementing business logic
// that does not naturally belong to a single aggregate root.
package services
