// Package customer contains the Customer aggregate and the loyalty program
// arithmetic.
//
// A customer earns one loyalty point for every full 10 currency units of a
// completed order's total and can redeem accumulated points against a pending
// order at 0.10 currency units per point. The balance never goes negative:
// redeeming more points than the balance holds fails with an
// InsufficientPointsError.
package customer
