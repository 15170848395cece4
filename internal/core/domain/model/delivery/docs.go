// Package delivery contains the Assignment aggregate tracking the physical
// handover of a delivery order.
//
// An assignment is created waiting for a courier when a delivery order is
// confirmed. Once a courier is assigned and departs, the assignment tracks
// delivery attempts and ends Delivered, Returned (nobody accepted the order),
// or Cancelled. Departure, delivery, and return times are stamped as the
// assignment progresses and feed the duration helpers.
package delivery
