// Package order contains the Order aggregate and its supporting value
// objects: the Status and PaymentStatus state machines and the PaymentLink.
//
// The aggregate owns every invariant of the order lifecycle: terminal-state
// guarding, completion preconditions, single-assignment pricing, and the
// coupling between price and payment link. Repositories and handlers never
// mutate order fields directly.
package order
