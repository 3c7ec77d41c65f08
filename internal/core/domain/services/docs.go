// Package services holds the stateless decision logic of the order lifecycle.
//
// The package includes:
//   - PricingEngine: computes the totals breakdown an order is placed with
//   - StatusEngine: decides whether an actor may move an order to a requested status
//
// Both engines hold no mutable state and never return errors: malformed input degrades
// to zero amounts or to a rejected Decision. They are safe for concurrent use.
// Persisting results, settlement and notifications belong to the application layer.
package services
