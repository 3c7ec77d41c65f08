// Package order models a food order from placement to delivery or cancellation.
//
// The package includes:
//   - Status: the persisted lifecycle state (Placed, Processing, Ready, In Route,
//     Delivered, Canceled) and its forward sequence
//   - Target: a requested status after synonym normalization; it adds Received,
//     which is an acknowledgment and never a stored Status
//   - Role: the actor asking for a change
//   - Decision: the verdict of the status engine, carried as a value with an
//     HTTP-style code instead of an error
//   - Item and Breakdown: line items and the totals computed once at placement
//   - Order: the aggregate root; its status changes only through ApplyStatusDecision
//
// Business rules:
//   - Status moves forward only along Placed -> Processing -> Ready -> In Route -> Delivered
//   - Canceled is reachable from every state except Delivered
//   - Received requires Delivered and leaves the stored status untouched
//   - The pricing breakdown is immutable after placement
package order
