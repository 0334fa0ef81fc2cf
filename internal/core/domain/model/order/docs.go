// Package order implements the Order aggregate, its Item value object and the
// order lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root owning items, total price, status and payment artifacts
//   - Item: an immutable order line with exact decimal subtotal
//   - Status: the lifecycle enumeration and its transition table
//
// Key business rules:
//   - An order is created Pending with at least one item
//   - The total price is always the sum of item subtotals
//   - Items can only be added or removed while the order is Pending
//   - Status follows Pending -> (AwaitingPayment ->) Paid -> Processing -> Ready -> Completed,
//     with Cancelled reachable from Pending, AwaitingPayment and Processing
//   - Completed and Cancelled are terminal
//
// Status names are parsed at the boundary with ParseStatus; inside the domain the
// enumeration is used exclusively.
package order
