// Package kernel provides the shared value objects of the ordering domain.
//
// The package includes:
//   - UUID: identifier for orders, items, products and customers; the nil UUID is never valid
//   - Money: exact decimal amount built on github.com/shopspring/decimal
//
// Both types are immutable values and safe to copy and share between goroutines.
package kernel
