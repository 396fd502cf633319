// Package kernel provides the value objects shared by the kitchen domain model.
//
// The package includes:
//   - UUID: identifier of orders and order items, wrapping github.com/google/uuid
//   - Money: a non-negative decimal amount used for unit prices and order totals,
//     wrapping github.com/shopspring/decimal
//
// Both types are immutable. Their zero values are either invalid (UUID) or a
// well-defined zero amount (Money).
package kernel
