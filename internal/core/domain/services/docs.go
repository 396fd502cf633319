// Package services provides domain services that span the order aggregate and the
// product catalog.
//
// The package includes:
//   - OrderPricer: computes the total price of an order from catalog prices
package services
