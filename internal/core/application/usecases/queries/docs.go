// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the kitchen screens and the order forms.
package queries

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// OrderReader loads a single order aggregate.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
