// Package ports defines the contracts between the kitchen core and its
// infrastructure: persistence, the product catalog and notification sinks.
package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and the
// items they own.
type OrderRepository interface {
	// Add persists a new order with its items. Items receive their persisted
	// identity through OrderItem.MarkPersisted.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the step and items of a loaded order. Rows of items no longer
	// attached to the order are deleted, new items are inserted.
	//
	// The write is conditional on the version the order was loaded at; when another
	// writer got there first it returns an errs.VersionConflictError and changes
	// nothing. On success the order's version is advanced with CommitVersion.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its items in insertion order. A missing order yields
	// an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order and, in cascade, its items. Deleting a missing order
	// yields an errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error
}
