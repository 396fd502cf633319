package ports

import (
	"context"

	"kitchen/internal/core/domain/model/order"
)

// Notifier delivers order notifications to the kitchen screens. Delivery is
// best effort: callers log a returned error and carry on.
type Notifier interface {
	Notify(ctx context.Context, notification order.Notification) error
}
