package commands

import (
	"context"
	"log/slog"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// notify hands a committed notification to the notifier. Failures are logged
// only: the state change it reports is already durable.
func notify(ctx context.Context, notifier ports.Notifier, logger *slog.Logger, n *order.Notification) {
	if n == nil || notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, *n); err != nil {
		logger.WarnContext(ctx, "failed to deliver notification",
			"order_id", n.OrderID().String(),
			"kind", n.Kind().String(),
			"error", err,
		)
	}
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
