package commands

import (
	"context"
	"log/slog"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// The submitted rows are applied to a fresh order at step new and invalid rows
// (blank placeholders, quantity 0, no product or a product missing from the
// catalog) are pruned before anything is written. Then the intent decides:
//   - IntentAddItem: the order is stored as is
//   - IntentSubmitToKitchen: the order is queued, stored, and "sent to Kitchen" is notified
//   - IntentDelete: nothing is stored
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, notifier, logger)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), rows, IntentAddItem)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalog,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		notifier:   notifier,
		logger:     loggerOrDefault(logger),
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID())
	if err != nil {
		return err
	}
	if err = o.ApplySubmissions(cmd.Items()); err != nil {
		return err
	}
	o.RemoveInvalidItems()

	var notification *order.Notification
	switch cmd.Intent() {
	case IntentDelete:
		return nil
	case IntentSubmitToKitchen:
		n := o.TransferToKitchen()
		notification = &n
	}

	if err = removeUnresolvableItems(ctx, h.catalog, o); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.notifier, h.logger, notification)
	return nil
}
