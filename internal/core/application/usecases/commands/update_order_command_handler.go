package commands

import (
	"context"
	"errors"
	"log/slog"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies an edit form to a stored order.
//
// The consistency passes run in this order, all inside one transaction:
//  1. items already stored invalid are pruned from the loaded order
//  2. rows that zero a stored item (id set, quantity 0, product set) remove that item
//  3. blank rows are dropped from the submission
//  4. the remaining rows are applied; unknown or malformed ids are ignored
//  5. items whose product is missing from the catalog are dropped
//
// IntentDelete skips all of that and destroys the order. A missing order yields
// an errs.ObjectNotFoundError.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalog,
	notifier ports.Notifier,
	logger *slog.Logger,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		notifier:   notifier,
		logger:     loggerOrDefault(logger),
	}
}

// Handle processes the update command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	if cmd.Intent() == IntentDelete {
		if err := orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	o.RemoveInvalidItems()

	submitted := cmd.Items()
	for _, id := range order.ZombieItemIDs(submitted) {
		if _, err = o.RemoveItem(id); err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	if err = o.ApplySubmissions(order.CleanSubmissions(submitted)); err != nil {
		return err
	}
	if err = removeUnresolvableItems(ctx, h.catalog, o); err != nil {
		return err
	}

	var notification *order.Notification
	if cmd.Intent() == IntentSubmitToKitchen {
		n := o.TransferToKitchen()
		notification = &n
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.notifier, h.logger, notification)
	return nil
}
